package server

import (
	"github.com/raterudder/energyusage/pkg/types"
	"github.com/stretchr/testify/mock"
)

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Period() int {
	args := m.Called()
	return args.Int(0)
}

func (m *mockCalculator) Usage(profile types.Profile) (int, error) {
	args := m.Called(profile)
	return args.Int(0), args.Error(1)
}

func (m *mockCalculator) Savings(profile types.Profile) (int, error) {
	args := m.Called(profile)
	return args.Int(0), args.Error(1)
}

func (m *mockCalculator) Report(profile types.Profile) (types.Report, error) {
	args := m.Called(profile)
	return args.Get(0).(types.Report), args.Error(1)
}

func (m *mockCalculator) ValidateDay(day float64) (int, error) {
	args := m.Called(day)
	return args.Int(0), args.Error(1)
}

func (m *mockCalculator) ReportForDay(profile types.Profile, day int) (types.Report, error) {
	args := m.Called(profile, day)
	return args.Get(0).(types.Report), args.Error(1)
}
