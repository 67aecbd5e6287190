package energy

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/raterudder/energyusage/pkg/types"
)

const (
	// DefaultPeriod is the number of minutes in a day.
	DefaultPeriod = 24 * 60

	// DefaultMaxDay is the last valid day of the uniform calendar.
	DefaultMaxDay = 365
)

var (
	// ErrInvalidTimestamp is returned when an event falls outside of the period.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidDay is returned when the requested day is not an integer.
	ErrInvalidDay = errors.New("day must be an integer")
	// ErrDayOutOfRange is returned when the requested day is outside the calendar.
	ErrDayOutOfRange = errors.New("day out of range")
)

// Calculator computes energy usage and savings from appliance profiles.
// The zero value is not usable, use New or Configured.
type Calculator struct {
	period int
	maxDay int
}

// New returns a Calculator measuring over period minutes with days numbered
// 1 through maxDay.
func New(period, maxDay int) *Calculator {
	if period <= 0 {
		panic(fmt.Sprintf("period must be positive: %d", period))
	}
	if maxDay <= 0 {
		panic(fmt.Sprintf("max day must be positive: %d", maxDay))
	}
	return &Calculator{
		period: period,
		maxDay: maxDay,
	}
}

// Default returns a Calculator for a 1440 minute day and a 365 day calendar.
func Default() *Calculator {
	return New(DefaultPeriod, DefaultMaxDay)
}

// Period returns the number of minutes in the measured period.
func (c *Calculator) Period() int {
	return c.period
}

// MaxDay returns the last valid day.
func (c *Calculator) MaxDay() int {
	return c.maxDay
}

// TimestampError is returned for an event outside of [0, Period]. It
// matches ErrInvalidTimestamp with errors.Is.
type TimestampError struct {
	Timestamp int
	Period    int
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("%s: expected between 0 and %d, but got %d", ErrInvalidTimestamp, e.Period, e.Timestamp)
}

// Is implements errors.Is.
func (e *TimestampError) Is(target error) bool {
	return target == ErrInvalidTimestamp
}

func (c *Calculator) checkTimestamp(ts int) error {
	if ts < 0 || ts > c.period {
		return &TimestampError{Timestamp: ts, Period: c.period}
	}
	return nil
}

// sortedEvents returns a copy of events sorted by timestamp with room for
// one more event. Events sharing a timestamp keep their relative order so
// the last one given still wins.
func sortedEvents(events []types.Event) []types.Event {
	sorted := make([]types.Event, len(events), len(events)+1)
	copy(sorted, events)
	slices.SortStableFunc(sorted, func(a, b types.Event) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})
	return sorted
}

// Report returns both the usage and the savings for a single day profile.
func (c *Calculator) Report(profile types.Profile) (types.Report, error) {
	usage, err := c.Usage(profile)
	if err != nil {
		return types.Report{}, err
	}
	savings, err := c.Savings(profile)
	if err != nil {
		return types.Report{}, err
	}
	return types.Report{
		Period:  c.period,
		Usage:   usage,
		Savings: savings,
		Events:  len(profile.Events),
	}, nil
}
