package energy

import (
	"math"

	"github.com/raterudder/energyusage/pkg/types"
)

// ValidateDay converts a numeric day into a day index. The integer check
// happens before the range check.
func (c *Calculator) ValidateDay(day float64) (int, error) {
	if math.IsNaN(day) || math.IsInf(day, 0) || day != math.Trunc(day) {
		return 0, ErrInvalidDay
	}
	if day < 1 || day > float64(c.maxDay) {
		return 0, ErrDayOutOfRange
	}
	return int(day), nil
}

func (c *Calculator) checkDay(day int) error {
	if day < 1 || day > c.maxDay {
		return ErrDayOutOfRange
	}
	return nil
}

// ProfileForDay slices a single day out of a multi-day profile whose
// timestamps are minutes since the start of day 1. The returned profile
// starts in whatever state the appliance was last put in before the day and
// its events are relative to the start of the day. An event exactly at the
// start of the next day is kept at the end of this day.
func (c *Calculator) ProfileForDay(profile types.Profile, day int) (types.Profile, error) {
	if err := c.checkDay(day); err != nil {
		return types.Profile{}, err
	}

	dayStart := (day - 1) * c.period
	dayEnd := day * c.period

	dp := types.Profile{
		Initial: profile.Initial,
	}
	for _, e := range sortedEvents(profile.Events) {
		if e.Timestamp < dayStart {
			dp.Initial = e.State
			continue
		}
		if e.Timestamp > dayEnd {
			break
		}
		dp.Events = append(dp.Events, types.Event{
			Timestamp: e.Timestamp - dayStart,
			State:     e.State,
		})
	}
	return dp, nil
}

// UsageForDay returns the usage for the given 1-based day of a multi-day
// profile.
func (c *Calculator) UsageForDay(profile types.Profile, day int) (int, error) {
	dp, err := c.ProfileForDay(profile, day)
	if err != nil {
		return 0, err
	}
	return c.Usage(dp)
}

// SavingsForDay returns the savings for the given 1-based day of a
// multi-day profile.
func (c *Calculator) SavingsForDay(profile types.Profile, day int) (int, error) {
	dp, err := c.ProfileForDay(profile, day)
	if err != nil {
		return 0, err
	}
	return c.Savings(dp)
}

// ReportForDay returns both usage and savings for the given day.
func (c *Calculator) ReportForDay(profile types.Profile, day int) (types.Report, error) {
	dp, err := c.ProfileForDay(profile, day)
	if err != nil {
		return types.Report{}, err
	}
	r, err := c.Report(dp)
	if err != nil {
		return types.Report{}, err
	}
	r.Day = day
	return r, nil
}
