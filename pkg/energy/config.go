package energy

import (
	"fmt"

	"github.com/levenlabs/go-lflag"
)

// Configured sets up the Calculator based on flags. The returned Calculator
// must not be used until lflag.Configure has been called.
func Configured() *Calculator {
	period := lflag.Int("period-minutes", DefaultPeriod, "Number of minutes in a measured period (a day)")
	maxDay := lflag.Int("max-day", DefaultMaxDay, "Last valid day when slicing a day out of a multi-day profile")

	c := new(Calculator)
	lflag.Do(func() {
		if *period <= 0 {
			panic(fmt.Sprintf("period-minutes must be positive: %d", *period))
		}
		if *maxDay <= 0 {
			panic(fmt.Sprintf("max-day must be positive: %d", *maxDay))
		}
		*c = *New(*period, *maxDay)
	})
	return c
}
