package energy

import "github.com/raterudder/energyusage/pkg/types"

// Usage returns the number of minutes the appliance spent on during the
// period. Any state other than on counts as off. An event outside of
// [0, period] results in ErrInvalidTimestamp.
func (c *Calculator) Usage(profile types.Profile) (int, error) {
	// the closing event only bounds the last interval so its state is unused
	events := append(sortedEvents(profile.Events), types.Event{
		Timestamp: c.period,
		State:     types.ApplianceStateOff,
	})

	var used, lastTS int
	current := profile.Initial
	for _, e := range events {
		if current == types.ApplianceStateOn {
			used += e.Timestamp - lastTS
		}
		if err := c.checkTimestamp(e.Timestamp); err != nil {
			return 0, err
		}
		current = e.State
		lastTS = e.Timestamp
	}
	return used, nil
}
