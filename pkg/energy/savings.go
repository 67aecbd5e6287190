package energy

import "github.com/raterudder/energyusage/pkg/types"

// significant lists the transitions that change the tracked state. Anything
// missing, like off after auto-off, is redundant and leaves the state alone
// so the device stays the cause of the appliance being off.
var significant = [...][4]bool{
	types.ApplianceStateOn: {
		types.ApplianceStateOff:     true,
		types.ApplianceStateAutoOff: true,
	},
	types.ApplianceStateOff: {
		types.ApplianceStateOn: true,
	},
	types.ApplianceStateAutoOff: {
		types.ApplianceStateOn: true,
	},
}

// IsSignificant returns true if moving from one state to another actually
// changes the state of the appliance.
func IsSignificant(from, to types.ApplianceState) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return significant[from][to]
}

// nextState returns the state after applying an event in the current state.
func nextState(current, incoming types.ApplianceState) types.ApplianceState {
	if IsSignificant(current, incoming) {
		return incoming
	}
	return current
}

// Savings returns the number of minutes the appliance was off because the
// device switched it off. Time off after a manual switch off is not counted.
func (c *Calculator) Savings(profile types.Profile) (int, error) {
	// closing with the initial state accounts for an auto-off that is still
	// open when the appliance started the day on
	events := append(sortedEvents(profile.Events), types.Event{
		Timestamp: c.period,
		State:     profile.Initial,
	})

	var saved, lastAutoOffTS int
	current := profile.Initial
	for _, e := range events {
		if err := c.checkTimestamp(e.Timestamp); err != nil {
			return 0, err
		}
		if current == types.ApplianceStateAutoOff && e.State == types.ApplianceStateOn {
			saved += e.Timestamp - lastAutoOffTS
		}
		next := nextState(current, e.State)
		if current == types.ApplianceStateOn && next == types.ApplianceStateAutoOff {
			lastAutoOffTS = e.Timestamp
		}
		current = next
	}

	if current == types.ApplianceStateAutoOff {
		saved += c.period - lastAutoOffTS
	}
	return saved, nil
}
