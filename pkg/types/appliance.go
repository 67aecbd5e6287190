package types

import "fmt"

// ApplianceState represents the state of an appliance at a point in time.
type ApplianceState int

const (
	ApplianceStateOn ApplianceState = iota + 1
	ApplianceStateOff
	// ApplianceStateAutoOff is an off state triggered by the energy-saving
	// device rather than by a manual switch off.
	ApplianceStateAutoOff
)

// String returns the wire form of the state.
func (s ApplianceState) String() string {
	switch s {
	case ApplianceStateOn:
		return "on"
	case ApplianceStateOff:
		return "off"
	case ApplianceStateAutoOff:
		return "auto-off"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Valid returns true if s is one of the known states.
func (s ApplianceState) Valid() bool {
	switch s {
	case ApplianceStateOn, ApplianceStateOff, ApplianceStateAutoOff:
		return true
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (s ApplianceState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid appliance state: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ApplianceState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "on":
		*s = ApplianceStateOn
	case "off":
		*s = ApplianceStateOff
	case "auto-off":
		*s = ApplianceStateAutoOff
	default:
		return fmt.Errorf("invalid appliance state: %q", string(b))
	}
	return nil
}

// Event is a state change of the appliance. Timestamp is in minutes, either
// from the start of the day or from the epoch for multi-day profiles.
type Event struct {
	Timestamp int            `json:"timestamp"`
	State     ApplianceState `json:"state"`
}

// Profile is the initial state of an appliance along with the events that
// changed its state. Events are not required to be sorted.
type Profile struct {
	Initial ApplianceState `json:"initial"`
	Events  []Event        `json:"events"`
}

// Validate makes sure the initial state and every event state is known.
func (p Profile) Validate() error {
	if !p.Initial.Valid() {
		return fmt.Errorf("invalid initial state: %s", p.Initial)
	}
	for i, e := range p.Events {
		if !e.State.Valid() {
			return fmt.Errorf("invalid state for event %d: %s", i, e.State)
		}
	}
	return nil
}
