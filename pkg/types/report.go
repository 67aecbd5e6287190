package types

// Report is the response type for the energy endpoints.
type Report struct {
	Period  int `json:"period"`           // minutes in the period the report covers
	Day     int `json:"day,omitempty"`    // 1-based day when sliced out of a month profile
	Usage   int `json:"usage"`            // minutes the appliance was on
	Savings int `json:"savings"`          // minutes the appliance was switched off by the device
	Events  int `json:"events,omitempty"` // number of events that fell inside the period
}
