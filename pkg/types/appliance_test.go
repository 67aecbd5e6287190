package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplianceStateJSON(t *testing.T) {
	t.Run("decode profile", func(t *testing.T) {
		var p Profile
		err := json.Unmarshal([]byte(`{
			"initial": "on",
			"events": [
				{"state": "off", "timestamp": 50},
				{"state": "auto-off", "timestamp": 600}
			]
		}`), &p)
		require.NoError(t, err)
		assert.Equal(t, ApplianceStateOn, p.Initial)
		require.Len(t, p.Events, 2)
		assert.Equal(t, Event{Timestamp: 50, State: ApplianceStateOff}, p.Events[0])
		assert.Equal(t, Event{Timestamp: 600, State: ApplianceStateAutoOff}, p.Events[1])
		assert.NoError(t, p.Validate())
	})

	t.Run("unknown state", func(t *testing.T) {
		var p Profile
		err := json.Unmarshal([]byte(`{"initial": "standby", "events": []}`), &p)
		assert.ErrorContains(t, err, "invalid appliance state")
	})

	t.Run("encode uses wire names", func(t *testing.T) {
		b, err := json.Marshal(Event{Timestamp: 10, State: ApplianceStateAutoOff})
		require.NoError(t, err)
		assert.JSONEq(t, `{"timestamp": 10, "state": "auto-off"}`, string(b))
	})

	t.Run("zero value does not encode", func(t *testing.T) {
		_, err := json.Marshal(Event{Timestamp: 10})
		assert.Error(t, err)
	})
}

func TestProfileValidate(t *testing.T) {
	assert.ErrorContains(t, Profile{}.Validate(), "invalid initial state")

	p := Profile{
		Initial: ApplianceStateOff,
		Events:  []Event{{Timestamp: 1, State: ApplianceStateOn}, {Timestamp: 2}},
	}
	assert.ErrorContains(t, p.Validate(), "invalid state for event 1")
}
