package energy

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/raterudder/energyusage/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultPeriod, c.Period())
	assert.Equal(t, 1440, c.Period())
	assert.Equal(t, DefaultMaxDay, c.MaxDay())

	assert.Panics(t, func() { New(0, 365) })
	assert.Panics(t, func() { New(1440, -1) })
}

func TestReport(t *testing.T) {
	c := Default()

	r, err := c.Report(types.Profile{
		Initial: on,
		Events:  []types.Event{ev(autoOff, 100), ev(off, 150), ev(on, 200)},
	})
	require.NoError(t, err)
	assert.Equal(t, types.Report{
		Period:  1440,
		Usage:   1340,
		Savings: 100,
		Events:  3,
	}, r)

	_, err = c.Report(types.Profile{Initial: on, Events: []types.Event{ev(off, 1441)}})
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
}

func TestInputNotMutated(t *testing.T) {
	c := Default()

	events := []types.Event{ev(off, 600), ev(on, 304), ev(autoOff, 50), ev(on, 4000)}
	orig := slices.Clone(events)
	p := types.Profile{Initial: on, Events: events[:3]}

	_, err := c.Usage(p)
	require.NoError(t, err)
	_, err = c.Savings(p)
	require.NoError(t, err)
	_, err = c.UsageForDay(types.Profile{Initial: on, Events: events}, 2)
	require.NoError(t, err)

	assert.Equal(t, orig, events)
}

func TestShuffleInvariance(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewSource(1))
	states := []types.ApplianceState{on, off, autoOff}

	for i := 0; i < 50; i++ {
		// distinct timestamps so the order of ties can't matter
		perm := rng.Perm(c.Period() + 1)[:rng.Intn(20)]
		events := make([]types.Event, len(perm))
		for j, ts := range perm {
			events[j] = ev(states[rng.Intn(len(states))], ts)
		}
		p := types.Profile{Initial: states[rng.Intn(len(states))], Events: events}

		usage, err := c.Usage(p)
		require.NoError(t, err)
		savings, err := c.Savings(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, usage, 0)
		assert.LessOrEqual(t, usage, c.Period())
		assert.GreaterOrEqual(t, savings, 0)
		assert.LessOrEqual(t, savings, c.Period())
		assert.LessOrEqual(t, usage+savings, c.Period())

		shuffled := types.Profile{Initial: p.Initial, Events: slices.Clone(events)}
		rng.Shuffle(len(shuffled.Events), func(a, b int) {
			shuffled.Events[a], shuffled.Events[b] = shuffled.Events[b], shuffled.Events[a]
		})

		gotUsage, err := c.Usage(shuffled)
		require.NoError(t, err)
		gotSavings, err := c.Savings(shuffled)
		require.NoError(t, err)
		assert.Equal(t, usage, gotUsage)
		assert.Equal(t, savings, gotSavings)
	}
}
