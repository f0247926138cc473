package buttondebounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeGatedCleanPress(t *testing.T) {
	// With no chatter the engine reduces to the consecutive rule (n=3).
	d := New(NewEdgeGated(DefaultConfig()))

	d.Update(true)
	d.Update(true)
	assert.False(t, d.Pressed())
	d.Update(true)
	assert.True(t, d.Pressed(), "expected press on the 3rd clean sample")
	assert.True(t, d.Down())
}

func TestEdgeGatedChatterGatesTransitions(t *testing.T) {
	// Alternating samples push the edge count over the threshold; once
	// chatter is confirmed, no transition may fire.
	d := New(NewEdgeGated(DefaultConfig()))

	raw := true
	for i := 0; i < 40; i++ {
		d.Update(raw)
		raw = !raw
		require.False(t, d.Pressed(), "tick %d: press during chatter", i)
		require.False(t, d.Released(), "tick %d: release during chatter", i)
		require.False(t, d.Down(), "tick %d: level moved during chatter", i)
	}
}

func TestEdgeGatedTimeoutRecentersReleased(t *testing.T) {
	// Defaults: edges confirm bouncing on the 4th alternating tick, so
	// unstable reaches the timeout (16) on tick 19 and the history is
	// snapped to the all-released pattern.
	d := New(NewEdgeGated(DefaultConfig()))

	raw := true
	for i := 0; i < 19; i++ {
		d.Update(raw)
		raw = !raw
	}

	assert.Equal(t, uint8(0x00), d.History(), "recenter must match the released level")
	assert.False(t, d.Down())
}

func TestEdgeGatedTimeoutRecentersPressed(t *testing.T) {
	d := New(NewEdgeGated(DefaultConfig()))

	// Clean press first.
	for i := 0; i < 3; i++ {
		d.Update(true)
	}
	require.True(t, d.Down())

	// Sustained chatter from the pressed state: bouncing is confirmed on
	// the 3rd alternating tick, timeout lands on the 18th.
	raw := false
	for i := 0; i < 18; i++ {
		d.Update(raw)
		raw = !raw
		require.False(t, d.Released(), "tick %d: release during chatter", i)
	}

	assert.Equal(t, uint8(0xFF), d.History(), "recenter must match the pressed level")
	assert.True(t, d.Down())
}

func TestEdgeGatedSettlesAfterChatter(t *testing.T) {
	// After a burst of chatter, a steadily held button must still press
	// once the edge density decays out of the window.
	d := New(NewEdgeGated(DefaultConfig()))

	raw := true
	for i := 0; i < 6; i++ {
		d.Update(raw)
		raw = !raw
	}
	require.False(t, d.Down())

	pressedAt := -1
	for i := 0; i < 10; i++ {
		d.Update(true)
		if d.Pressed() {
			pressedAt = i
			break
		}
	}
	require.NotEqual(t, -1, pressedAt, "held button never pressed after chatter stopped")
	assert.True(t, d.Down())
	assert.Equal(t, 4, pressedAt, "press expected once edges decay below threshold")
}

func TestEdgeGatedBounceConfirmDisablesGating(t *testing.T) {
	// With an unreachable confirmation count the gate never engages and
	// the engine behaves exactly like Consecutive.
	cfg := DefaultConfig()
	cfg.BounceConfirm = 255
	d := New(NewEdgeGated(cfg))

	seq := []bool{true, false, true, false, true, false}
	for _, s := range seq {
		d.Update(s)
	}
	for i := 0; i < 2; i++ {
		d.Update(true)
		require.False(t, d.Pressed())
	}
	d.Update(true)
	assert.True(t, d.Pressed(), "ungated engine must accept 3 consecutive samples")
}

func TestEdgeGatedZeroThresholdOscillates(t *testing.T) {
	// edge_threshold=0 flags every tick as bouncing: the level is gated
	// permanently, punctuated by recenters at each timeout. Degenerate
	// but well-defined.
	cfg := DefaultConfig()
	cfg.EdgeThreshold = 0
	d := New(NewEdgeGated(cfg))

	// 96 ticks is a whole number of gate/recenter cycles (timeout 16).
	for i := 0; i < 96; i++ {
		d.Update(true)
		require.False(t, d.Pressed(), "tick %d: gated engine must never press", i)
		require.False(t, d.Down(), "tick %d", i)
	}

	// The recenter keeps snapping history back to the released pattern.
	assert.Equal(t, uint8(0x00), d.History())
}

func TestEdgeGatedSustainedChatterNeverWedges(t *testing.T) {
	// The counters saturate rather than wrap, so arbitrarily long
	// chatter must neither transition nor corrupt state.
	d := New(NewEdgeGated(DefaultConfig()))

	raw := true
	for i := 0; i < 10000; i++ {
		d.Update(raw)
		raw = !raw
		require.False(t, d.Pressed(), "tick %d", i)
		require.False(t, d.Down(), "tick %d", i)
	}

	// And the engine still works once the line settles.
	for i := 0; i < 10; i++ {
		d.Update(true)
	}
	assert.True(t, d.Down(), "engine must recover after chatter ends")
}

func TestEdgeGatedReset(t *testing.T) {
	e := NewEdgeGated(DefaultConfig())
	d := New(e)

	raw := true
	for i := 0; i < 10; i++ {
		d.Update(raw)
		raw = !raw
	}

	d.Reset(true)
	assert.True(t, d.Down())
	assert.Equal(t, uint8(0xFF), d.History())
	assert.Equal(t, uint8(0), e.unstable)
	assert.Equal(t, uint8(0), e.bounceK)
}
