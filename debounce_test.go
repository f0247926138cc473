package buttondebounce

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allEngines builds one debouncer per engine so contract tests can run
// against every implementation.
func allEngines(cfg Config) map[string]*Debouncer {
	return map[string]*Debouncer{
		"integrator":  New(NewIntegrator(cfg)),
		"consecutive": New(NewConsecutive(cfg)),
		"edgegated":   New(NewEdgeGated(cfg)),
	}
}

func TestNewStartsReleased(t *testing.T) {
	for name, d := range allEngines(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			assert.False(t, d.Down())
			assert.True(t, d.Up())
			assert.False(t, d.Pressed())
			assert.False(t, d.Released())
		})
	}
}

func TestLevelInvariants(t *testing.T) {
	// Across arbitrary input, after every update: Down == !Up, the
	// one-shots are never simultaneously true, and each one-shot
	// coincides with the matching level transition.
	rng := rand.New(rand.NewSource(42))

	for name, d := range allEngines(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			prev := d.Down()
			for i := 0; i < 5000; i++ {
				d.Update(rng.Intn(2) == 1)

				require.Equal(t, d.Down(), !d.Up(), "tick %d: Down/Up disagree", i)
				require.False(t, d.Pressed() && d.Released(), "tick %d: both one-shots set", i)

				if d.Pressed() {
					require.False(t, prev, "tick %d: press without prior up level", i)
					require.True(t, d.Down(), "tick %d: press without down level", i)
				}
				if d.Released() {
					require.True(t, prev, "tick %d: release without prior down level", i)
					require.True(t, d.Up(), "tick %d: release without up level", i)
				}
				if !d.Pressed() && !d.Released() {
					require.Equal(t, prev, d.Down(), "tick %d: level moved without one-shot", i)
				}
				prev = d.Down()
			}
		})
	}
}

func TestResetThenMatchingSampleIsQuiet(t *testing.T) {
	// Reset to a settled state followed by a matching sample must not
	// produce a spurious transition.
	for name, d := range allEngines(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			d.Reset(true)
			d.Update(true)
			assert.True(t, d.Down())
			assert.False(t, d.Pressed())
			assert.False(t, d.Released())

			d.Reset(false)
			d.Update(false)
			assert.False(t, d.Down())
			assert.False(t, d.Pressed())
			assert.False(t, d.Released())
		})
	}
}

func TestResetClearsOneShots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsecN = 1
	d := New(NewConsecutive(cfg))

	d.Update(true)
	require.True(t, d.Pressed())

	d.Reset(true)
	assert.False(t, d.Pressed())
	assert.False(t, d.Released())
	assert.True(t, d.Down())
}

func TestSettledInputIsIdempotent(t *testing.T) {
	// After the level settles, constant input produces no further events.
	for name, d := range allEngines(DefaultConfig()) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 10; i++ {
				d.Update(true)
			}
			require.True(t, d.Down(), "did not settle pressed")

			for i := 0; i < 100; i++ {
				d.Update(true)
				require.False(t, d.Pressed(), "tick %d: repeated press event", i)
				require.False(t, d.Released(), "tick %d", i)
			}
		})
	}
}

func TestOneShotLastsExactlyOneTick(t *testing.T) {
	d := New(NewConsecutive(DefaultConfig()))

	d.Update(true)
	d.Update(true)
	d.Update(true)
	require.True(t, d.Pressed())

	d.Update(true)
	assert.False(t, d.Pressed(), "one-shot must clear on the next update")
	assert.True(t, d.Down(), "level must hold after the one-shot clears")
}

func TestPolarityAdapters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsecN = 1

	t.Run("active low", func(t *testing.T) {
		// Button to ground with a pull-up: pin low means pressed.
		d := New(NewConsecutive(cfg))
		d.UpdateActiveLow(false)
		assert.True(t, d.Pressed())
		d.UpdateActiveLow(true)
		assert.True(t, d.Released())
	})

	t.Run("active high", func(t *testing.T) {
		d := New(NewConsecutive(cfg))
		d.UpdateActiveHigh(true)
		assert.True(t, d.Pressed())
		d.UpdateActiveHigh(false)
		assert.True(t, d.Released())
	})
}
