package buttondebounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegratorPressOnThreshold(t *testing.T) {
	// max=6 on=4 off=2: four consecutive down samples from released
	// must press on exactly the fourth.
	d := New(NewIntegrator(DefaultConfig()))

	for i := 1; i <= 3; i++ {
		d.Update(true)
		assert.False(t, d.Pressed(), "tick %d: pressed too early", i)
		assert.False(t, d.Down(), "tick %d: down too early", i)
	}

	d.Update(true)
	assert.True(t, d.Pressed(), "expected press on 4th down sample")
	assert.True(t, d.Down())
	assert.False(t, d.Released())
}

func TestIntegratorReleaseOnThreshold(t *testing.T) {
	d := New(NewIntegrator(DefaultConfig()))
	d.Reset(true) // acc = max = 6

	// Draining from 6: acc hits off=2 on the fourth up sample.
	for i := 1; i <= 3; i++ {
		d.Update(false)
		assert.False(t, d.Released(), "tick %d: released too early", i)
		assert.True(t, d.Down(), "tick %d: level dropped too early", i)
	}

	d.Update(false)
	assert.True(t, d.Released(), "expected release once acc <= off")
	assert.True(t, d.Up())
}

func TestIntegratorReleaseFromPressThreshold(t *testing.T) {
	// Spec scenario: press on the 4th down sample (acc=4), then two up
	// samples bring acc to off=2 and release on the 2nd.
	d := New(NewIntegrator(DefaultConfig()))

	for i := 0; i < 4; i++ {
		d.Update(true)
	}
	require.True(t, d.Down())

	d.Update(false)
	assert.False(t, d.Released())
	d.Update(false)
	assert.True(t, d.Released(), "expected release on 2nd up sample from acc=4")
	assert.False(t, d.Down())
}

func TestIntegratorSaturation(t *testing.T) {
	e := NewIntegrator(DefaultConfig())
	d := New(e)

	// Far more samples than the accumulator range in both directions.
	for i := 0; i < 100; i++ {
		d.Update(true)
	}
	assert.Equal(t, uint8(6), e.acc, "accumulator must saturate at max")
	assert.True(t, d.Down())

	for i := 0; i < 100; i++ {
		d.Update(false)
	}
	assert.Equal(t, uint8(0), e.acc, "accumulator must saturate at zero")
	assert.False(t, d.Down())
}

func TestIntegratorGlitchRejection(t *testing.T) {
	d := New(NewIntegrator(DefaultConfig()))

	// Short spikes never let acc reach on=4.
	seq := []bool{true, true, false, true, false, false, true, false}
	for i, s := range seq {
		d.Update(s)
		assert.False(t, d.Pressed(), "tick %d: spike must not press", i)
		assert.False(t, d.Down(), "tick %d", i)
	}
}

func TestIntegratorOverlappingThresholds(t *testing.T) {
	// off >= on collapses the hysteresis band: the level chatters but
	// the engine keeps operating. Degenerate, not an error.
	cfg := DefaultConfig()
	cfg.IntegOn = 2
	cfg.IntegOff = 3
	d := New(NewIntegrator(cfg))

	d.Update(true)
	d.Update(true) // acc=2 >= on -> pressed
	assert.True(t, d.Pressed())

	d.Update(true) // acc=3 <= off -> released again
	assert.True(t, d.Released())
	assert.False(t, d.Down())
}

func TestIntegratorHistoryAlwaysZero(t *testing.T) {
	d := New(NewIntegrator(DefaultConfig()))
	for _, s := range []bool{true, false, true, true, true, true} {
		d.Update(s)
		assert.Equal(t, uint8(0), d.History())
	}
}

func TestIntegratorReset(t *testing.T) {
	e := NewIntegrator(DefaultConfig())
	d := New(e)

	d.Reset(true)
	assert.True(t, d.Down())
	assert.Equal(t, uint8(6), e.acc)

	d.Reset(false)
	assert.False(t, d.Down())
	assert.Equal(t, uint8(0), e.acc)
}
