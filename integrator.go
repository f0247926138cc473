package buttondebounce

// Integrator debounces with a saturating counter and hysteresis
// thresholds: the counter climbs while the raw input reads down and
// drains while it reads up, and the level changes only when the counter
// crosses IntegOn (upwards) or IntegOff (downwards). Separate thresholds
// prevent oscillation around a single boundary value.
//
// Memory: one byte. Worst-case debounce latency: IntegMax ticks.
type Integrator struct {
	max uint8
	on  uint8
	off uint8

	acc uint8 // saturating accumulator, 0..max
}

// NewIntegrator creates an Integrator engine from cfg, settled released.
func NewIntegrator(cfg Config) *Integrator {
	e := &Integrator{max: cfg.IntegMax, on: cfg.IntegOn, off: cfg.IntegOff}
	e.Reset(false)
	return e
}

func (e *Integrator) Step(rawDown, level bool) bool {
	if rawDown {
		if e.acc < e.max {
			e.acc++
		}
	} else if e.acc > 0 {
		e.acc--
	}

	if !level && e.acc >= e.on {
		return true
	}
	if level && e.acc <= e.off {
		return false
	}
	return level
}

func (e *Integrator) Reset(level bool) {
	if level {
		e.acc = e.max
	} else {
		e.acc = 0
	}
}

// History returns 0: the integrator keeps no sample history.
func (e *Integrator) History() uint8 {
	return 0
}
