package buttondebounce

// Debouncer tracks the debounced level of one physical input and derives
// one-shot press/release events from level transitions. It holds exactly
// one Engine, fixed at construction.
//
// Contract:
//   - Call Update (or an UpdateActive* wrapper) once per tick at a fixed
//     interval; rawDown true means pressed.
//   - Pressed/Released are one-shot: true for exactly the tick in which
//     the corresponding transition occurred.
//   - Down/Up report the debounced level and hold until the next Update.
type Debouncer struct {
	engine Engine

	state    bool // debounced level, true = down
	pressed  bool
	released bool
}

// New creates a Debouncer around the given engine, starting released.
func New(engine Engine) *Debouncer {
	d := &Debouncer{engine: engine}
	d.Reset(false)
	return d
}

// Update advances the debouncer by one tick with a new raw sample.
func (d *Debouncer) Update(rawDown bool) {
	d.pressed = false
	d.released = false

	next := d.engine.Step(rawDown, d.state)
	if next == d.state {
		return
	}
	d.state = next
	if next {
		d.pressed = true
	} else {
		d.released = true
	}
}

// UpdateActiveLow feeds a raw pin read where the button pulls the line
// low: pressed when the pin reads 0.
func (d *Debouncer) UpdateActiveLow(pinHigh bool) {
	d.Update(!pinHigh)
}

// UpdateActiveHigh feeds a raw pin read where the button drives the line
// high: pressed when the pin reads 1.
func (d *Debouncer) UpdateActiveHigh(pinHigh bool) {
	d.Update(pinHigh)
}

// Pressed reports whether the level went down on the tick just processed.
func (d *Debouncer) Pressed() bool {
	return d.pressed
}

// Released reports whether the level went up on the tick just processed.
func (d *Debouncer) Released() bool {
	return d.released
}

// Down reports the current debounced level.
func (d *Debouncer) Down() bool {
	return d.state
}

// Up reports the inverse of Down.
func (d *Debouncer) Up() bool {
	return !d.state
}

// History returns the engine's raw-sample shift register (newest sample
// in bit 0), or 0 for engines that keep no history.
func (d *Debouncer) History() uint8 {
	return d.engine.History()
}

// Reset reinitializes the debouncer to a settled state at the given
// level, clearing both one-shot flags.
func (d *Debouncer) Reset(startDown bool) {
	d.state = startDown
	d.pressed = false
	d.released = false
	d.engine.Reset(startDown)
}
