package buttondebounce

// Consecutive debounces by requiring ConsecN identical raw samples in a
// row before the level changes: each tick shifts the sample into an
// 8-bit history register, and the level flips only when the newest N
// bits are all ones (press) or all zeros (release). Any opposite sample
// restarts the run.
//
// Memory: one byte. Debounce latency: exactly ConsecN ticks once the
// input is stable.
type Consecutive struct {
	n uint8

	hist uint8 // sample shift register, newest in bit 0
}

// NewConsecutive creates a Consecutive engine from cfg, settled released.
func NewConsecutive(cfg Config) *Consecutive {
	e := &Consecutive{n: cfg.ConsecN}
	e.Reset(false)
	return e
}

func (e *Consecutive) Step(rawDown, level bool) bool {
	e.hist = shiftIn(e.hist, rawDown)
	return acceptConsecutive(e.hist, e.n, level)
}

func (e *Consecutive) Reset(level bool) {
	e.hist = settledHist(level)
}

func (e *Consecutive) History() uint8 {
	return e.hist
}
