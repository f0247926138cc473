package buttondebounce

// Engine is a debouncing algorithm. Each engine owns only its own
// per-variant state (an accumulator or a sample history); the debounced
// level itself lives in the Debouncer, which passes it in and stores the
// result. Engines are selected once at construction and never swapped.
type Engine interface {
	// Step consumes one raw sample and returns the debounced level for
	// this tick, given the level decided on the previous tick. At most
	// one level change can occur per call.
	Step(rawDown, level bool) bool

	// Reset replaces internal state with a settled snapshot consistent
	// with the given level, as if the input had been stable there.
	Reset(level bool)

	// History returns the raw-sample shift register (newest sample in
	// bit 0) for history-based engines, or 0 for engines that keep none.
	History() uint8
}

// shiftIn pushes a new raw sample into an 8-bit history register.
// The oldest sample falls off bit 7.
func shiftIn(hist uint8, rawDown bool) uint8 {
	hist <<= 1
	if rawDown {
		hist |= 1
	}
	return hist
}

// settledHist returns the history pattern of an input that has been
// stable at the given level for the whole window.
func settledHist(level bool) uint8 {
	if level {
		return 0xFF
	}
	return 0x00
}

// consecMask returns the acceptance mask for n consecutive samples.
// n >= 8 clamps to the full window; n = 0 yields an empty mask, which
// makes both acceptance conditions trivially true (degenerate mode, see
// Config).
func consecMask(n uint8) uint8 {
	if n >= 8 {
		return 0xFF
	}
	return uint8(1)<<n - 1
}

// acceptConsecutive applies the run-length acceptance rule shared by the
// Consecutive and EdgeGated engines: the level may go pressed only when
// the newest n samples are all 1, and released only when they are all 0.
func acceptConsecutive(hist, n uint8, level bool) bool {
	mask := consecMask(n)
	if !level && hist&mask == mask {
		return true
	}
	if level && hist&mask == 0 {
		return false
	}
	return level
}
