package buttondebounce

// Config holds tuning values for all three engine families. Each engine
// reads only its own fields (EdgeGated also reuses ConsecN for its
// acceptance rule); the rest are ignored.
//
// Config is not validated. Out-of-range values never crash or corrupt
// state, but they do produce degenerate behavior:
//
//   - ConsecN = 0: the acceptance mask is empty, so the level toggles on
//     every tick ("always-transition" mode).
//   - ConsecN > 8: the mask clamps to all eight history bits, identical
//     to ConsecN = 8.
//   - IntegOff >= IntegOn: the hysteresis band collapses and the level
//     can chatter between states near the shared threshold.
//   - EdgeThreshold = 0: every tick counts as bouncing, so the level is
//     gated until UnstableTimeout forces a recenter, then gates again.
//
// Checking thresholds is the caller's responsibility.
type Config struct {
	// Integrator: saturating counter + hysteresis.
	IntegMax uint8 // accumulator range 0..IntegMax
	IntegOn  uint8 // count at which the level goes pressed
	IntegOff uint8 // count at which the level goes released

	// Consecutive: N identical samples required before a level change.
	ConsecN uint8 // 3 samples @ 5ms tick = 15ms

	// EdgeGated: chatter suppression over the sample history.
	EdgeThreshold   uint8 // edges in the 8-sample window to call "bouncing"
	UnstableTimeout uint8 // ticks of confirmed bouncing before recenter (~80ms @ 5ms)
	BounceConfirm   uint8 // consecutive bouncing ticks required before gating
}

// DefaultConfig returns the tuning used when nothing else is specified.
// Values assume a tick interval around 5 ms.
func DefaultConfig() Config {
	return Config{
		IntegMax:        6,
		IntegOn:         4,
		IntegOff:        2,
		ConsecN:         3,
		EdgeThreshold:   4,
		UnstableTimeout: 16,
		BounceConfirm:   1,
	}
}
