package buttondebounce

// EdgeGated layers chatter suppression on top of Consecutive's
// acceptance rule. Each tick it counts edges across the 8-sample window;
// once the edge density has stayed at or above EdgeThreshold for
// BounceConfirm consecutive ticks, the input is considered bouncing and
// level changes are gated entirely. If bouncing persists for
// UnstableTimeout ticks the history is recentered to the current level
// so a permanently noisy line cannot wedge the debouncer.
//
// Memory: three bytes. Debounce latency: adaptive.
type EdgeGated struct {
	n               uint8
	edgeThreshold   uint8
	unstableTimeout uint8
	bounceConfirm   uint8

	hist     uint8 // sample shift register, newest in bit 0
	unstable uint8 // ticks spent in confirmed bouncing
	bounceK  uint8 // consecutive ticks of raw chatter, pre-confirmation
}

// NewEdgeGated creates an EdgeGated engine from cfg, settled released.
func NewEdgeGated(cfg Config) *EdgeGated {
	e := &EdgeGated{
		n:               cfg.ConsecN,
		edgeThreshold:   cfg.EdgeThreshold,
		unstableTimeout: cfg.UnstableTimeout,
		bounceConfirm:   cfg.BounceConfirm,
	}
	e.Reset(false)
	return e
}

func (e *EdgeGated) Step(rawDown, level bool) bool {
	e.hist = shiftIn(e.hist, rawDown)

	// Chatter shows up as a high edge count across the window.
	bouncingNow := edgeCount8(e.hist) >= e.edgeThreshold

	// Require chatter for bounceConfirm consecutive ticks before gating.
	if bouncingNow {
		if e.bounceK < 255 {
			e.bounceK++
		}
	} else {
		e.bounceK = 0
	}
	bouncing := e.bounceK >= e.bounceConfirm

	if bouncing {
		if e.unstable < 255 {
			e.unstable++
		}
	} else {
		e.unstable = 0
	}

	// Timeout: recenter to the current level and skip transition
	// evaluation this tick. The ordering matters — the recenter must win
	// over the acceptance rule or a noisy line could wedge the engine.
	if e.unstable >= e.unstableTimeout {
		e.hist = settledHist(level)
		e.unstable = 0
		e.bounceK = 0
		return level
	}

	// Level changes are only accepted while the input is not bouncing.
	if bouncing {
		return level
	}
	return acceptConsecutive(e.hist, e.n, level)
}

func (e *EdgeGated) Reset(level bool) {
	e.hist = settledHist(level)
	e.unstable = 0
	e.bounceK = 0
}

func (e *EdgeGated) History() uint8 {
	return e.hist
}
