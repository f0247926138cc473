// Package buttondebounce debounces a single binary input (a mechanical
// button or switch) sampled at a fixed tick interval.
//
// This package is pure logic with NO external dependencies (no GPIO, no
// clocks, no allocation after construction). The caller owns timing: call
// Update once per tick at a fixed cadence (e.g. every 5 ms) and the
// debouncer produces a clean level plus one-shot press/release events.
// All "timeouts" inside the algorithms are tick counts, never durations.
//
// Three interchangeable engines implement the same contract:
//
//   - Integrator: saturating counter with hysteresis thresholds.
//     Recommended for general-purpose debouncing.
//   - Consecutive: N consecutive identical samples in a shift register.
//     Simple and predictable.
//   - EdgeGated: Consecutive's acceptance rule, gated by an adaptive
//     chatter detector with a timeout recenter. Best for noisy switches.
//
// Usage:
//
//	btn := buttondebounce.New(buttondebounce.NewIntegrator(buttondebounce.DefaultConfig()))
//	// every 5 ms:
//	btn.UpdateActiveLow(pinHigh)
//	if btn.Pressed() { ... } // one-shot, true for exactly this tick
//
// A Debouncer tracks one physical input and is not safe for concurrent
// use; it assumes exclusive, sequential ownership by a single polling
// loop.
package buttondebounce

// Semantic version of the library.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0

	Version = "1.0.0"
)
