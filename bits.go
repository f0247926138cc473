package buttondebounce

import "math/bits"

// popcount8 returns the number of set bits in x.
func popcount8(x uint8) uint8 {
	return uint8(bits.OnesCount8(x))
}

// edgeCount8 returns the number of transitions between adjacent samples
// in an 8-sample history window. A high count means the input is
// chattering rather than settling.
func edgeCount8(hist uint8) uint8 {
	return popcount8(hist ^ (hist >> 1))
}
