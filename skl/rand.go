package skl

import (
	randv2 "math/rand/v2"
)

// A node's level is chosen at construction and never exceeds the list's
// compile-time configured height.
const (
	// DefaultMaxLevel is L: the default compile-time maximum level, giving
	// a list height of L+1.
	DefaultMaxLevel int32 = 4
	// MaxSupportedLevel bounds how tall any queue may be configured.
	MaxSupportedLevel int32 = 32
)

// HeightFunc draws a node's height given the list's configured max level L
// (height is in [1, L+1]).
type HeightFunc func(maxLevel int32) int32

// UniformHeight draws uniformly over {1,...,L+1}. RandomHeight below is an
// equally legitimate geometric-distribution alternative for callers who
// want better asymptotic index density.
func UniformHeight(maxLevel int32) int32 {
	// math/rand/v2's top-level functions are lock-free (no global mutex),
	// unlike math/rand's.
	return int32(randv2.IntN(int(maxLevel)+1)) + 1
}

// RandomHeight is a geometric-style generator: repeatedly flip a biased
// coin and climb a level on each success, capped at maxLevel+1. It
// produces the classic skip-list level distribution (P(level=l) ~ p^l)
// instead of UniformHeight's flat distribution.
func RandomHeight(maxLevel int32) int32 {
	const probability = 0.25
	level := int32(1)
	for float64(randv2.Uint32()&0xFFFF) < probability*0xFFFF && level <= maxLevel {
		level++
	}
	if level > maxLevel+1 {
		return maxLevel + 1
	}
	return level
}
