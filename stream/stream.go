// SPDX-License-Identifier: MIT
// Package: sigil/stream
//
// stream.go — seeded xorshift32 stream normalized to (0,1].
//
// Contract (strict):
//   • New(seed) derives the initial state from Hash32(seed); a zero hash
//     is substituted with 1 (the all-zero state is the xorshift fixed
//     point and would emit zeros forever).
//   • Next() advances exactly one xorshift step (<<13, >>17, <<5, each
//     XORed into state) and divides by the maximum 32-bit unsigned value.
//     The state is never zero, so draws lie in (0,1]: the all-ones state
//     yields exactly 1.0. Consumers index with mod, which tolerates the
//     closed upper bound; the divisor is fixed for cross-implementation
//     reproducibility and must not change to 2^32.
//   • The stream is local to one build invocation; it carries no locks
//     because builds are single-threaded and never share a Stream.
//
// AI-Hints:
//   • Draw discipline matters more than distribution quality: callers
//     consume draws strictly in segment traversal order, so inserting or
//     removing a draw anywhere changes every later style choice.

package stream

// degenerateSeedFallback replaces a zero hash so the generator never
// collapses to the all-zero xorshift fixed point.
const degenerateSeedFallback uint32 = 1

// maxUint32 normalizes raw 32-bit draws into (0,1].
const maxUint32 = float64(^uint32(0))

// Stream is a deterministic pseudo-random sequence keyed by a seed string.
// The zero value is not usable; construct with New.
type Stream struct {
	state uint32
}

// New returns a Stream seeded by Hash32(seed), with the degenerate zero
// state substituted. Same seed ⇒ same infinite sequence.
// Complexity: O(len(seed)) construction, O(1) space.
func New(seed string) *Stream {
	state := Hash32(seed)
	if state == 0 {
		state = degenerateSeedFallback
	}

	return &Stream{state: state}
}

// Next advances the generator one step and returns a float64 in (0,1]:
// the nonzero 32-bit state divided by the maximum 32-bit unsigned value.
// Complexity: O(1), no allocations.
func (s *Stream) Next() float64 {
	// xorshift32: three shift-XOR rounds, 32-bit wraparound throughout.
	s.state ^= s.state << 13
	s.state ^= s.state >> 17
	s.state ^= s.state << 5

	return float64(s.state) / maxUint32
}
