// SPDX-License-Identifier: MIT
// Package: sigil/stream
//
// hash.go — 32-bit FNV-1a-style string hash and its hex rendering.
//
// Contract (strict):
//   • Hash32 processes the string's UTF-16 code units in order: the
//     accumulator starts at offsetBasis, each code unit is XORed in, then
//     the accumulator is multiplied by hashPrime, truncated to 32 bits.
//   • The result is unsigned; HashHex renders exactly 8 lowercase hex
//     digits, zero-padded.
//   • Constants are part of the cross-implementation contract; changing
//     either breaks every stored provenance hash and every dash sequence.
//
// AI-Hints:
//   • The supported signature alphabet is ASCII, where code units equal
//     runes; utf16.Encode keeps behavior defined for arbitrary seeds too.
//   • Do not swap in hash/fnv: the seeding contract is per-code-unit, and
//     the 0→1 substitution lives in the Stream constructor, not here.

package stream

import (
	"fmt"
	"unicode/utf16"
)

const (
	// offsetBasis is the fixed odd accumulator initializer.
	offsetBasis uint32 = 2166136261
	// hashPrime is the fixed odd multiplier applied after each XOR.
	hashPrime uint32 = 16777619
)

// Hash32 returns the 32-bit non-cryptographic hash of s.
// Same input ⇒ same output on every platform; no entropy involved.
// Complexity: O(len(s)) time, O(len(s)) transient space for code units.
func Hash32(s string) uint32 {
	acc := offsetBasis
	// XOR/multiply over UTF-16 code units, 32-bit wraparound on multiply.
	for _, cu := range utf16.Encode([]rune(s)) {
		acc ^= uint32(cu)
		acc *= hashPrime
	}

	return acc
}

// HashHex returns Hash32(s) as 8 zero-padded lowercase hexadecimal digits.
// This is the codec's provenance-hash rendering.
// Complexity: O(len(s)).
func HashHex(s string) string {
	return fmt.Sprintf("%08x", Hash32(s))
}
