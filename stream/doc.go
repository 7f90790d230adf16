// Package stream provides the deterministic primitives behind every
// reproducible choice in a signature: a 32-bit string hash and a seeded
// pseudo-random stream in (0,1].
//
// 🚀 What lives here?
//
//	• Hash32  — an FNV-1a-style accumulator/XOR/multiply hash over the
//	  string's UTF-16 code units, truncated to 32 bits. It doubles as the
//	  codec's provenance checksum and as the stream seed.
//	• HashHex — Hash32 rendered as 8 zero-padded lowercase hex digits.
//	• Stream  — a 32-bit xorshift generator seeded by Hash32(seed),
//	  emitting floats in (0,1] one draw at a time.
//
// ✨ Guarantees:
//   - Same seed string ⇒ the same infinite sequence, on every run and every
//     conforming implementation. No external entropy, ever.
//   - A seed hashing to zero is substituted with 1; xorshift must never
//     start from the all-zero fixed point.
//   - One Next() call consumes exactly one generator step.
//
// ⚠️ Not cryptographic: Hash32 is a fast checksum for provenance
// sanity-checking and seeding only.
//
// Complexity: Hash32 is O(len(s)); Next is O(1).
package stream
