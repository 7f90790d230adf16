// SPDX-License-Identifier: MIT
// Package: sigil/codec
//
// errors.go — sentinel errors for the codec package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Parse errors wrap ErrMalformedCodec with positional context via %w.

package codec

import "errors"

// ErrEmptyName indicates an Encode call with an empty input name; a codec
// describes a typed name and cannot exist without one.
// Usage: if errors.Is(err, ErrEmptyName) { /* skip codec building */ }.
var ErrEmptyName = errors.New("codec: empty name")

// ErrNoSegments indicates an Encode call with no segments — fewer than two
// characters of the name resolved, so there is nothing to encode.
// Usage: if errors.Is(err, ErrNoSegments) { /* skip codec building */ }.
var ErrNoSegments = errors.New("codec: no segments")

// ErrMalformedCodec indicates that a serialized record (text or embedded
// form) failed to parse back into a structurally valid Record: unknown
// labels, out-of-range features, or broken markup.
// Usage: if errors.Is(err, ErrMalformedCodec) { /* reject the input */ }.
var ErrMalformedCodec = errors.New("codec: malformed record")
