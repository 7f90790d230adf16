// Package render turns built signature segments into SVG markup: one
// stroked path element per segment plus the canonical codec embedded in
// the document's metadata block.
//
// 🚀 What render does — and does not do:
//
//	The core pipeline stays pure: this package only assembles strings.
//	No file I/O, no DOM, no rasterization — callers decide where the
//	markup goes. The embedded codec makes every exported SVG
//	self-verifying: codec.UnmarshalEmbedded on the whole document
//	recovers the exact Record it was rendered from.
//
// ✨ Key operations:
//   - PathData — the SVG path 'd' string of one segment (M/L, M/Q, M/C)
//   - SVG      — a complete standalone document, canvas sized from the
//     layout's bounding box plus padding
//
// ✨ Guarantees:
//   - Deterministic: identical segments and options produce
//     byte-identical markup.
//   - Styling lives only here; the embedded codec never changes with
//     stroke width, padding, curve mode or color.
//
// Complexity: O(n) over the segment list.
package render
