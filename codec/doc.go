// Package codec produces and parses the canonical, styling-independent
// record of a signature — the artifact two independent implementations
// compare to decide whether they drew "the same" signature.
//
// 🚀 What goes into a Record?
//
//	Versioned metadata (layout id, dash mode, color-scheme literal, raw
//	name length, a 32-bit provenance hash) plus one entry per segment:
//	the two source characters exactly as typed, the pair class, the
//	direction bucket and the length bin. Nothing else — no colors, no
//	control points, no curve mode. Two renderings that differ only in
//	styling produce byte-identical records.
//
// ✨ Serialization forms (both round-trip exactly):
//   - MarshalText / UnmarshalText — self-describing YAML for direct
//     comparison and storage.
//   - MarshalEmbedded / UnmarshalEmbedded — an XML element embeddable in
//     an SVG <metadata> block, with the five markup special characters
//     (< > & ' ") escaped; parsing accepts a bare element or a whole
//     document.
//
// ✨ Matching:
//   - Match compares layout, dash mode, length and the full ordered
//     segment list structurally. The provenance hash is a derived
//     convenience field, recomputable from layout + lowercased name, and
//     is deliberately NOT part of the equality decision.
//
// Complexity: everything is O(n) over the segment list.
package codec
