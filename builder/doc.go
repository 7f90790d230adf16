// Package builder turns an ordered list of resolved key positions into the
// drawable, classifiable segments of a signature path.
//
// 🚀 What does Build do?
//
//	For every consecutive point pair it derives the segment's structural
//	features and its render-only styling:
//	  • direction  — one of 8 compass buckets (0=east, 2=north, …)
//	  • length bin — 0..3 against the 40/80/120 grid-unit thresholds
//	  • class      — the classify.PairClass of the two source characters
//	  • dash style — picked from the class's fixed pattern list, either by
//	    one seeded stream draw per segment (alphabet mode) or by a fixed
//	    per-class rule with no draw at all (legacy mode)
//	  • color      — a per-pair hue with class-based saturation/lightness
//	  • geometry   — straight line, quadratic with a turn-aware control
//	    point, or a centripetal Catmull-Rom cubic
//
// ✨ Guarantees:
//   - Deterministic: same points, options and seed ⇒ identical segments,
//     including every float in the geometry.
//   - n points ⇒ n−1 segments; fewer than 2 points ⇒ empty result, no
//     error. Build never panics and never errors at runtime; option
//     constructors validate and panic on programmer error instead.
//   - Stream draws are consumed strictly in traversal order, exactly one
//     per segment, and only in alphabet dash mode.
//   - Style and geometry never feed back into the structural features; the
//     codec built from these segments is styling-independent.
//
// Complexity: O(n) time and space over the resolved points.
package builder
