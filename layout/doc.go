// Package layout maps signature characters onto key positions of named
// keyboard layouts.
//
// 🚀 What is a layout here?
//
//	A finite, statically defined character→Position table over an abstract
//	grid: one Position per supported character (letters share one key for
//	both cases, digits and '_' are looked up as-is). The shipped tables
//	use a 40-unit key pitch with physically staggered rows, so segment
//	lengths of one/two/three key pitches land on the 40/80/120 length-bin
//	thresholds used downstream.
//
// ✨ Key operations:
//   - Resolve     — one character → its Position (ok=false if unsupported)
//   - ResolveAll  — a whole name → ordered ResolvedPoints, silently
//     dropping unsupported characters (never an error)
//   - Bounds      — tight bounding box over a layout, for canvas sizing
//   - Register / LoadYAML — add a complete new layout table at startup
//     with no code change anywhere else
//
// ✨ Guarantees:
//   - Tables are deep-copied at registration and never mutated afterwards;
//     a Table is constructed once and passed by reference.
//   - Resolution is case-insensitive for letters only.
//   - Adding a layout never affects existing ones (append-only registry).
//
// Complexity: Resolve is O(1); ResolveAll is O(len(name)).
package layout
