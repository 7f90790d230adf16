// SPDX-License-Identifier: MIT
// Package: sigil/layout
//
// resolve.go — character and name resolution against a layout.
//
// Contract (strict):
//   • Resolve is case-insensitive for letters only: 'A' and 'a' share one
//     Position. Digits and '_' are looked up as-is.
//   • ResolveAll drops unsupported characters entirely — no substitution,
//     no error, no placeholder point. Adjacency downstream is computed
//     over the resolved sequence, not the raw character sequence.
//   • ResolvedPoint.Char preserves the character exactly as typed; the
//     codec needs the original case even though resolution folds it.

package layout

import "unicode"

// Resolve maps one character to its key Position in layout id.
// ok is false when the layout is unknown or the character unsupported.
// Complexity: O(1).
func (t *Table) Resolve(id LayoutID, ch rune) (Position, bool) {
	keys, found := t.layouts[id]
	if !found {
		return Position{}, false
	}
	// Letters fold to the canonical lowercase table key.
	pos, found := keys[unicode.ToLower(ch)]

	return pos, found
}

// ResolveAll maps every character of name to a ResolvedPoint, in input
// order, silently skipping characters absent from the layout. An unknown
// layout id resolves nothing (empty result, not an error), matching the
// total, error-free resolution contract.
// Complexity: O(len(name)) time, O(resolved) space.
func (t *Table) ResolveAll(name string, id LayoutID) []ResolvedPoint {
	points := make([]ResolvedPoint, 0, len(name))
	for _, ch := range name {
		if pos, ok := t.Resolve(id, ch); ok {
			points = append(points, ResolvedPoint{Pos: pos, Char: ch})
		}
	}

	return points
}
