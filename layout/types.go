// SPDX-License-Identifier: MIT
// Package: sigil/layout
//
// types.go — core value types and the immutable layout registry.
//
// Design:
//   • Table is the single source of truth for all layouts in a process:
//     constructed once (New), passed by reference, never mutated after
//     startup registration. No module-level mutable state.
//   • Registration deep-copies the provided table so callers cannot alias
//     internal storage afterwards.
//
// AI-Hints:
//   • Register/LoadYAML belong to application start; lookups afterwards
//     are read-only and safe to share across goroutines without locks.

package layout

import (
	"fmt"
	"sort"
	"unicode"
)

// LayoutID names one registered keyboard layout.
type LayoutID string

// Shipped layout identifiers.
const (
	// Qwerty is the standard QWERTY arrangement.
	Qwerty LayoutID = "qwerty"
	// Azerty is the French AZERTY arrangement.
	Azerty LayoutID = "azerty"
)

// Position is a key center in abstract grid units. Immutable once defined.
type Position struct {
	X float64
	Y float64
}

// ResolvedPoint pairs a resolved Position with the character (as typed)
// that produced it.
type ResolvedPoint struct {
	Pos  Position
	Char rune
}

// Table is the immutable character→Position registry for all layouts.
// The zero value is unusable; construct with New.
type Table struct {
	layouts map[LayoutID]map[rune]Position
}

// New returns a Table preloaded with the shipped layouts (qwerty, azerty).
// Complexity: O(total shipped keys).
func New() *Table {
	t := &Table{layouts: make(map[LayoutID]map[rune]Position, 2)}
	// Shipped tables are package data and always valid; ignore the error
	// path that only guards user-provided registrations.
	_ = t.Register(Qwerty, qwertyKeys())
	_ = t.Register(Azerty, azertyKeys())

	return t
}

// Register adds a complete layout table under id. The table is deep-copied.
// Errors: ErrEmptyLayout (empty id/table), ErrDuplicateLayout (id taken),
// ErrBadEntry (key outside lowercase letters, digits, underscore).
// Complexity: O(len(keys)).
func (t *Table) Register(id LayoutID, keys map[rune]Position) error {
	if id == "" || len(keys) == 0 {
		return fmt.Errorf("Register(%q): %w", id, ErrEmptyLayout)
	}
	if _, exists := t.layouts[id]; exists {
		return fmt.Errorf("Register(%q): %w", id, ErrDuplicateLayout)
	}
	// Validate and deep-copy in one pass; reject uppercase letter keys so
	// case-insensitive lookups have a single canonical entry per letter.
	cp := make(map[rune]Position, len(keys))
	for r, pos := range keys {
		if !isSupportedKey(r) {
			return fmt.Errorf("Register(%q): key %q: %w", id, r, ErrBadEntry)
		}
		cp[r] = pos
	}
	t.layouts[id] = cp

	return nil
}

// Layouts returns the registered layout ids in lexicographic order.
// Complexity: O(n log n) over the (tiny) registry.
func (t *Table) Layouts() []LayoutID {
	ids := make([]LayoutID, 0, len(t.layouts))
	for id := range t.layouts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Bounds returns the tight bounding box over all key positions of id.
// Used only for render canvas sizing; never consulted by the codec.
// Errors: ErrUnknownLayout.
// Complexity: O(len(keys)).
func (t *Table) Bounds(id LayoutID) (minX, minY, maxX, maxY float64, err error) {
	keys, ok := t.layouts[id]
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("Bounds(%q): %w", id, ErrUnknownLayout)
	}
	first := true
	for _, pos := range keys {
		if first {
			minX, maxX, minY, maxY = pos.X, pos.X, pos.Y, pos.Y
			first = false
			continue
		}
		if pos.X < minX {
			minX = pos.X
		}
		if pos.X > maxX {
			maxX = pos.X
		}
		if pos.Y < minY {
			minY = pos.Y
		}
		if pos.Y > maxY {
			maxY = pos.Y
		}
	}

	return minX, minY, maxX, maxY, nil
}

// isSupportedKey reports whether r may appear as a canonical table key.
func isSupportedKey(r rune) bool {
	return unicode.IsLower(r) || (r >= '0' && r <= '9') || r == '_'
}
