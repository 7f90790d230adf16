// SPDX-License-Identifier: MIT
// Package: sigil/layout
//
// errors.go — sentinel errors for the layout package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition
//     site; implementations attach context via %w.
//   • Character resolution is not an error path at all: unsupported
//     characters are silently dropped (see ResolveAll).
//
// AI-Hints:
//   • Branch with errors.Is in tests; never match error strings.
//   • Registration errors fire at startup, not per keystroke; a Table that
//     constructed successfully never errors on lookups.

package layout

import "errors"

// ErrUnknownLayout indicates a lookup against a layout id that was never
// registered in this Table.
// Usage: if errors.Is(err, ErrUnknownLayout) { /* list known layouts */ }.
var ErrUnknownLayout = errors.New("layout: unknown layout id")

// ErrDuplicateLayout indicates an attempt to register a layout id that
// already exists; the registry is append-only and ids are unique.
// Usage: if errors.Is(err, ErrDuplicateLayout) { /* pick another id */ }.
var ErrDuplicateLayout = errors.New("layout: duplicate layout id")

// ErrEmptyLayout indicates a registration with an empty id or an empty
// character table; such a layout could never resolve anything.
// Usage: if errors.Is(err, ErrEmptyLayout) { /* fix the table */ }.
var ErrEmptyLayout = errors.New("layout: empty layout id or table")

// ErrBadEntry indicates a table entry outside the supported alphabet
// (lowercase letters, digits, underscore) or a malformed YAML key.
// Usage: if errors.Is(err, ErrBadEntry) { /* fix the offending key */ }.
var ErrBadEntry = errors.New("layout: unsupported table entry")
