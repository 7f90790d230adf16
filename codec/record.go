// SPDX-License-Identifier: MIT
// Package: sigil/codec
//
// record.go — the canonical Record type, Encode, Match and the seed
// composition helpers.
//
// Contract (strict):
//   • Encode copies per segment ONLY the structural features: source
//     characters exactly as typed, class, direction, length bin. Style,
//     color and curve geometry never enter a Record.
//   • ProvenanceHash = HashHex(layoutID + "|" + lowercased name); it is a
//     derived sanity-check field, recomputable at any time, and excluded
//     from Match.
//   • Length counts the characters of the RAW input name, resolved or
//     not; downstream verifiers compare it against the presented name.
//
// AI-Hints:
//   • StyleSeed (case-preserving) and provenanceKey (lowercasing) differ
//     on purpose: restyling reacts to case changes, provenance does not.

package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/layout"
	"github.com/katalvlaran/sigil/stream"
)

// Version is the record format literal emitted by this implementation.
const Version = "sigil/1"

// ColorScheme is the color-scheme literal carried for provenance; colors
// themselves never enter a Record.
const ColorScheme = "classic"

// seedSeparator joins the layout id and the name in both seed strings.
const seedSeparator = "|"

// SegmentRecord is the structural projection of one built segment.
type SegmentRecord struct {
	A         string // first source character, case preserved
	B         string // second source character, case preserved
	Class     classify.PairClass
	Direction int // compass bucket in [0,7]
	LengthBin int // pitch bucket in [0,3]
}

// Record is the canonical, comparable artifact of one signature.
// Immutable once built.
type Record struct {
	Version        string
	Layout         layout.LayoutID
	DashMode       builder.DashMode
	ColorScheme    string
	Length         int
	ProvenanceHash string
	Segments       []SegmentRecord
}

// StyleSeed composes the canonical style-stream seed for a signature:
// the layout id, the separator, and the name with case preserved.
// Complexity: O(len(name)).
func StyleSeed(name string, id layout.LayoutID) string {
	return string(id) + seedSeparator + name
}

// provenanceKey composes the hashed provenance string: layout id,
// separator, lowercased name.
func provenanceKey(name string, id layout.LayoutID) string {
	return string(id) + seedSeparator + strings.ToLower(name)
}

// ProvenanceHash recomputes the 8-hex-digit provenance hash for a
// name/layout pair; Encode uses it and verifiers may call it directly.
// Complexity: O(len(name)).
func ProvenanceHash(name string, id layout.LayoutID) string {
	return stream.HashHex(provenanceKey(name, id))
}

// Encode builds the canonical Record for name on layout id from the built
// segments. Errors: ErrEmptyName, ErrNoSegments — encoding is skipped
// when fewer than two characters resolved or the name is empty.
// Complexity: O(len(segments)).
func Encode(name string, id layout.LayoutID, dash builder.DashMode, segments []builder.Segment) (Record, error) {
	if name == "" {
		return Record{}, fmt.Errorf("Encode: %w", ErrEmptyName)
	}
	if len(segments) == 0 {
		return Record{}, fmt.Errorf("Encode(%q): %w", name, ErrNoSegments)
	}

	recs := make([]SegmentRecord, len(segments))
	for i, seg := range segments {
		recs[i] = SegmentRecord{
			A:         string(seg.From.Char),
			B:         string(seg.To.Char),
			Class:     seg.Class,
			Direction: seg.Direction,
			LengthBin: seg.LengthBin,
		}
	}

	return Record{
		Version:        Version,
		Layout:         id,
		DashMode:       dash,
		ColorScheme:    ColorScheme,
		Length:         utf8.RuneCountInString(name),
		ProvenanceHash: ProvenanceHash(name, id),
		Segments:       recs,
	}, nil
}

// Match reports whether two records describe the same signature: layout,
// dash mode, length and the full ordered segment list must be
// structurally equal. ProvenanceHash is excluded — it is derived, not a
// source of truth. Complexity: O(len(segments)).
func Match(a, b Record) bool {
	if a.Layout != b.Layout || a.DashMode != b.DashMode || a.Length != b.Length {
		return false
	}
	if len(a.Segments) != len(b.Segments) {
		return false
	}
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			return false
		}
	}

	return true
}
