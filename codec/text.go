// SPDX-License-Identifier: MIT
// Package: sigil/codec
//
// text.go — the self-describing structured text form (YAML).
//
// Contract (strict):
//   • MarshalText/UnmarshalText round-trip exactly: parse(marshal(r)) is
//     deep-equal to r for every valid Record.
//   • The wire uses stable string labels (class names, dash-mode labels),
//     never raw enum integers, so the text form stays self-describing
//     across implementations.
//   • UnmarshalText validates everything it reads: unknown labels and
//     out-of-range features wrap ErrMalformedCodec.

package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/layout"
)

// yamlRecord mirrors the on-wire document structure.
type yamlRecord struct {
	Version  string        `yaml:"version"`
	Layout   string        `yaml:"layout"`
	Dash     string        `yaml:"dash"`
	Colors   string        `yaml:"colors"`
	Length   int           `yaml:"length"`
	Hash     string        `yaml:"hash"`
	Segments []yamlSegment `yaml:"segments"`
}

// yamlSegment mirrors one on-wire segment entry.
type yamlSegment struct {
	A         string `yaml:"a"`
	B         string `yaml:"b"`
	Class     string `yaml:"class"`
	Direction int    `yaml:"direction"`
	LengthBin int    `yaml:"lengthBin"`
}

// MarshalText serializes r into its canonical YAML form.
// Complexity: O(len(r.Segments)).
func MarshalText(r Record) ([]byte, error) {
	doc := yamlRecord{
		Version:  r.Version,
		Layout:   string(r.Layout),
		Dash:     r.DashMode.String(),
		Colors:   r.ColorScheme,
		Length:   r.Length,
		Hash:     r.ProvenanceHash,
		Segments: make([]yamlSegment, len(r.Segments)),
	}
	for i, s := range r.Segments {
		doc.Segments[i] = yamlSegment{
			A:         s.A,
			B:         s.B,
			Class:     s.Class.String(),
			Direction: s.Direction,
			LengthBin: s.LengthBin,
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("MarshalText: %w", err)
	}

	return data, nil
}

// UnmarshalText parses the canonical YAML form back into a Record,
// validating labels and feature ranges.
// Errors: ErrMalformedCodec (wrapped with positional context).
// Complexity: O(len(data)).
func UnmarshalText(data []byte) (Record, error) {
	var doc yamlRecord
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Record{}, fmt.Errorf("UnmarshalText: %v: %w", err, ErrMalformedCodec)
	}

	dash, ok := builder.ParseDashMode(doc.Dash)
	if !ok {
		return Record{}, fmt.Errorf("UnmarshalText: dash %q: %w", doc.Dash, ErrMalformedCodec)
	}

	rec := Record{
		Version:        doc.Version,
		Layout:         layout.LayoutID(doc.Layout),
		DashMode:       dash,
		ColorScheme:    doc.Colors,
		Length:         doc.Length,
		ProvenanceHash: doc.Hash,
		Segments:       make([]SegmentRecord, len(doc.Segments)),
	}
	for i, s := range doc.Segments {
		seg, err := validateSegment(s.A, s.B, s.Class, s.Direction, s.LengthBin)
		if err != nil {
			return Record{}, fmt.Errorf("UnmarshalText: segment %d: %w", i, err)
		}
		rec.Segments[i] = seg
	}

	return rec, nil
}

// validateSegment converts raw wire fields into a SegmentRecord, checking
// the class label and the feature ranges. Shared by both parsers.
func validateSegment(a, b, classLabel string, direction, lengthBin int) (SegmentRecord, error) {
	class, ok := classify.ParseClass(classLabel)
	if !ok {
		return SegmentRecord{}, fmt.Errorf("class %q: %w", classLabel, ErrMalformedCodec)
	}
	if direction < 0 || direction >= builder.DirectionBuckets {
		return SegmentRecord{}, fmt.Errorf("direction %d: %w", direction, ErrMalformedCodec)
	}
	if lengthBin < 0 || lengthBin >= builder.LengthBins {
		return SegmentRecord{}, fmt.Errorf("lengthBin %d: %w", lengthBin, ErrMalformedCodec)
	}

	return SegmentRecord{A: a, B: b, Class: class, Direction: direction, LengthBin: lengthBin}, nil
}
