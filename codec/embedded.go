// SPDX-License-Identifier: MIT
// Package: sigil/codec
//
// embedded.go — the markup-embeddable form: an XML element carrying the
// full Record, suitable for an SVG <metadata> block.
//
// Contract (strict):
//   • MarshalEmbedded escapes the five standard markup special characters
//     (& < > ' ") in every attribute value; UnmarshalEmbedded restores
//     them exactly (round-trip fidelity).
//   • UnmarshalEmbedded accepts either the bare element or any document
//     containing it (e.g. a complete SVG); lookup is by local name, so
//     the namespace prefix is not load-bearing on the way in.
//   • Both forms carry the same fields as the text form; parsing shares
//     validateSegment with text.go.
//
// AI-Hints:
//   • Output is assembled manually (small, fixed shape); parsing uses
//     xmlquery, which also handles entity unescaping.

package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/layout"
)

// Embedded-form markup tokens (no magic strings).
const (
	codecElement   = "codec"
	segmentElement = "segment"
	codecPrefix    = "sigil"
	codecNamespace = "https://github.com/katalvlaran/sigil"
)

// escapeMarkup escapes the five standard markup special characters for
// use in attribute values. '&' must go first so entities are not
// double-escaped. Complexity: O(len(s)).
func escapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, "\"", "&quot;")

	return s
}

// MarshalEmbedded serializes r into its markup-embeddable form.
// Complexity: O(len(r.Segments)).
func MarshalEmbedded(r Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<%s:%s xmlns:%s="%s" version="%s" layout="%s" dash="%s" colors="%s" length="%d" hash="%s">`,
		codecPrefix, codecElement, codecPrefix, codecNamespace,
		escapeMarkup(r.Version), escapeMarkup(string(r.Layout)),
		r.DashMode.String(), escapeMarkup(r.ColorScheme),
		r.Length, escapeMarkup(r.ProvenanceHash))
	for _, s := range r.Segments {
		fmt.Fprintf(&sb,
			`<%s:%s a="%s" b="%s" class="%s" direction="%d" lengthBin="%d"/>`,
			codecPrefix, segmentElement,
			escapeMarkup(s.A), escapeMarkup(s.B), s.Class.String(),
			s.Direction, s.LengthBin)
	}
	fmt.Fprintf(&sb, "</%s:%s>", codecPrefix, codecElement)

	return sb.String()
}

// UnmarshalEmbedded parses the markup-embeddable form (bare element or a
// whole document containing one) back into a Record.
// Errors: ErrMalformedCodec (wrapped with context).
// Complexity: O(len(markup)).
func UnmarshalEmbedded(markup string) (Record, error) {
	root, err := xmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return Record{}, fmt.Errorf("UnmarshalEmbedded: %v: %w", err, ErrMalformedCodec)
	}

	node := findElement(root, codecElement)
	if node == nil {
		return Record{}, fmt.Errorf("UnmarshalEmbedded: no <%s> element: %w", codecElement, ErrMalformedCodec)
	}

	dash, ok := builder.ParseDashMode(node.SelectAttr("dash"))
	if !ok {
		return Record{}, fmt.Errorf("UnmarshalEmbedded: dash %q: %w", node.SelectAttr("dash"), ErrMalformedCodec)
	}
	length, err := strconv.Atoi(node.SelectAttr("length"))
	if err != nil {
		return Record{}, fmt.Errorf("UnmarshalEmbedded: length: %w", ErrMalformedCodec)
	}

	rec := Record{
		Version:        node.SelectAttr("version"),
		Layout:         layout.LayoutID(node.SelectAttr("layout")),
		DashMode:       dash,
		ColorScheme:    node.SelectAttr("colors"),
		Length:         length,
		ProvenanceHash: node.SelectAttr("hash"),
	}

	idx := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != segmentElement {
			continue
		}
		direction, dErr := strconv.Atoi(child.SelectAttr("direction"))
		lengthBin, lErr := strconv.Atoi(child.SelectAttr("lengthBin"))
		if dErr != nil || lErr != nil {
			return Record{}, fmt.Errorf("UnmarshalEmbedded: segment %d: %w", idx, ErrMalformedCodec)
		}
		seg, sErr := validateSegment(
			child.SelectAttr("a"), child.SelectAttr("b"),
			child.SelectAttr("class"), direction, lengthBin)
		if sErr != nil {
			return Record{}, fmt.Errorf("UnmarshalEmbedded: segment %d: %w", idx, sErr)
		}
		rec.Segments = append(rec.Segments, seg)
		idx++
	}

	return rec, nil
}

// findElement walks the parsed tree depth-first for the first element
// whose local name matches, ignoring any namespace prefix.
func findElement(n *xmlquery.Node, local string) *xmlquery.Node {
	if n.Type == xmlquery.ElementNode && n.Data == local {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, local); found != nil {
			return found
		}
	}

	return nil
}
