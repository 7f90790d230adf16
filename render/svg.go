// SPDX-License-Identifier: MIT
// Package: sigil/render
//
// svg.go — SVG path data and document assembly.
//
// Contract (strict):
//   • PathData emits the segment geometry exactly as built: KindLine→L,
//     KindQuad→Q, KindCubic→C. Coordinates use the shortest exact
//     decimal rendering, so output is byte-stable across runs.
//   • SVG embeds codec.MarshalEmbedded(rec) verbatim inside <metadata>;
//     renderers must never reformat or re-escape it.
//
// AI-Hints:
//   • Option constructors panic on meaningless values (zero/negative
//     sizes), matching the repo-wide option discipline.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/codec"
	"github.com/katalvlaran/sigil/layout"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultPadding frames the layout bounding box on all sides.
	defaultPadding = 30.0
	// defaultStrokeWidth is the stroke width of every segment path.
	defaultStrokeWidth = 2.5
	// svgNamespace is the SVG document namespace.
	svgNamespace = "http://www.w3.org/2000/svg"
)

// config aggregates the render knobs.
type config struct {
	padding     float64
	strokeWidth float64
}

// Option customizes SVG assembly.
type Option func(*config)

// WithPadding sets the canvas padding around the layout bounding box.
// Panics if pad < 0. Complexity: O(1).
func WithPadding(pad float64) Option {
	if pad < 0 {
		panic("render: WithPadding(pad<0)")
	}
	return func(c *config) {
		c.padding = pad
	}
}

// WithStrokeWidth sets the stroke width of segment paths.
// Panics if w <= 0. Complexity: O(1).
func WithStrokeWidth(w float64) Option {
	if w <= 0 {
		panic("render: WithStrokeWidth(w<=0)")
	}
	return func(c *config) {
		c.strokeWidth = w
	}
}

// newConfig resolves deterministic defaults, then applies options in order.
func newConfig(opts ...Option) config {
	cfg := config{padding: defaultPadding, strokeWidth: defaultStrokeWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// coord renders a coordinate with the shortest exact decimal form.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// point renders "x y" for path data.
func point(p layout.Position) string {
	return coord(p.X) + " " + coord(p.Y)
}

// PathData returns the SVG path 'd' attribute of one segment.
// Complexity: O(1).
func PathData(seg builder.Segment) string {
	move := "M" + point(seg.From.Pos)
	switch seg.Curve.Kind {
	case builder.KindQuad:
		return move + " Q" + point(seg.Curve.C1) + " " + point(seg.To.Pos)
	case builder.KindCubic:
		return move + " C" + point(seg.Curve.C1) + " " + point(seg.Curve.C2) + " " + point(seg.To.Pos)
	default:
		return move + " L" + point(seg.To.Pos)
	}
}

// dashAttr renders the stroke-dasharray attribute, empty for solid.
func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = coord(d)
	}

	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
}

// SVG assembles the complete standalone document: canvas sized from the
// layout's bounding box plus padding, one path per segment, and the
// canonical codec embedded in <metadata>.
// Errors: layout.ErrUnknownLayout (via Bounds).
// Complexity: O(len(segs)).
func SVG(tbl *layout.Table, id layout.LayoutID, segs []builder.Segment, rec codec.Record, opts ...Option) (string, error) {
	cfg := newConfig(opts...)

	minX, minY, maxX, maxY, err := tbl.Bounds(id)
	if err != nil {
		return "", fmt.Errorf("SVG: %w", err)
	}
	width := maxX - minX + 2*cfg.padding
	height := maxY - minY + 2*cfg.padding

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="%s" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		svgNamespace,
		coord(minX-cfg.padding), coord(minY-cfg.padding), coord(width), coord(height),
		coord(width), coord(height))
	sb.WriteString("<metadata>" + codec.MarshalEmbedded(rec) + "</metadata>\n")
	fmt.Fprintf(&sb, `<g fill="none" stroke-width="%s" stroke-linecap="round">`+"\n", coord(cfg.strokeWidth))
	for _, seg := range segs {
		fmt.Fprintf(&sb, `<path d="%s" stroke="%s"%s/>`+"\n",
			PathData(seg), seg.Style.Color, dashAttr(seg.Style.Dash))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String(), nil
}
