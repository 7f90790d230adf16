// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// types.go — segment value types and the curve/dash mode enums.
//
// Design:
//   • Segment is immutable once built and owned by the signature being
//     computed; every keystroke upstream triggers a full rebuild, so
//     segments are never shared across recomputations.
//   • Style and Curve are render-only: the codec copies structural fields
//     (class, direction, length bin, source chars) and nothing from here.
//
// AI-Hints:
//   • Mode String()/Parse pairs exist for the codec and the CLI; the
//     labels are wire-stable.

package builder

import (
	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/layout"
)

// CurveMode selects the geometry emitted per segment.
type CurveMode int

const (
	// Straight emits a plain line between the two key positions.
	Straight CurveMode = iota
	// Quadratic emits one turn-aware perpendicular control point.
	Quadratic
	// CatmullRom emits a centripetal Catmull-Rom-derived cubic.
	CatmullRom
)

// curveLabels holds the stable CurveMode labels.
var curveLabels = [...]string{Straight: "straight", Quadratic: "quadratic", CatmullRom: "catmullrom"}

// String returns the stable lowercase label of m.
func (m CurveMode) String() string {
	if m >= Straight && int(m) < len(curveLabels) {
		return curveLabels[m]
	}

	return "CurveMode(?)"
}

// ParseCurveMode maps a stable label back to its CurveMode.
func ParseCurveMode(label string) (CurveMode, bool) {
	for i, l := range curveLabels {
		if l == label {
			return CurveMode(i), true
		}
	}

	return 0, false
}

// DashMode selects how per-segment dash patterns are chosen.
type DashMode int

const (
	// DashAlphabet draws one seeded stream value per segment to pick among
	// the class's allowed dash patterns.
	DashAlphabet DashMode = iota
	// DashLegacy applies one fixed pattern per class with no randomness.
	DashLegacy
)

// dashLabels holds the stable DashMode labels.
var dashLabels = [...]string{DashAlphabet: "alphabet", DashLegacy: "legacy"}

// String returns the stable lowercase label of m.
func (m DashMode) String() string {
	if m >= DashAlphabet && int(m) < len(dashLabels) {
		return dashLabels[m]
	}

	return "DashMode(?)"
}

// ParseDashMode maps a stable label back to its DashMode.
func ParseDashMode(label string) (DashMode, bool) {
	for i, l := range dashLabels {
		if l == label {
			return DashMode(i), true
		}
	}

	return 0, false
}

// CurveKind tags which control points of a Curve are meaningful.
type CurveKind int

const (
	// KindLine uses no control points.
	KindLine CurveKind = iota
	// KindQuad uses C1 only.
	KindQuad
	// KindCubic uses C1 and C2.
	KindCubic
)

// Curve is the render-only geometry descriptor of one segment.
type Curve struct {
	Kind CurveKind
	C1   layout.Position
	C2   layout.Position
}

// Style is the render-only stroke descriptor of one segment.
// An empty Dash means a solid stroke.
type Style struct {
	Dash  []float64
	Color string
}

// Segment is the drawable/classifiable unit between two consecutive
// resolved characters. Immutable once built.
type Segment struct {
	From      layout.ResolvedPoint
	To        layout.ResolvedPoint
	Class     classify.PairClass
	Direction int // compass bucket in [0,7]
	LengthBin int // pitch bucket in [0,3]
	Style     Style
	Curve     Curve
}
