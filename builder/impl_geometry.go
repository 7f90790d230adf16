// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// impl_geometry.go — render-only curve construction per segment.
//
// Contract (strict):
//   • Geometry never influences structural features; it is computed after
//     class/direction/length bin and consumed only by renderers.
//   • Quadratic: one control point offset perpendicular to the segment;
//     magnitude scales with length, sign follows the turn implied by the
//     previous point (cross-product test), defaulting to defaultTurnSign
//     at the path start and for collinear triples.
//   • Catmull-Rom: centripetal parametrization (centripetalExponent on
//     inter-point distances) converted to cubic Bézier handles; missing
//     neighbors at the path ends are clamped to the segment's own
//     endpoints; zero denominators are substituted with unitDenominator.
//
// AI-Hints:
//   • All branches are closed-form; no iteration, no tolerance loops —
//     determinism comes free as long as the formulas stay untouched.

package builder

import (
	"math"

	"github.com/katalvlaran/sigil/layout"
)

// segmentCurve dispatches on the configured curve mode for the segment
// points[i] → points[i+1]. Complexity: O(1).
func segmentCurve(points []layout.ResolvedPoint, i int, mode CurveMode, length float64) Curve {
	switch mode {
	case Quadratic:
		return quadraticCurve(points, i, length)
	case CatmullRom:
		return catmullRomCurve(points, i)
	default:
		return Curve{Kind: KindLine}
	}
}

// quadraticCurve places one control point at the segment midpoint, offset
// perpendicular to the segment. The offset side follows the turn direction
// implied by the previous point so consecutive curves cohere instead of
// flipping randomly. Complexity: O(1).
func quadraticCurve(points []layout.ResolvedPoint, i int, length float64) Curve {
	from, to := points[i].Pos, points[i+1].Pos
	dx, dy := to.X-from.X, to.Y-from.Y

	// Unit normal of the segment; a zero-length segment falls back to the
	// unit denominator so the control point stays finite.
	den := length
	if den == 0 {
		den = unitDenominator
	}
	nx, ny := -dy/den, dx/den

	sign := defaultTurnSign
	if i > 0 {
		prev := points[i-1].Pos
		// Cross product of (prev→from) × (from→to): its sign is the turn
		// direction; zero (collinear) keeps the default side.
		cross := (from.X-prev.X)*dy - (from.Y-prev.Y)*dx
		if cross < 0 {
			sign = -defaultTurnSign
		}
	}

	offset := length * quadBendFactor * sign

	return Curve{
		Kind: KindQuad,
		C1: layout.Position{
			X: (from.X+to.X)/2 + nx*offset,
			Y: (from.Y+to.Y)/2 + ny*offset,
		},
	}
}

// catmullRomCurve derives the cubic Bézier handles of the segment
// points[i] → points[i+1] from its neighboring points using the
// centripetal Catmull-Rom parametrization. The first/last segment reuses
// its own endpoint as the missing neighbor. Complexity: O(1).
func catmullRomCurve(points []layout.ResolvedPoint, i int) Curve {
	p1, p2 := points[i].Pos, points[i+1].Pos
	// Clamp missing neighbors to the segment's own endpoints.
	p0, p3 := p1, p2
	if i > 0 {
		p0 = points[i-1].Pos
	}
	if i+2 < len(points) {
		p3 = points[i+2].Pos
	}

	// Knot intervals under the centripetal exponent.
	d1 := math.Pow(dist(p0, p1), centripetalExponent)
	d2 := math.Pow(dist(p1, p2), centripetalExponent)
	d3 := math.Pow(dist(p2, p3), centripetalExponent)

	return Curve{
		Kind: KindCubic,
		C1:   catmullHandle(p0, p1, p2, d1, d2),
		C2:   catmullHandle(p3, p2, p1, d3, d2),
	}
}

// catmullHandle computes one cubic handle adjacent to mid, looking from
// outer across mid toward inner, with knot intervals dOut (outer↔mid) and
// dIn (mid↔inner). Zero denominators are substituted with unitDenominator
// rather than erroring, so degenerate spacing affects only this handle.
// Complexity: O(1).
func catmullHandle(outer, mid, inner layout.Position, dOut, dIn float64) layout.Position {
	// A zero outer interval (clamped path end or repeated key) collapses
	// the numerator as well; the centripetal limit of the handle is mid.
	if dOut == 0 {
		return mid
	}

	dOutSq, dInSq := dOut*dOut, dIn*dIn
	den := bezierThirds * dOut * (dOut + dIn)
	if den == 0 {
		den = unitDenominator
	}
	coefMid := 2*dOutSq + bezierThirds*dOut*dIn + dInSq

	return layout.Position{
		X: (dOutSq*inner.X - dInSq*outer.X + coefMid*mid.X) / den,
		Y: (dOutSq*inner.Y - dInSq*outer.Y + coefMid*mid.Y) / den,
	}
}

// dist is the Euclidean distance between two positions.
func dist(a, b layout.Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
