// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// constants.go — shared feature and geometry constants (no magic numbers).
//
// Determinism:
//   - Every constant here is part of the cross-implementation contract:
//     direction bucketing, length-bin thresholds and the curve parameters
//     all feed values that must reproduce bit-for-bit across runs.

package builder

import "math"

//-----------------------------------------------------------------------------
// Direction bucketing
//-----------------------------------------------------------------------------

// DirectionBuckets is the number of compass buckets (45° each).
const DirectionBuckets = 8

// bucketAngle is the angular width of one direction bucket.
const bucketAngle = math.Pi / 4

//-----------------------------------------------------------------------------
// Length binning
//-----------------------------------------------------------------------------

// Length-bin thresholds in grid units. One key pitch is 40 units, so the
// bins read as <1, <2, <3 and ≥3 key pitches. These are part of the codec
// feature contract and must not track layout tweaks.
const (
	lengthBinShort  = 40.0  // below: bin 0
	lengthBinMedium = 80.0  // below: bin 1
	lengthBinLong   = 120.0 // below: bin 2; at or above: bin 3
)

// LengthBins is the number of length buckets.
const LengthBins = 4

//-----------------------------------------------------------------------------
// Curve geometry
//-----------------------------------------------------------------------------

// quadBendFactor scales the perpendicular control-point offset of a
// quadratic segment relative to its length.
const quadBendFactor = 0.25

// centripetalExponent is the Catmull-Rom parametrization exponent applied
// to inter-point distances (0.5 = centripetal, cusp-free).
const centripetalExponent = 0.5

// bezierThirds converts Catmull-Rom tangents to cubic Bézier handles.
const bezierThirds = 3.0

// unitDenominator substitutes zero denominators in curve math so a
// degenerate (zero-length) neighbor never poisons the segment.
const unitDenominator = 1.0

// defaultTurnSign is the control-point side used at the path start and for
// collinear triples, keeping consecutive curves coherent instead of
// flipping arbitrarily.
const defaultTurnSign = 1.0
