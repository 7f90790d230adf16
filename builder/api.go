// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// api.go — the Build orchestrator and per-segment feature derivation.
//
// Design contract (strict):
//   - One orchestrator: Build(points, opts...). Resolves cfg, seeds the
//     style stream once, walks consecutive point pairs in input order.
//   - Determinism: same points/options/seed ⇒ identical segments,
//     features and geometry.
//   - Safety: never panic, never error; fewer than 2 points ⇒ nil.
//
// AI-Hints:
//   - Feature math lives here (direction/length bin); styling in
//     style.go/color.go; geometry in impl_geometry.go. Keep that split —
//     it mirrors the codec's structural/render boundary.

package builder

import (
	"math"

	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/layout"
	"github.com/katalvlaran/sigil/stream"
)

// minPathPoints is the smallest point count that yields any segment.
const minPathPoints = 2

// Build derives the ordered segment list of a signature path: one segment
// per consecutive pair of resolved points, each carrying structural
// features (class, direction, length bin) plus render-only style and
// geometry. Fewer than minPathPoints points yield nil without error.
//
// Determinism:
//   - The style stream is seeded from WithSeed and consumed strictly in
//     traversal order, one draw per segment, alphabet dash mode only.
//
// Complexity: O(n) time and space, n = len(points).
func Build(points []layout.ResolvedPoint, opts ...Option) []Segment {
	if len(points) < minPathPoints {
		return nil
	}

	cfg := newBuildConfig(opts...)
	// One stream per build invocation; no state survives between calls.
	st := stream.New(cfg.seed)

	segments := make([]Segment, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		from, to := points[i], points[i+1]
		dx := to.Pos.X - from.Pos.X
		dy := to.Pos.Y - from.Pos.Y
		length := math.Hypot(dx, dy)

		seg := Segment{
			From:      from,
			To:        to,
			Class:     classify.Classify(from.Char, to.Char),
			Direction: directionBucket(dx, dy),
			LengthBin: lengthBin(length),
		}
		seg.Style = Style{
			Dash:  selectDash(seg.Class, cfg.dash, st),
			Color: segmentColor(from.Char, to.Char, seg.Class, length),
		}
		seg.Curve = segmentCurve(points, i, cfg.curve, length)

		segments = append(segments, seg)
	}

	return segments
}

// directionBucket maps a segment vector to one of the 8 compass buckets:
// 0 = east, 2 = north (screen-up, i.e. dy < 0), 4 = west, 6 = south.
// Boundary angles round to the nearest bucket modulo 8.
// Complexity: O(1).
func directionBucket(dx, dy float64) int {
	// Screen coordinates grow downward; negate dy so the buckets increase
	// counterclockwise in the standard math orientation.
	raw := int(math.Round(math.Atan2(-dy, dx) / bucketAngle))

	return ((raw % DirectionBuckets) + DirectionBuckets) % DirectionBuckets
}

// lengthBin buckets a segment length against the fixed grid-unit
// thresholds: <40 → 0, <80 → 1, <120 → 2, else 3.
// Complexity: O(1).
func lengthBin(length float64) int {
	switch {
	case length < lengthBinShort:
		return 0
	case length < lengthBinMedium:
		return 1
	case length < lengthBinLong:
		return 2
	default:
		return 3
	}
}
