// SPDX-License-Identifier: MIT
// Package: sigil
//
// sigil.go — the end-to-end convenience pipeline.
//
// Contract:
//   • Signature runs resolve → build → encode in one reactive-update
//     shape: one call, one full independent recomputation, no state kept
//     between calls.
//   • The style stream is seeded with codec.StyleSeed(name, id), so the
//     same name on the same layout always restyles identically.
//   • Fewer than two resolved characters (or an empty name) yield
//     (nil, zero Record, error) with the codec sentinels; callers render
//     nothing in that case.

package sigil

import (
	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/codec"
	"github.com/katalvlaran/sigil/layout"
)

// Signature computes the full pipeline for name on layout id: resolved
// points → styled segments (curve/dash modes as given) → canonical codec
// record.
//
// Errors: codec.ErrEmptyName, codec.ErrNoSegments.
// Complexity: O(len(name)).
func Signature(tbl *layout.Table, name string, id layout.LayoutID, curve builder.CurveMode, dash builder.DashMode) ([]builder.Segment, codec.Record, error) {
	points := tbl.ResolveAll(name, id)

	segments := builder.Build(points,
		builder.WithCurveMode(curve),
		builder.WithDashMode(dash),
		builder.WithSeed(codec.StyleSeed(name, id)),
	)

	record, err := codec.Encode(name, id, dash, segments)
	if err != nil {
		return nil, codec.Record{}, err
	}

	return segments, record, nil
}
