package verify_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/codec"
	"github.com/katalvlaran/sigil/layout"
	"github.com/katalvlaran/sigil/verify"
)

// record builds the codec record of name on qwerty with defaults.
func record(t *testing.T, name string) codec.Record {
	t.Helper()
	tbl := layout.New()
	segs := builder.Build(tbl.ResolveAll(name, layout.Qwerty))
	rec, err := codec.Encode(name, layout.Qwerty, builder.DashAlphabet, segs)
	if err != nil {
		t.Fatalf("Encode(%q): %v", name, err)
	}

	return rec
}

//----------------------------------------------------------------------------//
// Similarity Tests
//----------------------------------------------------------------------------//

// TestSimilarity_IdenticalRecords expects zero distance and a pure
// diagonal alignment path.
func TestSimilarity_IdenticalRecords(t *testing.T) {
	rec := record(t, "Ab_3jkl")
	opts := verify.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := verify.Similarity(rec, rec, opts)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if dist != 0 {
		t.Errorf("distance = %v; want 0 for identical records", dist)
	}
	if len(path) != len(rec.Segments) {
		t.Fatalf("path length = %d; want %d", len(path), len(rec.Segments))
	}
	for i, step := range path {
		if step != [2]int{i, i} {
			t.Errorf("path[%d] = %v; want diagonal {%d %d}", i, step, i, i)
		}
	}
}

// TestSimilarity_DifferentNamesScorePositive checks that clearly
// different shapes earn a positive distance.
func TestSimilarity_DifferentNamesScorePositive(t *testing.T) {
	a, b := record(t, "qqpp"), record(t, "zmzm")
	dist, _, err := verify.Similarity(a, b, nil)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if dist <= 0 {
		t.Errorf("distance = %v; want > 0 for different shapes", dist)
	}
}

// TestSimilarity_RollingMatchesFullDistance cross-checks the two memory
// modes against each other.
func TestSimilarity_RollingMatchesFullDistance(t *testing.T) {
	a, b := record(t, "signature"), record(t, "signatures")

	full, _, err := verify.Similarity(a, b, &verify.Options{MemoryMode: verify.FullMatrix})
	if err != nil {
		t.Fatalf("FullMatrix: %v", err)
	}
	rolling, _, err := verify.Similarity(a, b, &verify.Options{MemoryMode: verify.RollingArray})
	if err != nil {
		t.Fatalf("RollingArray: %v", err)
	}
	if full != rolling {
		t.Errorf("full=%v rolling=%v; modes must agree on distance", full, rolling)
	}
}

// TestSimilarity_Sentinels covers both error classes.
func TestSimilarity_Sentinels(t *testing.T) {
	rec := record(t, "ab")

	if _, _, err := verify.Similarity(codec.Record{}, rec, nil); !errors.Is(err, verify.ErrEmptyRecord) {
		t.Errorf("empty record error = %v; want ErrEmptyRecord", err)
	}

	opts := &verify.Options{ReturnPath: true, MemoryMode: verify.RollingArray}
	if _, _, err := verify.Similarity(rec, rec, opts); !errors.Is(err, verify.ErrPathNeedsFullMatrix) {
		t.Errorf("rolling+path error = %v; want ErrPathNeedsFullMatrix", err)
	}
}

// TestSimilarity_UnequalLengthsPath recovers an alignment path between
// sequences of different lengths under a fractional slope penalty, where
// cell costs carry thirds and quarters. The path must stay in bounds, run
// corner to corner, and advance by single monotone steps.
func TestSimilarity_UnequalLengthsPath(t *testing.T) {
	a := codec.Record{Segments: []codec.SegmentRecord{
		{A: "A", B: "B", Class: classify.UpperUpper, Direction: 0, LengthBin: 0},
	}}
	b := codec.Record{Segments: []codec.SegmentRecord{
		{A: "A", B: "B", Class: classify.UpperUpper, Direction: 0, LengthBin: 0},
		{A: "B", B: "c", Class: classify.UpperLower, Direction: 3, LengthBin: 2},
		{A: "C", B: "D", Class: classify.UpperUpper, Direction: 0, LengthBin: 1},
	}}
	opts := &verify.Options{ReturnPath: true, SlopePenalty: 0.1, MemoryMode: verify.FullMatrix}

	_, path, err := verify.Similarity(a, b, opts)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if len(path) == 0 {
		t.Fatal("path is empty; want a corner-to-corner alignment")
	}
	if first := path[0]; first != [2]int{0, 0} {
		t.Errorf("path[0] = %v; want {0 0}", first)
	}
	if last := path[len(path)-1]; last != [2]int{len(a.Segments) - 1, len(b.Segments) - 1} {
		t.Errorf("path end = %v; want {%d %d}", last, len(a.Segments)-1, len(b.Segments)-1)
	}
	for k, step := range path {
		if step[0] < 0 || step[0] >= len(a.Segments) || step[1] < 0 || step[1] >= len(b.Segments) {
			t.Fatalf("path[%d] = %v; indexes out of bounds", k, step)
		}
		if k == 0 {
			continue
		}
		di, dj := step[0]-path[k-1][0], step[1]-path[k-1][1]
		if di < 0 || di > 1 || dj < 0 || dj > 1 || (di == 0 && dj == 0) {
			t.Errorf("path[%d-1]→path[%d] steps by {%d %d}; want monotone unit step", k, k, di, dj)
		}
	}
}

// TestSimilarity_WindowConstrains verifies a tight Sakoe–Chiba band still
// aligns same-length sequences diagonally.
func TestSimilarity_WindowConstrains(t *testing.T) {
	a, b := record(t, "hello"), record(t, "hello")
	dist, _, err := verify.Similarity(a, b, &verify.Options{Window: 1, MemoryMode: verify.FullMatrix})
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if dist != 0 {
		t.Errorf("windowed distance = %v; want 0", dist)
	}
}
