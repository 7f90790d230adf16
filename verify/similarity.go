// SPDX-License-Identifier: MIT
// Package: sigil/verify
//
// similarity.go — DTW alignment over codec segment-feature sequences.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n, m be the two segment counts. Allocate (n+1)×(m+1) DP matrix D.
//  2. Initialize D[0][0]=0, the remaining first row/col to +∞.
//  3. For i=1..n, j=1..m (and |i−j| ≤ Window, if constrained):
//     cost  = segmentCost(a[i−1], b[j−1])
//     ins   = D[i−1][j]   + SlopePenalty
//     del   = D[i][j−1]   + SlopePenalty
//     match = D[i−1][j−1]
//     D[i][j] = cost + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath && FullMatrix, backtrack from (n,m) to (0,0).
//
// The per-pair cost stays within [0,3]:
//   - class mismatch:       0 or 1
//   - direction distance:   circular over the 8 buckets, normalized to [0,1]
//   - length-bin distance:  |Δbin| normalized to [0,1]
//
// Characters are ignored on purpose: similarity scores the traced shape,
// not the spelling. Exact matching (codec.Match) is the spelling check.
//
// Errors:
//   - ErrEmptyRecord          — if either record has no segments.
//   - ErrPathNeedsFullMatrix  — if ReturnPath=true with RollingArray mode.

package verify

import (
	"errors"
	"math"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/codec"
)

var (
	// ErrEmptyRecord indicates one or both records carry no segments.
	ErrEmptyRecord = errors.New("verify: records must carry segments")

	// ErrPathNeedsFullMatrix indicates that path recovery requires
	// MemoryMode=FullMatrix.
	ErrPathNeedsFullMatrix = errors.New("verify: ReturnPath requires MemoryMode=FullMatrix")
)

// Feature normalization divisors.
const (
	// maxDirectionDistance is the largest circular bucket distance (8/2).
	maxDirectionDistance = builder.DirectionBuckets / 2
	// maxLengthBinDistance is the largest length-bin gap (bins 0..3).
	maxLengthBinDistance = builder.LengthBins - 1
)

// Similarity computes the DTW distance between the segment-feature
// sequences of two codec records. Returns (distance, path, error); the
// path is non-nil only when opts.ReturnPath is set.
//
// Example:
//
//	opts := verify.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := verify.Similarity(recA, recB, opts)
func Similarity(a, b codec.Record, opts *Options) (distance float64, path [][2]int, err error) {
	n, m := len(a.Segments), len(b.Segments)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyRecord
	}

	// Apply options or defaults.
	window := math.MaxInt32
	penalty := 0.0
	mem := FullMatrix
	wantPath := false
	if opts != nil {
		if opts.Window > 0 {
			window = opts.Window
		}
		penalty = opts.SlopePenalty
		mem = opts.MemoryMode
		wantPath = opts.ReturnPath
	}
	if wantPath && mem != FullMatrix {
		return 0, nil, ErrPathNeedsFullMatrix
	}

	// Prepare DP storage.
	var dp [][]float64
	if mem == FullMatrix {
		dp = make([][]float64, n+1)
		for i := range dp {
			dp[i] = make([]float64, m+1)
		}
	} else {
		dp = make([][]float64, 2)
		dp[0] = make([]float64, m+1)
		dp[1] = make([]float64, m+1)
	}
	inf := math.Inf(1)

	// Initialize first row/col.
	if mem == FullMatrix {
		for i := 1; i <= n; i++ {
			dp[i][0] = inf
		}
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	// Fill DP.
	for i := 1; i <= n; i++ {
		curr, prev := i%2, (i-1)%2
		if mem == RollingArray {
			dp[curr][0] = inf
		}
		for j := 1; j <= m; j++ {
			if window < math.MaxInt32 && intAbs(i-j) > window {
				if mem == FullMatrix {
					dp[i][j] = inf
				} else {
					dp[curr][j] = inf
				}
				continue
			}
			cost := segmentCost(a.Segments[i-1], b.Segments[j-1])
			var ins, del, match float64
			if mem == FullMatrix {
				ins = dp[i-1][j] + penalty
				del = dp[i][j-1] + penalty
				match = dp[i-1][j-1]
			} else {
				ins = dp[prev][j] + penalty
				del = dp[curr][j-1] + penalty
				match = dp[prev][j-1]
			}
			if mem == FullMatrix {
				dp[i][j] = cost + min3(ins, del, match)
			} else {
				dp[curr][j] = cost + min3(ins, del, match)
			}
		}
	}

	// Extract final distance.
	if mem == FullMatrix {
		distance = dp[n][m]
	} else {
		distance = dp[n%2][m]
	}

	// Backtrack path if requested. The predecessor of each cell is the
	// cheapest of its three DP neighbors (ties prefer the diagonal); on the
	// first row/column only the remaining edge is walkable.
	if wantPath {
		i, j := n, m
		for {
			path = append(path, [2]int{i - 1, j - 1})
			if i == 1 && j == 1 {
				break
			}
			switch {
			case i == 1:
				j--
			case j == 1:
				i--
			default:
				ins := dp[i-1][j] + penalty
				del := dp[i][j-1] + penalty
				match := dp[i-1][j-1]
				switch {
				case match <= ins && match <= del:
					i--
					j--
				case ins <= del:
					i--
				default:
					j--
				}
			}
		}
		// Reverse in-place to start-to-end order.
		for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
			path[l], path[r] = path[r], path[l]
		}
	}

	return distance, path, nil
}

// segmentCost scores one aligned segment pair over the codec features.
// Range [0,3]; 0 means identical class, direction and length bin.
// Complexity: O(1).
func segmentCost(x, y codec.SegmentRecord) float64 {
	var cost float64
	if x.Class != y.Class {
		cost++
	}
	// Circular distance over the 8 compass buckets.
	dd := intAbs(x.Direction - y.Direction)
	if dd > maxDirectionDistance {
		dd = builder.DirectionBuckets - dd
	}
	cost += float64(dd) / float64(maxDirectionDistance)
	cost += float64(intAbs(x.LengthBin-y.LengthBin)) / float64(maxLengthBinDistance)

	return cost
}

// intAbs returns the absolute value of an int.
func intAbs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
