// SPDX-License-Identifier: MIT
// Package: sigil/verify
//
// types.go — options and memory modes for signature similarity.

package verify

// MemoryMode controls how Similarity stores its DP matrix.
//
//   - FullMatrix   — keep the entire (n+1)×(m+1) matrix in memory.
//     Allows distance + full backtrace of the alignment path.
//     Memory: O(n·m).
//
//   - RollingArray — only keep two rows (current and previous).
//     Reduces memory to O(min(n,m)) but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// RollingArray mode: keep only two rows, no path recovery.
	RollingArray
)

// Options configures Similarity.
//
// Fields:
//   - Window       — maximum deviation |i−j| allowed (Sakoe–Chiba band);
//     0 or negative means no windowing constraint.
//   - SlopePenalty — cost added to insertion/deletion steps (locality bias).
//   - ReturnPath   — if true, backtrack and return the alignment path;
//     requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or RollingArray storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the deterministic defaults: no window, no slope
// penalty, no path, full matrix.
func DefaultOptions() *Options {
	return &Options{
		Window:       0,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
