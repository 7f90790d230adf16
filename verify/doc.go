// Package verify compares two signature codec records: exact structural
// matching lives in the codec package, this one scores how close two
// non-identical signatures are.
//
// 🚀 Why a similarity score?
//
//	Two names typed on different layouts, or two near-identical names,
//	produce codecs that fail exact matching but still trace similar
//	shapes. Similarity aligns the two segment-feature sequences with
//	Dynamic Time Warping and returns the cumulative feature distance —
//	0 means the feature sequences are indistinguishable.
//
// ✨ Key features:
//   - per-segment cost over the codec features only: class mismatch,
//     circular direction distance, length-bin distance (characters and
//     styling are deliberately ignored)
//   - full-matrix mode: exact O(N·M) time & memory, optional alignment
//     path (ReturnPath=true)
//   - rolling mode: O(min(N,M)) memory when only the distance matters
//   - optional Sakoe–Chiba window (|i−j| ≤ w) and slope penalty
//
// Complexity: O(N·M) time; O(N·M) or O(min(N,M)) memory by MemoryMode.
package verify
