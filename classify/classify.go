// SPDX-License-Identifier: MIT
// Package: sigil/classify
//
// classify.go — the five-class pair classifier.
//
// Contract (strict):
//   • Classify(a, b) is pure, total and order-sensitive.
//   • Rule priority is fixed and must never be reordered:
//       1. digit or '_' on either side  → NumericOrUnderscore
//       2. both uppercase               → UpperUpper
//       3. both lowercase               → LowerLower
//       4. upper then lower             → UpperLower
//       5. remaining mixed case         → LowerUpper
//   • UpperLower and LowerUpper are distinct codec features; never merge.
//
// AI-Hints:
//   • Branch order mirrors the priority list 1:1; keep it that way so the
//     codec stays comparable across implementations.
//   • New character categories require a new class constant appended at the
//     end (String() switch included); existing values are wire-stable.

package classify

import "unicode"

// PairClass is the case/digit-sensitive category of a character pair.
// Values are wire-stable: they appear verbatim in codec records.
type PairClass uint8

const (
	// UpperUpper marks a pair of two uppercase letters.
	UpperUpper PairClass = iota
	// UpperLower marks an uppercase letter followed by a lowercase one.
	UpperLower
	// LowerUpper marks a lowercase letter followed by an uppercase one.
	LowerUpper
	// LowerLower marks a pair of two lowercase letters.
	LowerLower
	// NumericOrUnderscore marks a pair where either side is a digit or '_'.
	NumericOrUnderscore
)

// classLabels holds the stable textual labels, indexed by PairClass.
var classLabels = [...]string{
	UpperUpper:          "UpperUpper",
	UpperLower:          "UpperLower",
	LowerUpper:          "LowerUpper",
	LowerLower:          "LowerLower",
	NumericOrUnderscore: "NumericOrUnderscore",
}

// String returns the stable label of c ("UpperUpper", …).
// Unknown values render as "PairClass(?)" to keep String total.
// Complexity: O(1).
func (c PairClass) String() string {
	if int(c) < len(classLabels) {
		return classLabels[c]
	}

	return "PairClass(?)"
}

// ParseClass maps a stable label back to its PairClass.
// Returns ok=false for unknown labels; used by codec deserialization.
// Complexity: O(k) over the five labels.
func ParseClass(label string) (PairClass, bool) {
	for i, l := range classLabels {
		if l == label {
			return PairClass(i), true
		}
	}

	return 0, false
}

// Classify maps the ordered character pair (a, b) to its PairClass.
// The rule priority is fixed; see the package contract above.
// Complexity: O(1), no allocations.
func Classify(a, b rune) PairClass {
	// Rule 1: digits and underscore dominate everything else.
	if isNumericOrUnderscore(a) || isNumericOrUnderscore(b) {
		return NumericOrUnderscore
	}
	// Rule 2: both uppercase.
	if unicode.IsUpper(a) && unicode.IsUpper(b) {
		return UpperUpper
	}
	// Rule 3: both lowercase.
	if unicode.IsLower(a) && unicode.IsLower(b) {
		return LowerLower
	}
	// Rule 4: uppercase into lowercase.
	if unicode.IsUpper(a) && unicode.IsLower(b) {
		return UpperLower
	}

	// Rule 5: the remaining mixed case (lowercase into uppercase).
	return LowerUpper
}

// isNumericOrUnderscore reports whether r is an ASCII digit or '_'.
func isNumericOrUnderscore(r rune) bool {
	return (r >= '0' && r <= '9') || r == '_'
}
