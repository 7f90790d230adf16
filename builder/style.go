// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// style.go — canonical per-class dash-pattern lists and selection
// (data + policy).
//
// Contract (strict):
//   • The per-class choice lists below are canonical data: order and
//     literal values are wire-relevant because the alphabet-mode index
//     comes from a seeded stream draw. Never reorder or dedupe them.
//   • [8 6] appears in both the UpperLower and LowerUpper lists; the
//     overlap is literal, intentional reuse — do not "fix" it.
//   • Alphabet mode consumes exactly one draw per segment, even for the
//     single-choice UpperUpper list. Legacy mode consumes none.
//
// AI-Hints:
//   • A nil pattern means a solid stroke.
//   • New classes extend the two tables below; selection code is generic.

package builder

import (
	"math"

	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/stream"
)

// alphabetDashChoices is the fixed ordered list of allowed dash patterns
// per class for DashAlphabet mode.
var alphabetDashChoices = map[classify.PairClass][][]float64{
	classify.UpperUpper:          {nil},                 // solid only
	classify.UpperLower:          {{8, 6}, {12, 4}},     // long dashes
	classify.LowerUpper:          {{8, 6}, {4, 4}},      // long/short dashes
	classify.LowerLower:          {{6, 6}, {2, 4}},      // even/short dashes
	classify.NumericOrUnderscore: {{2, 6}, {1, 4}},      // dotted
}

// legacyDashPatterns is the fixed single pattern per class for DashLegacy
// mode: sparse dots for digits/underscore, solid for UpperUpper, one
// shared dash for everything else.
var legacyDashPatterns = map[classify.PairClass][]float64{
	classify.UpperUpper:          nil,
	classify.UpperLower:          {8, 6},
	classify.LowerUpper:          {8, 6},
	classify.LowerLower:          {8, 6},
	classify.NumericOrUnderscore: {1, 6},
}

// selectDash returns the dash pattern of one segment. In alphabet mode it
// consumes exactly one stream draw and indexes the class's choice list via
// floor(draw×n) mod n; in legacy mode it returns the fixed pattern with no
// draw. The returned slice is shared canonical data; callers must not
// mutate it. Complexity: O(1).
func selectDash(class classify.PairClass, mode DashMode, st *stream.Stream) []float64 {
	if mode == DashLegacy {
		return legacyDashPatterns[class]
	}

	choices := alphabetDashChoices[class]
	n := len(choices)
	// One draw per segment, always — the draw order is part of the
	// deterministic contract even when only one choice exists.
	draw := st.Next()
	idx := int(math.Floor(draw*float64(n))) % n

	return choices[idx]
}
