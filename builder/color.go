// SPDX-License-Identifier: MIT
// Package: sigil/builder
//
// color.go — deterministic render-only segment colors.
//
// Contract (strict):
//   • Colors are purely cosmetic: they never feed the codec or any other
//     feature, and nothing here may consume the style stream.
//   • Hue derives from hashing the ordered character pair plus the class
//     label; saturation/lightness come from a per-class base table with a
//     clamped length-derived lightness adjustment.
//
// AI-Hints:
//   • Output is a CSS hsl() string, ready for SVG stroke attributes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sigil/classify"
	"github.com/katalvlaran/sigil/stream"
)

// hueDegrees is the hue wheel size.
const hueDegrees = 360

// Lightness adjustment: (length − lightPivot) / lightSlope, clamped to
// ±lightClamp percent.
const (
	lightPivot = 60.0
	lightSlope = 4.0
	lightClamp = 12
)

// classBaseColor holds per-class saturation/lightness bases (percent).
var classBaseColor = map[classify.PairClass]struct{ sat, light int }{
	classify.UpperUpper:          {sat: 65, light: 45},
	classify.UpperLower:          {sat: 60, light: 50},
	classify.LowerUpper:          {sat: 60, light: 55},
	classify.LowerLower:          {sat: 55, light: 60},
	classify.NumericOrUnderscore: {sat: 45, light: 40},
}

// segmentColor derives the deterministic hsl() color of one segment from
// its ordered character pair, class and raw length. Complexity: O(1).
func segmentColor(a, b rune, class classify.PairClass, length float64) string {
	hue := int(stream.Hash32(string(a)+string(b)+class.String()) % hueDegrees)

	base := classBaseColor[class]
	adjust := int((length - lightPivot) / lightSlope)
	if adjust > lightClamp {
		adjust = lightClamp
	}
	if adjust < -lightClamp {
		adjust = -lightClamp
	}

	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, base.sat, base.light+adjust)
}
