// SPDX-License-Identifier: MIT
// Package: sigil/layout
//
// tables.go — canonical key-position data for the shipped layouts
// (data-only).
//
// Purpose:
//   - Single source of truth for shipped key geometry on the abstract
//     grid. Row helpers keep the data concise and non-repetitive.
//   - Key pitch is keyPitch (40 units); rows carry the physical stagger of
//     a typical keyboard (0 / 20 / 30 / 50 units) so diagonal strokes get
//     realistic lengths.
//   - '_' sits at the hyphen key slot at the end of the digit row.
//
// Determinism:
//   - Data here are immutable; changing any coordinate is a breaking
//     change for every stored codec built on that layout (length bins and
//     directions derive from these positions).
//
// AI-Hints:
//   - To add a layout, add a data-only <name>Keys() function here plus a
//     Register call (or ship it as YAML via LoadYAML); nothing else in the
//     repo needs to change.

package layout

// Grid geometry shared by all shipped layouts.
const (
	// keyPitch is the horizontal distance between adjacent key centers.
	keyPitch = 40.0
	// rowPitch is the vertical distance between adjacent key rows.
	rowPitch = 40.0

	// digitRowY is the vertical coordinate of the digit row.
	digitRowY = 0.0
	// topRowY/homeRowY/bottomRowY follow at one rowPitch each.
	topRowY    = digitRowY + rowPitch
	homeRowY   = topRowY + rowPitch
	bottomRowY = homeRowY + rowPitch

	// Physical row staggers relative to the digit row.
	digitRowStagger  = 0.0
	topRowStagger    = 20.0
	homeRowStagger   = 30.0
	bottomRowStagger = 50.0
)

// keyRow writes one row of keys into dst: chars[i] is centered at
// (stagger + i*keyPitch, y). Complexity: O(len(chars)).
func keyRow(dst map[rune]Position, chars string, stagger, y float64) {
	i := 0
	for _, r := range chars {
		dst[r] = Position{X: stagger + float64(i)*keyPitch, Y: y}
		i++
	}
}

// qwertyKeys returns the canonical QWERTY table: digits 1..0 plus '_' at
// the hyphen slot on the top row, then the three staggered letter rows.
func qwertyKeys() map[rune]Position {
	keys := make(map[rune]Position, 37)
	keyRow(keys, "1234567890_", digitRowStagger, digitRowY)
	keyRow(keys, "qwertyuiop", topRowStagger, topRowY)
	keyRow(keys, "asdfghjkl", homeRowStagger, homeRowY)
	keyRow(keys, "zxcvbnm", bottomRowStagger, bottomRowY)

	return keys
}

// azertyKeys returns the canonical AZERTY table. The digit row (and '_')
// keeps the QWERTY slots; the letter rows follow the French arrangement.
func azertyKeys() map[rune]Position {
	keys := make(map[rune]Position, 37)
	keyRow(keys, "1234567890_", digitRowStagger, digitRowY)
	keyRow(keys, "azertyuiop", topRowStagger, topRowY)
	keyRow(keys, "qsdfghjklm", homeRowStagger, homeRowY)
	keyRow(keys, "wxcvbn", bottomRowStagger, bottomRowY)

	return keys
}
