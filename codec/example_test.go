// File: codec/example_test.go
package codec_test

import (
	"fmt"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/codec"
	"github.com/katalvlaran/sigil/layout"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Encode
////////////////////////////////////////////////////////////////////////////////

// ExampleEncode demonstrates the canonical record of a short name:
// version and layout labels, raw rune count, and the provenance digest
// of the lowercased "layout|name" key.
//
// Complexity: O(n) for n segments
func ExampleEncode() {
	tbl := layout.New()
	points := tbl.ResolveAll("ab", layout.Qwerty)
	segments := builder.Build(points)

	record, _ := codec.Encode("ab", layout.Qwerty, builder.DashAlphabet, segments)

	fmt.Println(record.Version)
	fmt.Println(record.Layout)
	fmt.Println(record.Length)
	fmt.Println(record.ProvenanceHash)

	// Output:
	// sigil/1
	// qwerty
	// 2
	// 975b0e48
}

////////////////////////////////////////////////////////////////////////////////
// Example: Match
////////////////////////////////////////////////////////////////////////////////

// ExampleMatch demonstrates that matching is structural: curve styling
// differs between the two builds, yet classes, directions and bins agree.
//
// Complexity: O(n)
func ExampleMatch() {
	tbl := layout.New()
	points := tbl.ResolveAll("ab", layout.Qwerty)

	straight := builder.Build(points)
	curved := builder.Build(points, builder.WithCurveMode(builder.CatmullRom))

	recA, _ := codec.Encode("ab", layout.Qwerty, builder.DashAlphabet, straight)
	recB, _ := codec.Encode("ab", layout.Qwerty, builder.DashAlphabet, curved)

	fmt.Println(codec.Match(recA, recB))

	// Output:
	// true
}
