// File: builder/example_test.go
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/sigil/builder"
	"github.com/katalvlaran/sigil/layout"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Build
////////////////////////////////////////////////////////////////////////////////

// ExampleBuild demonstrates turning a resolved key path into classified,
// binned segments. The pair 'a'→'b' is lowercase on both ends, points
// roughly east and spans more than three key pitches.
//
// Complexity: O(n) for n path points
func ExampleBuild() {
	tbl := layout.New()
	points := tbl.ResolveAll("ab", layout.Qwerty)

	segments := builder.Build(points)
	for _, seg := range segments {
		fmt.Printf("%s dir=%d bin=%d\n", seg.Class, seg.Direction, seg.LengthBin)
	}

	// Output:
	// LowerLower dir=0 bin=3
}
