// File: layout/example_test.go
package layout_test

import (
	"fmt"

	"github.com/katalvlaran/sigil/layout"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Resolve
////////////////////////////////////////////////////////////////////////////////

// ExampleTable_Resolve demonstrates case-insensitive key lookup on the
// built-in QWERTY table: 'A' and 'a' land on the same physical key.
//
// Complexity: O(1) per lookup
func ExampleTable_Resolve() {
	tbl := layout.New()

	upper, _ := tbl.Resolve(layout.Qwerty, 'A')
	lower, _ := tbl.Resolve(layout.Qwerty, 'a')

	fmt.Printf("(%.0f, %.0f)\n", upper.X, upper.Y)
	fmt.Println(upper == lower)

	// Output:
	// (30, 80)
	// true
}

////////////////////////////////////////////////////////////////////////////////
// Example: ResolveAll
////////////////////////////////////////////////////////////////////////////////

// ExampleTable_ResolveAll demonstrates the drop semantics: characters
// with no key on the layout vanish from the path without error.
//
// Complexity: O(len(name))
func ExampleTable_ResolveAll() {
	tbl := layout.New()

	points := tbl.ResolveAll("a!b", layout.Qwerty)
	for _, p := range points {
		fmt.Printf("%c (%.0f, %.0f)\n", p.Char, p.Pos.X, p.Pos.Y)
	}

	// Output:
	// a (30, 80)
	// b (210, 120)
}
