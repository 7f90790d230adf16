// File: classify/example_test.go
package classify_test

import (
	"fmt"

	"github.com/katalvlaran/sigil/classify"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Classify
////////////////////////////////////////////////////////////////////////////////

// ExampleClassify demonstrates the five transition classes of a character
// pair. Digits and underscores dominate, then the case of each endpoint
// decides.
//
// Complexity: O(1) per pair
func ExampleClassify() {
	fmt.Println(classify.Classify('A', 'B'))
	fmt.Println(classify.Classify('A', 'b'))
	fmt.Println(classify.Classify('a', 'B'))
	fmt.Println(classify.Classify('a', 'b'))
	fmt.Println(classify.Classify('_', '3'))

	// Output:
	// UpperUpper
	// UpperLower
	// LowerUpper
	// LowerLower
	// NumericOrUnderscore
}
