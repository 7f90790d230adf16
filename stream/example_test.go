// File: stream/example_test.go
package stream_test

import (
	"fmt"

	"github.com/katalvlaran/sigil/stream"
)

////////////////////////////////////////////////////////////////////////////////
// Example: HashHex
////////////////////////////////////////////////////////////////////////////////

// ExampleHashHex demonstrates the stable seed digest: the same string
// always hashes to the same 8-character lowercase hex word.
//
// Complexity: O(len(s))
func ExampleHashHex() {
	fmt.Println(stream.HashHex("qwerty|ab"))
	fmt.Println(stream.HashHex(""))

	// Output:
	// 975b0e48
	// 811c9dc5
}

////////////////////////////////////////////////////////////////////////////////
// Example: Stream
////////////////////////////////////////////////////////////////////////////////

// ExampleNew demonstrates that two streams built from the same seed
// replay the identical draw sequence.
//
// Complexity: O(1) per draw
func ExampleNew() {
	a := stream.New("qwerty|ab")
	b := stream.New("qwerty|ab")

	fmt.Println(a.Next() == b.Next())
	fmt.Println(a.Next() == b.Next())

	// Output:
	// true
	// true
}
