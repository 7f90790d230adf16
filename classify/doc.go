// Package classify assigns each consecutive character pair of a signature
// to one of five fixed style classes.
//
// 🚀 What is a PairClass?
//
//	Every segment of a keyboard-path signature connects two typed
//	characters. The pair's case/digit profile decides both the visual
//	styling family of the segment and one of the structural features
//	recorded in the canonical codec:
//	  • UpperUpper           — both uppercase letters
//	  • UpperLower           — uppercase followed by lowercase
//	  • LowerUpper           — lowercase followed by uppercase
//	  • LowerLower           — both lowercase letters
//	  • NumericOrUnderscore  — either side is a digit or '_'
//
// ✨ Guarantees:
//   - Classify is pure and total over letters, digits and underscore.
//   - The five rules form a strict priority order; NumericOrUnderscore
//     always wins when applicable.
//   - UpperLower and LowerUpper stay distinct classes: they look similar
//     when rendered but must remain distinguishable in the codec.
//
// Complexity: O(1) per call, no allocations.
package classify
