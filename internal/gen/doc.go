// Package gen provides deterministic Go code generation for resolved
// inversions.
//
// Generation uses text/template + go/format. Every resolved inversion becomes
// a value-receiver method on its named type:
//
//	// Calculate inverts `a / 2 + 2` for a.
//	func (HalfPlusTwo) Calculate(b uint) uint {
//		return (b - 2) * 2
//	}
//
// Receiver types can optionally be declared as empty structs in the same
// file, for manifests that do not describe existing types.
package gen
