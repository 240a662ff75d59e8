// Package invert derives the inverse of a single-variable arithmetic
// expression.
//
// Given a body such as "200 - a * 2 + 3 * 2", the variable to eliminate ("a")
// and the name of the result placeholder ("b"), the Inverter walks the binary
// tree from the root towards the single occurrence of the variable, undoing one
// operation per level into an accumulator that starts as the bare placeholder:
//
//	b                       undo "+ 3 * 2"
//	b - 3 * 2               undo "200 - ..."
//	200 - (b - 3 * 2)       undo "* 2"
//	(200 - (b - 3 * 2)) / 2
//
// Only + - * / over literals and the variable are supported, and the variable
// must occur exactly once. Everything else fails with one of the sentinel
// errors below; no partial result is ever returned.
package invert
