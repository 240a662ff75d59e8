// Package expr provides the expression tree consumed and produced by the
// inverter.
//
// Trees are built from a small set of node kinds:
//   - Literal: a numeric constant kept as exact big.Rat plus its source text
//   - Variable: an identifier
//   - Binary: a binary operator applied to two sub-expressions
//   - Group: explicit parentheses around a sub-expression
//   - Unary, Call: parsed so they can be reported, never inverted
//
// Source text is parsed with go/parser, so the accepted syntax is the Go
// expression grammar. Parentheses in source are folded into tree structure;
// Group nodes only appear in trees built programmatically.
package expr
