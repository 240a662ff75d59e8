package invert

import "lineq-generator/internal/expr"

// validate reports whether e only uses literals, variables and binary
// operations.
func validate(e expr.Expr) bool {
	switch n := e.(type) {
	case *expr.Binary:
		return validate(n.Left) && validate(n.Right)
	case *expr.Literal, *expr.Variable:
		return true
	default:
		return false
	}
}

// containsTarget reports whether the named variable occurs anywhere in e.
func containsTarget(e expr.Expr, name string) bool {
	switch n := e.(type) {
	case *expr.Binary:
		return containsTarget(n.Left, name) || containsTarget(n.Right, name)
	case *expr.Variable:
		return n.Name == name
	case *expr.Group:
		return containsTarget(n.Inner, name)
	default:
		return false
	}
}

// strayIdentifier returns the first variable in e that is not solveFor.
func strayIdentifier(e expr.Expr, solveFor string) (string, bool) {
	for _, name := range expr.Identifiers(e) {
		if name != solveFor {
			return name, true
		}
	}

	return "", false
}
