// Package analyze provides package loading and directive extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find type
// declarations annotated with an invert directive:
//
//	//lineq:invert "a / 2 + 2"
//	type Halve struct{}
//
//	//lineq:invert "c * 9 / 5 + 32" solve_for=c target=f type=float64 method=ToCelsius
//	type Fahrenheit float64
//
// A type carries at most one directive. Options default to solve_for=a,
// target=b, type=uint and method=Calculate.
package analyze
