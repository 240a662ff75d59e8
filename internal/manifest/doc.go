// Package manifest provides the schema, loading and validation of inversion
// manifests.
//
// A manifest lists the inversions to generate, one entry per Calculate method:
//
//	version: "1"
//	package: calc
//	output: ./generated
//	declare_types: true
//	inversions:
//	  - name: Offset
//	    expr: "|| a + 2"
//	  - name: Fahrenheit
//	    expr: "c * 9 / 5 + 32"
//	    solve_for: c
//	    target: f
//	    type: float64
//	    method: ToCelsius
//
// Omitted fields default to solve_for "a", target "b", type "uint" and method
// "Calculate". The same schema can be written as TOML, with [[inversions]]
// tables; the format is chosen from the file extension.
package manifest
