// Command lineq-generator generates inverse functions for single-variable
// arithmetic expressions.
//
// It solves an expression such as a / 2 + 2 for one variable and writes Go
// methods that compute that variable back from the expression's result:
//   - solve prints the inverse of a single expression
//   - check validates a manifest
//   - gen generates code from a manifest
//   - scan generates code for //lineq:invert directives
package main

import (
	"os"

	"lineq-generator/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
