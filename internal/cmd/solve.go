package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"lineq-generator/internal/expr"
	"lineq-generator/internal/invert"
	"lineq-generator/internal/manifest"
)

var (
	solveFor    string
	solveTarget string
	solveEval   string
)

var solveCmd = &cobra.Command{
	Use:   "solve <expr>",
	Short: "Print the inverse of an expression",
	Long: `Solve an expression for one variable and print the inverse closure.

The expression may be a bare Go expression or closure notation ("|| a + 2").
With --eval the inverse is also evaluated exactly for the given target value.

Examples:
  lineq-generator solve "a / 2 + 2"                   # |b| (b - 2) * 2
  lineq-generator solve "c * 9 / 5 + 32" --solve-for c --target f --eval 212`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFor, "solve-for", manifest.DefaultSolveFor, "Variable to solve for")
	solveCmd.Flags().StringVar(&solveTarget, "target", manifest.DefaultTarget, "Parameter name of the inverse")
	solveCmd.Flags().StringVar(&solveEval, "eval", "", "Evaluate the inverse for this target value (integer, decimal or fraction)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := expr.ParseClosure(args[0])
	if err != nil {
		return err
	}

	logger.Debug("solving", "expr", c.Body.String(), "solve_for", solveFor, "target", solveTarget)

	inv, err := invert.InvertClosure(c, solveFor, solveTarget)
	if err != nil {
		return fmt.Errorf("cannot invert %s: %w", c.Body, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, inv)

	if solveEval == "" {
		return nil
	}

	v, ok := new(big.Rat).SetString(solveEval)
	if !ok {
		return fmt.Errorf("invalid --eval value %q", solveEval)
	}

	res, err := expr.Eval(inv.Body, expr.Env{solveTarget: v})
	if err != nil {
		return fmt.Errorf("evaluating inverse: %w", err)
	}

	fmt.Fprintf(out, "%s = %s\n", solveFor, res.RatString())

	return nil
}
