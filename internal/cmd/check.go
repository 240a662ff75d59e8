package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

var (
	checkManifest string
	checkVerbose  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a manifest and solve its inversions",
	Long: `Validate a manifest and try to invert every entry without writing code.

Diagnostics are printed one per line. The command exits with status 1 when
any error was found.

Examples:
  lineq-generator check -m inversions.yaml
  lineq-generator check -m inversions.toml -v   # also print every inverse`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkManifest, "manifest", "m", "", "Manifest file (.yaml, .yml or .toml)")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Report the inverse of every entry")
	_ = checkCmd.MarkFlagRequired("manifest")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	f, err := manifest.LoadFile(checkManifest)
	if err != nil {
		return err
	}

	_, diags, err := resolveManifest(cmd.Context(), f, plan.Options{ReportSolved: checkVerbose})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printDiagnostics(out, diags)

	if diags.HasErrors() {
		return NewSilentExit(1)
	}

	fmt.Fprintf(out, "%s: %d inversions ok\n", checkManifest, len(f.Inversions))

	return nil
}
