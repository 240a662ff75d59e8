package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"lineq-generator/internal/analyze"
	"lineq-generator/internal/common"
	"lineq-generator/internal/gen"
	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

var (
	scanOutput   string
	scanDir      string
	scanManifest string
)

var scanCmd = &cobra.Command{
	Use:   "scan <patterns...>",
	Short: "Generate inverse methods for //lineq:invert directives",
	Long: `Load Go packages and generate inverse methods for every type declaration
annotated with a //lineq:invert directive. Each package gets its own
generated file next to its sources.

Directive syntax:
  //lineq:invert "<expr>" [solve_for=a] [target=b] [type=uint] [method=Calculate]

Examples:
  lineq-generator scan ./...
  lineq-generator scan . -o inverses_gen.go   # inside a go:generate line
  lineq-generator scan . --manifest inversions.yaml   # export directives instead`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", analyze.DefaultGeneratedFilename, "Generated file name in each package")
	scanCmd.Flags().StringVarP(&scanDir, "dir", "C", "", "Directory to load packages from")
	scanCmd.Flags().StringVar(&scanManifest, "manifest", "", "Write the directives of each package to this manifest file in the package directory instead of generating code")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	a := analyze.NewAnalyzer()
	a.Dir = scanDir
	a.GeneratedFilename = scanOutput

	res, err := a.LoadPackages(args...)
	if err != nil {
		return err
	}

	logger.Info("scanned", "packages", len(res.Packages), "directives", len(res.Targets()))

	diags := res.Diagnostics
	out := cmd.OutOrStdout()

	for _, pkg := range res.Packages {
		if common.IsEmpty(pkg.Targets) {
			logger.Debug("no directives", "package", pkg.Path)
			continue
		}

		f := pkg.Manifest()

		if scanManifest != "" {
			path := filepath.Join(pkg.Dir, scanManifest)
			if err := manifest.WriteFile(f, path); err != nil {
				return err
			}

			fmt.Fprintf(out, "wrote %s\n", path)

			continue
		}

		p, pd, err := resolveManifest(cmd.Context(), f, plan.Options{})
		if err != nil {
			return err
		}

		diags.Merge(*pd)

		if pd.HasErrors() {
			continue
		}

		cfg := gen.DefaultGeneratorConfig()
		cfg.PackageName = pkg.Name
		cfg.OutputDir = pkg.Dir
		cfg.Filename = scanOutput

		if err := generate(out, p, cfg); err != nil {
			return fmt.Errorf("package %s: %w", pkg.Path, err)
		}
	}

	if diags.HasErrors() {
		printDiagnostics(cmd.ErrOrStderr(), &diags)
		return fmt.Errorf("scan found %d errors", len(diags.Errors))
	}

	return nil
}
