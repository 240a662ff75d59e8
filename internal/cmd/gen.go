package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lineq-generator/internal/gen"
	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

var (
	genManifest    string
	genOutput      string
	genPackage     string
	genNoComments  bool
	genConcurrency int
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate inverse methods from a manifest",
	Long: `Generate one Go file with an inverse method for every manifest entry.

The package name and output directory come from the manifest and can be
overridden with flags.

Examples:
  lineq-generator gen -m examples/basic/inversions.yaml
  lineq-generator gen -m inversions.toml -o ./internal/inverses -p inverses`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genManifest, "manifest", "m", "", "Manifest file (.yaml, .yml or .toml)")
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (overrides the manifest)")
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "", "Package name (overrides the manifest)")
	genCmd.Flags().BoolVar(&genNoComments, "no-comments", false, "Omit doc comments on generated methods")
	genCmd.Flags().IntVar(&genConcurrency, "concurrency", 0, "Inversions solved in parallel (0 = GOMAXPROCS)")
	_ = genCmd.MarkFlagRequired("manifest")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, _ []string) error {
	f, err := manifest.LoadFile(genManifest)
	if err != nil {
		return err
	}

	p, diags, err := resolveManifest(cmd.Context(), f, plan.Options{Concurrency: genConcurrency})
	if err != nil {
		return err
	}

	if diags.HasErrors() {
		printDiagnostics(cmd.ErrOrStderr(), diags)
		return fmt.Errorf("%s: %d errors", genManifest, len(diags.Errors))
	}

	cfg := gen.DefaultGeneratorConfig().ApplyManifest(f)
	if genOutput != "" {
		cfg.OutputDir = genOutput
	}

	if genPackage != "" {
		cfg.PackageName = genPackage
	}

	cfg.GenerateComments = !genNoComments

	return generate(cmd.OutOrStdout(), p, cfg)
}
