package cmd

import (
	"context"
	"fmt"
	"io"

	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/gen"
	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

// resolveManifest validates f and, when it is valid, resolves its
// inversions. The returned diagnostics cover both steps.
func resolveManifest(ctx context.Context, f *manifest.File, opts plan.Options) (*plan.Plan, *diagnostic.Diagnostics, error) {
	diags := manifest.Validate(f)
	if diags.HasErrors() {
		return nil, diags, nil
	}

	reqs := plan.FromManifest(f)
	logger.Debug("resolving inversions", "package", f.Package, "count", len(reqs))

	p, err := plan.Resolve(ctx, reqs, opts)
	if err != nil {
		return nil, diags, err
	}

	diags.Merge(p.Diagnostics)

	return p, diags, nil
}

// generate renders p with cfg and writes the result into cfg.OutputDir.
func generate(w io.Writer, p *plan.Plan, cfg gen.GeneratorConfig) error {
	files, err := gen.NewGenerator(cfg).Generate(p)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		logger.Warn("nothing to generate", "dir", cfg.OutputDir)
		return nil
	}

	if err := gen.WriteFiles(files, cfg.OutputDir); err != nil {
		return err
	}

	for _, file := range files {
		logger.Info("generated", "dir", cfg.OutputDir, "file", file.Filename, "inversions", len(p.Inversions))
		fmt.Fprintf(w, "wrote %s/%s\n", cfg.OutputDir, file.Filename)
	}

	return nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
