package gen_test

import (
	"context"
	"go/parser"
	"go/token"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineq-generator/internal/gen"
	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

func TestExamples_Manifests(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	paths, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "inversions.*"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(filepath.Dir(path)), func(t *testing.T) {
			t.Parallel()

			f, err := manifest.LoadFile(path)
			require.NoError(t, err)

			diags := manifest.Validate(f)
			require.False(t, diags.HasErrors(), diags.Error())

			p, err := plan.Resolve(context.Background(), plan.FromManifest(f), plan.Options{})
			require.NoError(t, err)
			require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())
			assert.Len(t, p.Inversions, len(f.Inversions))

			cfg := gen.DefaultGeneratorConfig().ApplyManifest(f)
			cfg.OutputDir = t.TempDir()

			files, err := gen.NewGenerator(cfg).Generate(p)
			require.NoError(t, err)
			require.Len(t, files, 1)

			_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, 0)
			require.NoError(t, err)

			require.NoError(t, gen.WriteFiles(files, cfg.OutputDir))
		})
	}
}
