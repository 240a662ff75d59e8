package analyze

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineq-generator/internal/diagnostic"
)

const scanSource = `package p

//lineq:invert "a + 2"
type One struct{}

// Two has two directives.
//
//lineq:invert "a + 2"
//lineq:invert "a - 2"
type Two struct{}

//lineq:invert a + 2
type Broken struct{}

type (
	//lineq:invert "a * 3" method=Triple
	Grouped struct{}

	Bare struct{}
)

// Unrelated is not annotated.
type Unrelated int

//lineq:invert "a + 1"
var notAType = 1
`

func codes(diags []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}

	return out
}

func TestScanFile(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", scanSource, parser.ParseComments)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics

	targets := ScanFile(fset, file, &diags)
	require.Len(t, targets, 2)

	assert.Equal(t, "One", targets[0].TypeName)
	assert.Equal(t, "a + 2", targets[0].Directive.Expr)
	assert.Equal(t, 3, targets[0].Position.Line)

	assert.Equal(t, "Grouped", targets[1].TypeName)
	assert.Equal(t, "Triple", targets[1].Directive.Method)

	assert.Equal(t, []string{"directive_count", "malformed_directive"}, codes(diags.Errors))
	assert.Equal(t, "Two", diags.Errors[0].Inversion)
	assert.Equal(t, "p.go:8:1", diags.Errors[0].Position)
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	res, err := analyzer.LoadPackages("lineq-generator/examples/directives")
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, res.Packages, 1)
	pkg := res.Packages[0]
	assert.Equal(t, "lineq-generator/examples/directives", pkg.Path)
	assert.Equal(t, "directives", pkg.Name)
	assert.Equal(t, "directives", filepath.Base(pkg.Dir))
	assert.True(t, res.Diagnostics.IsValid(), res.Diagnostics.Error())

	names := map[string]Directive{}
	for _, target := range res.Targets() {
		assert.Equal(t, pkg.Path, target.PkgPath)
		names[target.TypeName] = target.Directive
	}

	assert.Len(t, names, 5)
	assert.NotContains(t, names, "Plain")
	assert.Equal(t, "ToCelsius", names["Fahrenheit"].Method)
	assert.Equal(t, "int", names["Mixed"].Type)
	assert.Equal(t, "Recover", names["Nested"].Method)
}

func TestAnalyzer_MethodConflict(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "go.mod", "module scratch\n\ngo 1.24\n")
	writeFile(t, dir, "types.go", `package scratch

//lineq:invert "a + 2"
type Taken struct{}

func (Taken) Calculate(b uint) uint { return b }

//lineq:invert "a + 2"
type Regenerated struct{}

//lineq:invert "a + 2" method=Other
type Free struct{}

func (Free) Calculate() {}
`)
	writeFile(t, dir, DefaultGeneratedFilename, `package scratch

func (Regenerated) Calculate(b uint) uint { return b - 2 }
`)

	analyzer := NewAnalyzer()
	analyzer.Dir = dir

	res, err := analyzer.LoadPackages("./...")
	require.NoError(t, err)

	assert.Equal(t, []string{"method_exists"}, codes(res.Diagnostics.Errors))
	assert.Equal(t, "Taken", res.Diagnostics.Errors[0].Inversion)

	var names []string
	for _, target := range res.Targets() {
		names = append(names, target.TypeName)
	}

	assert.ElementsMatch(t, []string{"Regenerated", "Free"}, names)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "go.mod", "module scratch\n\ngo 1.24\n")
	writeFile(t, dir, "broken.go", "package scratch\n\nfunc {\n")

	analyzer := NewAnalyzer()
	analyzer.Dir = dir

	_, err := analyzer.LoadPackages("./...")
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestPackageInfo_Manifest(t *testing.T) {
	pkg := &PackageInfo{
		Path: "example.com/p",
		Name: "p",
		Dir:  "/src/p",
		Targets: []Target{
			{
				TypeName:  "One",
				Directive: Directive{Expr: "a + 2"},
				Position:  token.Position{Filename: "p.go", Line: 3, Column: 1},
			},
			{
				TypeName:  "Temp",
				Directive: Directive{Expr: "c * 2", SolveFor: "c", Target: "f", Type: "float64", Method: "Back"},
			},
		},
	}

	f := pkg.Manifest()
	assert.Equal(t, "p", f.Package)
	assert.Equal(t, "/src/p", f.Output)
	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Inversions, 2)

	one := f.Inversions[0]
	assert.Equal(t, "a", one.SolveFor)
	assert.Equal(t, "b", one.Target)
	assert.Equal(t, "uint", one.Type)
	assert.Equal(t, "Calculate", one.Method)
	assert.Equal(t, "p.go:3:1", one.Position)

	assert.Equal(t, "Back", f.Inversions[1].Method)
	assert.Equal(t, "float64", f.Inversions[1].Type)
	assert.Empty(t, f.Inversions[1].Position)
}
