package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directivesTest = `package directives

import "testing"

func TestGenerated(t *testing.T) {
	checks := []struct {
		name      string
		got, want float64
	}{
		{"AddTwo(5)", float64(AddTwo{}.Calculate(5)), 3},
		{"AddTwo(3)", float64(AddTwo{}.Calculate(3)), 1},
		{"HalfPlusTwo(5)", float64(HalfPlusTwo{}.Calculate(5)), 6},
		{"Mixed(20)", float64(Mixed{}.Calculate(20)), 93},
		{"Mixed(1)", float64(Mixed{}.Calculate(1)), 102},
		{"Fahrenheit(212)", Fahrenheit(0).ToCelsius(212), 100},
		{"Nested(4)", float64(Nested{}.Recover(4)), 2},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}
`

const basicTest = `package basic

import "testing"

func TestGenerated(t *testing.T) {
	checks := []struct {
		name      string
		got, want int64
	}{
		{"AddTwo(5)", int64(AddTwo{}.Calculate(5)), 3},
		{"AddTwo(10)", int64(AddTwo{}.Calculate(10)), 8},
		{"SubTwo(5)", int64(SubTwo{}.Calculate(5)), 7},
		{"SubTwo(3)", int64(SubTwo{}.Calculate(3)), 5},
		{"TimesFive(5)", int64(TimesFive{}.Calculate(5)), 1},
		{"TimesFive(10)", int64(TimesFive{}.Calculate(10)), 2},
		{"HalfOf(5)", int64(HalfOf{}.Calculate(5)), 10},
		{"HalfOf(3)", int64(HalfOf{}.Calculate(3)), 6},
		{"HalfPlusTwo(5)", int64(HalfPlusTwo{}.Calculate(5)), 6},
		{"Mixed(20)", int64(Mixed{}.Calculate(20)), 93},
		{"Mixed(1)", int64(Mixed{}.Calculate(1)), 102},
		{"Reciprocal(31)", int64(Reciprocal{}.Calculate(31)), 10},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
}
`

const temperatureTest = `package temperature

import "testing"

func TestGenerated(t *testing.T) {
	if got := (Fahrenheit{}).ToCelsius(212); got != 100 {
		t.Errorf("Fahrenheit(212) = %v, want 100", got)
	}

	if got := (Kelvin{}).ToCelsius(273.15); got != 0 {
		t.Errorf("Kelvin(273.15) = %v, want 0", got)
	}
}
`

// TestGeneratedCode_Runs generates code for every example into a scratch
// module and runs tests against the generated methods.
func TestGeneratedCode_Runs(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not available")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module scratch\n\ngo 1.24\n")

	src, err := os.ReadFile(filepath.Join(repoRoot, "examples", "directives", "types.go"))
	require.NoError(t, err)

	for _, sub := range []string{"directives", "basic", "temperature"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	}

	writeFile(t, filepath.Join(dir, "directives"), "types.go", string(src))
	writeFile(t, filepath.Join(dir, "directives"), "types_test.go", directivesTest)
	writeFile(t, filepath.Join(dir, "basic"), "basic_test.go", basicTest)
	writeFile(t, filepath.Join(dir, "temperature"), "temperature_test.go", temperatureTest)

	_, stderr, err := execute(t, "scan", "-C", dir, "./directives")
	require.NoError(t, err, stderr)

	_, stderr, err = execute(t, "gen", "-m", filepath.Join(repoRoot, "examples", "basic", "inversions.yaml"),
		"-o", filepath.Join(dir, "basic"))
	require.NoError(t, err, stderr)

	_, stderr, err = execute(t, "gen", "-m", filepath.Join(repoRoot, "examples", "temperature", "inversions.toml"),
		"-o", filepath.Join(dir, "temperature"))
	require.NoError(t, err, stderr)

	run := exec.CommandContext(t.Context(), "go", "test", "-count=1", "./...")
	run.Dir = dir
	run.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=")

	b, err := run.CombinedOutput()
	if err != nil {
		for _, sub := range []string{"directives", "basic", "temperature"} {
			if gb, rerr := os.ReadFile(filepath.Join(dir, sub, "lineq_gen.go")); rerr == nil {
				t.Logf("generated %s:\n%s", sub, gb)
			}
		}

		t.Fatalf("generated code failed: %v\n%s", err, b)
	}
}

// TestCheck_RejectsUncompilableInverses covers inverses that would divide by
// a constant zero or fold to a constant the generated type cannot hold.
func TestCheck_RejectsUncompilableInverses(t *testing.T) {
	path := writeFile(t, t.TempDir(), "constants.yaml", `inversions:
  - name: TimesZero
    expr: "a * 0"
  - name: TimesFoldedZero
    expr: "a * (2 - 2)"
  - name: PlusNegative
    expr: "a + (2 - 3)"
  - name: PlusNegativeInt
    expr: "a + (2 - 3)"
    type: int
`)

	out, _, err := execute(t, "check", "-m", path)

	code, ok := IsSilentExit(err)
	require.True(t, ok, "err = %v", err)
	assert.Equal(t, 1, code)

	assert.Contains(t, out, "[TimesZero]: [not_invertible]")
	assert.Contains(t, out, "[TimesFoldedZero]: [not_invertible]")
	assert.Contains(t, out, "[PlusNegative]: [literal_not_representable]")
	assert.NotContains(t, out, "[PlusNegativeInt]")

	dir := t.TempDir()
	_, stderr, err := execute(t, "gen", "-m", path, "-o", dir)
	require.Error(t, err)
	assert.Contains(t, stderr, "[not_invertible]")

	_, statErr := os.Stat(filepath.Join(dir, "lineq_gen.go"))
	assert.True(t, os.IsNotExist(statErr))
}
