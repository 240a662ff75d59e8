package manifest

// Defaults applied to omitted manifest fields.
const (
	DefaultVersion  = "1"
	DefaultSolveFor = "a"
	DefaultTarget   = "b"
	DefaultType     = "uint"
	DefaultMethod   = "Calculate"
)

// File is the root of a manifest.
type File struct {
	Version string `yaml:"version" toml:"version"`
	// Package overrides the generated package name.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`
	// Output overrides the output directory.
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
	// DeclareTypes emits an empty struct declaration for every Name.
	DeclareTypes bool        `yaml:"declare_types,omitempty" toml:"declare_types,omitempty"`
	Inversions   []Inversion `yaml:"inversions" toml:"inversions"`
}

// Inversion is a single request: invert Expr for SolveFor and expose the
// result as Name.Method(Target Type) Type.
type Inversion struct {
	Name        string `yaml:"name" toml:"name"`
	Expr        string `yaml:"expr" toml:"expr"`
	SolveFor    string `yaml:"solve_for,omitempty" toml:"solve_for,omitempty"`
	Target      string `yaml:"target,omitempty" toml:"target,omitempty"`
	Type        string `yaml:"type,omitempty" toml:"type,omitempty"`
	Method      string `yaml:"method,omitempty" toml:"method,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`
	// Position locates the entry when it was not read from a manifest file,
	// e.g. a directive's file:line.
	Position string `yaml:"-" toml:"-"`
}

// Key identifies the generated method.
func (inv *Inversion) Key() string {
	return inv.Name + "." + inv.Method
}
