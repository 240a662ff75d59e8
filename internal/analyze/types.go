package analyze

import (
	"go/token"

	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/manifest"
)

// Result holds everything found while scanning packages.
type Result struct {
	Packages    []*PackageInfo
	Diagnostics diagnostic.Diagnostics
}

// Targets returns the annotated types of all packages in load order.
func (r *Result) Targets() []Target {
	var out []Target
	for _, p := range r.Packages {
		out = append(out, p.Targets...)
	}

	return out
}

// PackageInfo describes a scanned package.
type PackageInfo struct {
	Path    string // import path
	Name    string // package name
	Dir     string // directory holding the package sources
	Targets []Target
}

// Target is a type declaration carrying a directive.
type Target struct {
	PkgPath   string
	TypeName  string
	Directive Directive
	Position  token.Position
}

// Manifest converts the package's targets into a manifest generating into the
// package itself, with defaults applied.
func (p *PackageInfo) Manifest() *manifest.File {
	f := &manifest.File{
		Package: p.Name,
		Output:  p.Dir,
	}

	for _, t := range p.Targets {
		var pos string
		if t.Position.IsValid() {
			pos = t.Position.String()
		}

		f.Inversions = append(f.Inversions, manifest.Inversion{
			Name:     t.TypeName,
			Expr:     t.Directive.Expr,
			SolveFor: t.Directive.SolveFor,
			Target:   t.Directive.Target,
			Type:     t.Directive.Type,
			Method:   t.Directive.Method,
			Position: pos,
		})
	}

	manifest.ApplyDefaults(f)

	return f
}
