package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"lineq-generator/internal/common"
	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/manifest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// DefaultGeneratedFilename is the file scan output is written to. Methods
// declared in it do not count as conflicts.
const DefaultGeneratedFilename = "lineq_gen.go"

// Analyzer loads Go packages and collects invert directives.
type Analyzer struct {
	// Dir is the working directory for package loading ("" = current).
	Dir string
	// GeneratedFilename is skipped when checking for method conflicts.
	GeneratedFilename string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{GeneratedFilename: DefaultGeneratedFilename}
}

// LoadPackages loads the specified packages and scans them for directives.
// Patterns are standard Go package patterns (e.g., "./...", "lineq-generator/examples/directives").
// Problems with individual directives are reported as diagnostics; only
// loading failures are returned as errors.
func (a *Analyzer) LoadPackages(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	res := &Result{}

	for _, pkg := range pkgs {
		info := &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}

		if len(pkg.GoFiles) > 0 {
			info.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		for _, file := range pkg.Syntax {
			for _, t := range ScanFile(pkg.Fset, file, &res.Diagnostics) {
				t.PkgPath = pkg.PkgPath
				if a.methodConflict(pkg, t) {
					res.Diagnostics.AddError("method_exists",
						fmt.Sprintf("%s already has a method %s", t.TypeName, methodName(t.Directive)),
						t.TypeName, t.Position.String())

					continue
				}

				info.Targets = append(info.Targets, t)
			}
		}

		res.Packages = append(res.Packages, info)
	}

	return res, nil
}

// ScanFile returns the annotated type declarations of a parsed file. Malformed
// or repeated directives are reported to diags and the type is skipped.
func ScanFile(fset *token.FileSet, file *ast.File, diags *diagnostic.Diagnostics) []Target {
	var out []Target

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)

			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}

			if doc == nil {
				continue
			}

			var found []*ast.Comment

			for _, c := range doc.List {
				if IsDirective(c.Text) {
					found = append(found, c)
				}
			}

			if common.IsEmpty(found) {
				continue
			}

			pos := fset.Position(found[0].Pos())
			name := ts.Name.Name

			if common.IsMultiple(found) {
				diags.AddError("directive_count",
					fmt.Sprintf("%s requires a single invert directive, found %d", name, len(found)),
					name, pos.String())

				continue
			}

			d, err := ParseDirective(found[0].Text)
			if err != nil {
				diags.AddError("malformed_directive", err.Error(), name, pos.String())
				continue
			}

			out = append(out, Target{
				TypeName:  name,
				Directive: *d,
				Position:  pos,
			})
		}
	}

	return out
}

// methodConflict reports whether the annotated type already declares the
// method that would be generated, outside the generated file itself.
func (a *Analyzer) methodConflict(pkg *packages.Package, t Target) bool {
	obj := pkg.Types.Scope().Lookup(t.TypeName)
	if obj == nil {
		return false
	}

	m, _, _ := types.LookupFieldOrMethod(obj.Type(), true, pkg.Types, methodName(t.Directive))
	if m == nil {
		return false
	}

	return filepath.Base(pkg.Fset.Position(m.Pos()).Filename) != a.GeneratedFilename
}

func methodName(d Directive) string {
	if d.Method != "" {
		return d.Method
	}

	return manifest.DefaultMethod
}
