package manifest

import (
	"fmt"
	"go/token"

	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/expr"
	"lineq-generator/internal/match"
	"lineq-generator/primitive"
)

// Validate checks a manifest structurally: names, identifiers, types and
// expression syntax. Whether an expression can actually be inverted is decided
// later, during resolution.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if f.Version != DefaultVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported manifest version %q", f.Version), "", "version")
	}

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package %q is not an identifier", f.Package), "", "package")
	}

	if len(f.Inversions) == 0 {
		res.AddWarning("no_inversions", "manifest declares no inversions", "", "inversions")
	}

	seen := map[string]int{}

	for i := range f.Inversions {
		inv := &f.Inversions[i]
		pos := inv.Position
		if pos == "" {
			pos = fmt.Sprintf("inversions[%d]", i)
		}

		if inv.Name == "" {
			res.AddError("missing_name", "inversion has no name", "", pos)
			continue
		}

		if !token.IsIdentifier(inv.Name) {
			res.AddError("invalid_name", fmt.Sprintf("name %q is not an identifier", inv.Name), inv.Name, pos)
			continue
		}

		if first, ok := seen[inv.Key()]; ok {
			res.AddError("duplicate_inversion",
				fmt.Sprintf("%s is already declared by %s", inv.Key(), positionOf(f, first)), inv.Name, pos)

			continue
		}

		seen[inv.Key()] = i

		validateInversion(res, inv, pos)
	}

	return res
}

func validateInversion(res *diagnostic.Diagnostics, inv *Inversion, pos string) {
	for _, id := range []struct{ field, value string }{
		{"solve_for", inv.SolveFor},
		{"target", inv.Target},
		{"method", inv.Method},
	} {
		if !token.IsIdentifier(id.value) {
			res.AddError("invalid_identifier", fmt.Sprintf("%s %q is not an identifier", id.field, id.value), inv.Name, pos)
		}
	}

	if inv.SolveFor == inv.Target {
		res.AddError("solve_for_is_target",
			fmt.Sprintf("solve_for and target are both %q", inv.SolveFor), inv.Name, pos)
	}

	kind, ok := primitive.FromName(inv.Type)
	if !ok {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        "unknown_type",
			Message:     fmt.Sprintf("type %q is not a numeric Go type", inv.Type),
			Inversion:   inv.Name,
			Position:    pos,
			Suggestions: match.Suggest(inv.Type, primitive.Names(), match.DefaultMaxDistance),
		})
	}

	if inv.Expr == "" {
		res.AddError("missing_expr", "inversion has no expression", inv.Name, pos)
		return
	}

	c, err := expr.ParseClosure(inv.Expr)
	if err != nil {
		res.AddError("parse_error", err.Error(), inv.Name, pos)
		return
	}

	switch n := expr.Count(c.Body, inv.SolveFor); {
	case n > 1:
		res.AddError("multiple",
			fmt.Sprintf("%s occurs %d times in %s", inv.SolveFor, n, c.Body), inv.Name, pos)
	case n == 0 && len(expr.Identifiers(c.Body)) == 0:
		res.AddError("no_solve_for",
			fmt.Sprintf("%s does not occur in %s", inv.SolveFor, c.Body), inv.Name, pos)
	}

	if !ok {
		return
	}

	expr.Walk(c.Body, func(n expr.Expr) bool {
		if lit, isLit := n.(*expr.Literal); isLit && !kind.Represents(lit.Value) {
			res.AddError("literal_not_representable",
				fmt.Sprintf("literal %s cannot be represented as %s", lit.Raw, inv.Type), inv.Name, pos)
		}

		return true
	})
}

func positionOf(f *File, i int) string {
	if p := f.Inversions[i].Position; p != "" {
		return p
	}

	return fmt.Sprintf("inversions[%d]", i)
}
