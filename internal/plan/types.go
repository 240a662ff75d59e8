package plan

import (
	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/expr"
	"lineq-generator/primitive"
)

// Request asks for Name.Method(Target Kind) Kind computing SolveFor from the
// value of Expr.
type Request struct {
	Name        string
	Method      string
	Expr        string
	SolveFor    string
	Target      string
	Kind        primitive.KindEnum
	Description string
	// Position locates the request in its manifest or source file.
	Position string
}

// ResolvedInversion is a request together with its derived inverse.
type ResolvedInversion struct {
	Request
	// Body is the parsed forward expression.
	Body expr.Expr
	// Inverse has the single parameter Target.
	Inverse *expr.Closure
}

// Plan is the outcome of resolving a batch of requests. Inversions keep
// request order; failed requests appear only in Diagnostics.
type Plan struct {
	Inversions  []ResolvedInversion
	Diagnostics diagnostic.Diagnostics
}

// Types returns the distinct receiver type names in first-seen order.
func (p *Plan) Types() []string {
	var names []string

	seen := map[string]struct{}{}

	for _, inv := range p.Inversions {
		if _, ok := seen[inv.Name]; ok {
			continue
		}

		seen[inv.Name] = struct{}{}
		names = append(names, inv.Name)
	}

	return names
}
