package plan

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/expr"
	"lineq-generator/internal/invert"
	"lineq-generator/internal/match"
)

// Options tunes resolution.
type Options struct {
	// Concurrency bounds the number of requests solved at once
	// (0 = GOMAXPROCS).
	Concurrency int
	// ReportSolved adds an info diagnostic with the inverse of every request.
	ReportSolved bool
}

type outcome struct {
	resolved *ResolvedInversion
	diag     *diagnostic.Diagnostic
}

// Resolve parses and inverts every request. Failures become error
// diagnostics; the returned error is only set when ctx is done before all
// requests were solved.
func Resolve(ctx context.Context, reqs []Request, opts Options) (*Plan, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]outcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcomes[i] = resolveOne(&reqs[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving inversions: %w", err)
	}

	p := &Plan{}

	for i, o := range outcomes {
		if o.diag != nil {
			p.Diagnostics.Add(*o.diag)
			continue
		}

		p.Inversions = append(p.Inversions, *o.resolved)

		if opts.ReportSolved {
			p.Diagnostics.AddInfo("solved",
				fmt.Sprintf("%s inverts to %s", reqs[i].Expr, o.resolved.Inverse),
				reqs[i].Name, reqs[i].Position)
		}
	}

	return p, nil
}

func resolveOne(req *Request) outcome {
	c, err := expr.ParseClosure(req.Expr)
	if err != nil {
		return outcome{diag: failure(req, "parse", err, nil)}
	}

	inverse, err := invert.InvertClosure(c, req.SolveFor, req.Target)
	if err != nil {
		code := invert.Code(err)
		if code == "" {
			code = "invert"
		}

		var suggestions []string
		if errors.Is(err, invert.ErrUnexpectedIdentifier) {
			suggestions = suggestSolveFor(c.Body, req.SolveFor)
		}

		return outcome{diag: failure(req, code, err, suggestions)}
	}

	if diag := checkConstants(req, c.Body, inverse.Body); diag != nil {
		return outcome{diag: diag}
	}

	return outcome{resolved: &ResolvedInversion{
		Request: *req,
		Body:    c.Body,
		Inverse: inverse,
	}}
}

func failure(req *Request, code string, err error, suggestions []string) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticError,
		Code:        code,
		Message:     err.Error(),
		Inversion:   req.Name,
		Position:    req.Position,
		Suggestions: suggestions,
	}
}

// suggestSolveFor offers solveFor when a stray identifier looks like a typo of
// it.
func suggestSolveFor(body expr.Expr, solveFor string) []string {
	for _, name := range expr.Identifiers(body) {
		if name == solveFor {
			continue
		}

		if s := match.Suggest(name, []string{solveFor}, match.DefaultMaxDistance); len(s) > 0 {
			return s
		}
	}

	return nil
}
