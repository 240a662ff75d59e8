package plan

import (
	"errors"
	"fmt"

	"lineq-generator/internal/diagnostic"
	"lineq-generator/internal/expr"
)

func isConstant(e expr.Expr) bool {
	return len(expr.Identifiers(e)) == 0
}

func isZero(e expr.Expr) bool {
	if !isConstant(e) {
		return false
	}

	v, err := expr.Eval(e, nil)

	return err == nil && v.Sign() == 0
}

// checkConstants rejects inversions that lose the solved variable to a zero
// operand, or whose folded constants the generated type cannot hold.
func checkConstants(req *Request, body, inverse expr.Expr) *diagnostic.Diagnostic {
	if reason := zeroFactor(body); reason != "" {
		return constantFailure(req, "not_invertible", reason)
	}

	var diag *diagnostic.Diagnostic

	expr.Walk(inverse, func(e expr.Expr) bool {
		if diag != nil {
			return false
		}

		if !isConstant(e) {
			if b, ok := e.(*expr.Binary); ok && b.Op == expr.OpDiv && isZero(b.Right) {
				diag = constantFailure(req, "not_invertible", fmt.Sprintf("%s divides by zero", b))
				return false
			}

			return true
		}

		v, err := expr.Eval(e, nil)

		switch {
		case errors.Is(err, expr.ErrDivisionByZero):
			diag = constantFailure(req, "not_invertible", fmt.Sprintf("constant %s divides by zero", e))
		case err != nil:
			diag = constantFailure(req, "not_invertible", err.Error())
		case req.Kind.IsValid() && !req.Kind.Represents(v):
			diag = constantFailure(req, "literal_not_representable",
				fmt.Sprintf("constant %s = %s cannot be represented as %s", e, v.RatString(), req.Kind.GoName()))
		}

		return false
	})

	return diag
}

// zeroFactor describes the first operation in body that maps every value of
// the solved variable to the same result, or returns "".
func zeroFactor(body expr.Expr) string {
	var reason string

	expr.Walk(body, func(e expr.Expr) bool {
		b, ok := e.(*expr.Binary)
		if !ok || reason != "" || isConstant(b) {
			return reason == ""
		}

		switch b.Op {
		case expr.OpMul:
			if isZero(b.Left) || isZero(b.Right) {
				reason = fmt.Sprintf("%s multiplies by zero", b)
			}
		case expr.OpDiv:
			if isZero(b.Right) {
				reason = fmt.Sprintf("%s divides by zero", b)
			} else if isZero(b.Left) {
				reason = fmt.Sprintf("%s divides zero", b)
			}
		}

		return reason == ""
	})

	return reason
}

func constantFailure(req *Request, code, message string) *diagnostic.Diagnostic {
	return &diagnostic.Diagnostic{
		Severity:  diagnostic.DiagnosticError,
		Code:      code,
		Message:   message,
		Inversion: req.Name,
		Position:  req.Position,
	}
}
