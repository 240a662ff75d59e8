package invert

import (
	"fmt"

	"lineq-generator/internal/expr"
)

// Inverter holds the state of a single inversion: the variable being
// eliminated, the placeholder being introduced, and the accumulator built so
// far. An Inverter is consumed by one call to Solve.
type Inverter struct {
	targetExpr expr.Expr
	solveFor   string
	target     string
}

// New creates an Inverter solving for solveFor in terms of target.
func New(solveFor, target string) *Inverter {
	return &Inverter{
		targetExpr: expr.Var(target),
		solveFor:   solveFor,
		target:     target,
	}
}

// Solve returns a closure with the single parameter target whose body
// computes solveFor from the value of the closure's body.
func (inv *Inverter) Solve(c *expr.Closure) (*expr.Closure, error) {
	if c == nil || c.Body == nil {
		return nil, fmt.Errorf("%w: empty closure", ErrValidation)
	}

	if !validate(c.Body) {
		return nil, ErrValidation
	}

	if name, ok := strayIdentifier(c.Body, inv.solveFor); ok {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedIdentifier, name)
	}

	if err := inv.solveExpr(c.Body); err != nil {
		return nil, err
	}

	return &expr.Closure{
		Params: []string{inv.target},
		Body:   inv.targetExpr,
	}, nil
}

// solveExpr descends towards the variable, rewriting the accumulator once per
// binary node on the way.
func (inv *Inverter) solveExpr(e expr.Expr) error {
	switch n := e.(type) {
	case *expr.Binary:
		left := containsTarget(n.Left, inv.solveFor)
		right := containsTarget(n.Right, inv.solveFor)

		invertedOp, err := inverseOperator(n.Op)
		if err != nil {
			return err
		}

		switch {
		case left && right:
			return fmt.Errorf("%w: %s", ErrMultiple, n)
		case !left && !right:
			return fmt.Errorf("%w: %s", ErrNoSolveFor, n)
		case left:
			acc, err := parenthesize(inv.targetExpr, invertedOp, false)
			if err != nil {
				return err
			}

			inv.targetExpr = expr.Bin(invertedOp, acc, n.Right)

			return inv.solveExpr(n.Left)
		case n.Op.IsCommutative():
			acc, err := parenthesize(inv.targetExpr, invertedOp, false)
			if err != nil {
				return err
			}

			inv.targetExpr = expr.Bin(invertedOp, acc, n.Left)

			return inv.solveExpr(n.Right)
		default:
			// x = l - r  =>  r = l - x;  x = l / r  =>  r = l / x
			acc, err := parenthesize(inv.targetExpr, n.Op, true)
			if err != nil {
				return err
			}

			inv.targetExpr = expr.Bin(n.Op, n.Left, acc)

			return inv.solveExpr(n.Right)
		}
	case *expr.Variable:
		if n.Name != inv.solveFor {
			return fmt.Errorf("%w: %s", ErrUnexpectedIdentifier, n.Name)
		}

		return nil
	case *expr.Literal:
		return fmt.Errorf("%w: %s", ErrNoSolveFor, n)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedNode, e)
	}
}

// Invert solves body for solveFor and returns the inverse body expressed in
// terms of target.
func Invert(body expr.Expr, solveFor, target string) (expr.Expr, error) {
	c, err := New(solveFor, target).Solve(&expr.Closure{Body: body})
	if err != nil {
		return nil, err
	}

	return c.Body, nil
}

// InvertClosure is Invert for a closure. Parameters declared on c are
// ignored; the body's only free variable must be solveFor.
func InvertClosure(c *expr.Closure, solveFor, target string) (*expr.Closure, error) {
	return New(solveFor, target).Solve(c)
}
