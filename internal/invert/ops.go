package invert

import (
	"fmt"

	"lineq-generator/internal/expr"
)

// inverseOperator returns the operator that undoes op.
func inverseOperator(op expr.Operator) (expr.Operator, error) {
	switch op {
	case expr.OpAdd:
		return expr.OpSub, nil
	case expr.OpSub:
		return expr.OpAdd, nil
	case expr.OpMul:
		return expr.OpDiv, nil
	case expr.OpDiv:
		return expr.OpMul, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrBinOp, op)
	}
}

// parenthesize groups the accumulator when it is about to become an operand of
// op and would otherwise bind to the wrong neighbour once printed. rightOperand
// is set when the accumulator ends up on the right of op.
//
// Literals and variables are never grouped. Composite accumulators are grouped
// under * and /, and additive ones on the right of a - since
// a - (b - c) != a - b - c.
func parenthesize(acc expr.Expr, op expr.Operator, rightOperand bool) (expr.Expr, error) {
	switch acc.(type) {
	case *expr.Literal, *expr.Variable, *expr.Group:
		return acc, nil
	}

	switch op {
	case expr.OpAdd:
		return acc, nil
	case expr.OpSub:
		if b, ok := acc.(*expr.Binary); ok && rightOperand && !b.Op.IsMultiplicative() {
			return &expr.Group{Inner: acc}, nil
		}

		return acc, nil
	case expr.OpMul, expr.OpDiv:
		return &expr.Group{Inner: acc}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrBinOp, op)
	}
}
