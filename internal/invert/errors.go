package invert

import "errors"

var (
	// ErrBinOp is returned when an operator other than + - * / has to be
	// inverted or used to wrap the accumulator.
	ErrBinOp = errors.New("only a subset of binary operators are allowed")
	// ErrMultiple is returned when both operands of a node contain the variable.
	ErrMultiple = errors.New("cannot have multiple of the target variable")
	// ErrNoSolveFor is returned when neither operand of a node contains the
	// variable.
	ErrNoSolveFor = errors.New("solve_for not found")
	// ErrUnexpectedIdentifier is returned for a free identifier other than the
	// variable being solved for.
	ErrUnexpectedIdentifier = errors.New("unexpected identifier")
	// ErrValidation is returned when the input uses node kinds other than
	// literals, variables and binary operations.
	ErrValidation = errors.New("used unrecognised features")
	// ErrUnsupportedNode is returned when a node kind that validation should
	// have rejected reaches the solver.
	ErrUnsupportedNode = errors.New("unsupported expression node")
)

// Code returns a short stable identifier for a taxonomy error, or "" if err is
// not one of them.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrBinOp):
		return "binop"
	case errors.Is(err, ErrMultiple):
		return "multiple"
	case errors.Is(err, ErrNoSolveFor):
		return "no_solve_for"
	case errors.Is(err, ErrUnexpectedIdentifier):
		return "unexpected_identifier"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnsupportedNode):
		return "unsupported_node"
	default:
		return ""
	}
}
