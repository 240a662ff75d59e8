package expr

import (
	"errors"
	"fmt"
	"math/big"
)

// Evaluation errors.
var (
	ErrUnbound        = errors.New("unbound variable")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotEvaluable   = errors.New("expression cannot be evaluated")
)

// Env binds variable names to values.
type Env map[string]*big.Rat

// IntEnv builds an Env from integer bindings.
func IntEnv(bindings map[string]int64) Env {
	env := make(Env, len(bindings))
	for k, v := range bindings {
		env[k] = new(big.Rat).SetInt64(v)
	}

	return env
}

// Eval evaluates e exactly. Only + - * / over literals and bound variables are
// supported.
func Eval(e Expr, env Env) (*big.Rat, error) {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return nil, fmt.Errorf("%w: literal %q has no value", ErrNotEvaluable, n.Raw)
		}

		return new(big.Rat).Set(n.Value), nil
	case *Variable:
		v, ok := env[n.Name]
		if !ok || v == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnbound, n.Name)
		}

		return new(big.Rat).Set(v), nil
	case *Group:
		return Eval(n.Inner, env)
	case *Binary:
		if !n.Op.IsArithmetic() {
			return nil, fmt.Errorf("%w: operator %s", ErrNotEvaluable, n.Op)
		}

		left, err := Eval(n.Left, env)
		if err != nil {
			return nil, err
		}

		right, err := Eval(n.Right, env)
		if err != nil {
			return nil, err
		}

		switch n.Op {
		case OpAdd:
			return left.Add(left, right), nil
		case OpSub:
			return left.Sub(left, right), nil
		case OpMul:
			return left.Mul(left, right), nil
		case OpDiv:
			if right.Sign() == 0 {
				return nil, ErrDivisionByZero
			}

			return left.Quo(left, right), nil
		default:
			return nil, fmt.Errorf("%w: operator %s", ErrNotEvaluable, n.Op)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotEvaluable, e)
	}
}

// EvalInt64 evaluates e with Go int64 semantics: division truncates toward
// zero. Non-integer literals are rejected.
func EvalInt64(e Expr, env map[string]int64) (int64, error) {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil || !n.Value.IsInt() || !n.Value.Num().IsInt64() {
			return 0, fmt.Errorf("%w: literal %s is not an int64", ErrNotEvaluable, n)
		}

		return n.Value.Num().Int64(), nil
	case *Variable:
		v, ok := env[n.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnbound, n.Name)
		}

		return v, nil
	case *Group:
		return EvalInt64(n.Inner, env)
	case *Binary:
		if !n.Op.IsArithmetic() {
			return 0, fmt.Errorf("%w: operator %s", ErrNotEvaluable, n.Op)
		}

		left, err := EvalInt64(n.Left, env)
		if err != nil {
			return 0, err
		}

		right, err := EvalInt64(n.Right, env)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSub:
			return left - right, nil
		case OpMul:
			return left * right, nil
		case OpDiv:
			if right == 0 {
				return 0, ErrDivisionByZero
			}

			return left / right, nil
		default:
			return 0, fmt.Errorf("%w: operator %s", ErrNotEvaluable, n.Op)
		}
	default:
		return 0, fmt.Errorf("%w: %T", ErrNotEvaluable, e)
	}
}
