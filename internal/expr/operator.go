package expr

import "go/token"

//go:generate go tool stringer -type=Operator -linecomment -output=operator_string.go

// Operator is a binary operator.
type Operator int

const (
	_ Operator = iota // zero value is invalid

	OpAdd    // +
	OpSub    // -
	OpMul    // *
	OpDiv    // /
	OpRem    // %
	OpAnd    // &
	OpOr     // |
	OpXor    // ^
	OpShl    // <<
	OpShr    // >>
	OpAndNot // &^
	OpLAnd   // &&
	OpLOr    // ||
	OpEql    // ==
	OpNeq    // !=
	OpLss    // <
	OpLeq    // <=
	OpGtr    // >
	OpGeq    // >=
)

var operatorTokens = map[Operator]token.Token{
	OpAdd:    token.ADD,
	OpSub:    token.SUB,
	OpMul:    token.MUL,
	OpDiv:    token.QUO,
	OpRem:    token.REM,
	OpAnd:    token.AND,
	OpOr:     token.OR,
	OpXor:    token.XOR,
	OpShl:    token.SHL,
	OpShr:    token.SHR,
	OpAndNot: token.AND_NOT,
	OpLAnd:   token.LAND,
	OpLOr:    token.LOR,
	OpEql:    token.EQL,
	OpNeq:    token.NEQ,
	OpLss:    token.LSS,
	OpLeq:    token.LEQ,
	OpGtr:    token.GTR,
	OpGeq:    token.GEQ,
}

var tokenOperators = func() map[token.Token]Operator {
	m := make(map[token.Token]Operator, len(operatorTokens))
	for op, tok := range operatorTokens {
		m[tok] = op
	}

	return m
}()

// OperatorFromToken maps a go/token binary operator to an Operator.
func OperatorFromToken(tok token.Token) (Operator, bool) {
	op, ok := tokenOperators[tok]
	return op, ok
}

// Token returns the go/token equivalent of the operator.
func (o Operator) Token() token.Token {
	if tok, ok := operatorTokens[o]; ok {
		return tok
	}

	return token.ILLEGAL
}

// Precedence returns the Go precedence of the operator (1 lowest, 5 highest),
// or 0 for an invalid operator.
func (o Operator) Precedence() int {
	return o.Token().Precedence()
}

// IsArithmetic reports whether the operator is one of + - * /.
func (o Operator) IsArithmetic() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// IsCommutative reports whether operand order does not matter.
func (o Operator) IsCommutative() bool {
	return o == OpAdd || o == OpMul
}

// IsMultiplicative reports whether the operator is * or /.
func (o Operator) IsMultiplicative() bool {
	return o == OpMul || o == OpDiv
}
