package expr

import (
	"go/token"
	"math/big"
	"strings"
)

// Expr is a node of an expression tree.
type Expr interface {
	// String renders the expression as Go source.
	String() string
	exprNode()
}

// Literal is a numeric constant.
type Literal struct {
	Raw   string   // source text, e.g. "2" or "0.5"
	Value *big.Rat // exact value
}

// Variable is a reference to an identifier.
type Variable struct {
	Name string
}

// Binary is a binary operation.
type Binary struct {
	Op    Operator
	Left  Expr
	Right Expr
}

// Group wraps a sub-expression in explicit parentheses.
type Group struct {
	Inner Expr
}

// Unary is a prefix operation such as -x or ^x.
type Unary struct {
	Op      token.Token
	Operand Expr
}

// Call is a function call.
type Call struct {
	Func string
	Args []Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Binary) exprNode()   {}
func (*Group) exprNode()    {}
func (*Unary) exprNode()    {}
func (*Call) exprNode()     {}

// Closure is an expression body together with its parameter names.
// The inverter consumes a closure whose body mentions one free variable and
// produces a closure with a single parameter.
type Closure struct {
	Params []string
	Body   Expr
}

// String renders the closure in the |params| body notation.
func (c *Closure) String() string {
	return "|" + strings.Join(c.Params, ", ") + "| " + c.Body.String()
}

// Int returns a literal holding n.
func Int(n int64) *Literal {
	return &Literal{Raw: big.NewInt(n).String(), Value: new(big.Rat).SetInt64(n)}
}

// Var returns a variable node.
func Var(name string) *Variable {
	return &Variable{Name: name}
}

// Bin returns a binary node.
func Bin(op Operator, left, right Expr) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// Identifiers returns the distinct variable names in e in first-seen order.
func Identifiers(e Expr) []string {
	var names []string

	seen := map[string]struct{}{}

	Walk(e, func(n Expr) bool {
		if v, ok := n.(*Variable); ok {
			if _, dup := seen[v.Name]; !dup {
				seen[v.Name] = struct{}{}
				names = append(names, v.Name)
			}
		}

		return true
	})

	return names
}

// Count returns the number of occurrences of the named variable in e.
func Count(e Expr, name string) int {
	n := 0

	Walk(e, func(node Expr) bool {
		if v, ok := node.(*Variable); ok && v.Name == name {
			n++
		}

		return true
	})

	return n
}

// Walk visits e depth-first, left to right. Children of a node are skipped
// when fn returns false for it.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Group:
		Walk(n.Inner, fn)
	case *Unary:
		Walk(n.Operand, fn)
	case *Call:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	}
}
