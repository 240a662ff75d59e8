package expr

import (
	"strings"
)

const atomPrecedence = 6

// String returns the source text of the literal.
func (l *Literal) String() string {
	if l.Raw != "" {
		return l.Raw
	}

	if l.Value == nil {
		return "0"
	}

	return l.Value.RatString()
}

func (v *Variable) String() string {
	return v.Name
}

// String renders the operation, adding parentheses only where Go precedence
// would otherwise regroup the operands.
func (b *Binary) String() string {
	var sb strings.Builder

	prec := b.Op.Precedence()

	writeOperand(&sb, b.Left, precedenceOf(b.Left) < prec)
	sb.WriteString(" ")
	sb.WriteString(b.Op.String())
	sb.WriteString(" ")
	writeOperand(&sb, b.Right, precedenceOf(b.Right) <= prec)

	return sb.String()
}

func (g *Group) String() string {
	return "(" + g.Inner.String() + ")"
}

func (u *Unary) String() string {
	operand := u.Operand.String()
	if precedenceOf(u.Operand) < atomPrecedence {
		operand = "(" + operand + ")"
	}

	return u.Op.String() + operand
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}

	return c.Func + "(" + strings.Join(args, ", ") + ")"
}

func writeOperand(sb *strings.Builder, e Expr, paren bool) {
	if paren {
		sb.WriteString("(")
		sb.WriteString(e.String())
		sb.WriteString(")")

		return
	}

	sb.WriteString(e.String())
}

// precedenceOf returns how tightly e binds when printed.
func precedenceOf(e Expr) int {
	if b, ok := e.(*Binary); ok {
		return b.Op.Precedence()
	}

	return atomPrecedence
}
