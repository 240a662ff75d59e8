package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strings"
)

// ErrSyntax is returned for source text that is not an expression the tree can
// represent.
var ErrSyntax = errors.New("unsupported expression syntax")

// Parse parses Go expression source into a tree.
func Parse(src string) (Expr, error) {
	node, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", src, err)
	}

	return fromAST(node)
}

// ParseClosure parses either a bare expression or closure notation such as
// "|| a + 2" or "|b| b * 3".
func ParseClosure(src string) (*Closure, error) {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, "|") {
		body, err := Parse(s)
		if err != nil {
			return nil, err
		}

		return &Closure{Body: body}, nil
	}

	end := strings.Index(s[1:], "|")
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated closure parameters in %q", ErrSyntax, src)
	}

	var params []string

	for _, p := range strings.Split(s[1:end+1], ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if !token.IsIdentifier(p) {
			return nil, fmt.Errorf("%w: invalid closure parameter %q", ErrSyntax, p)
		}

		params = append(params, p)
	}

	body, err := Parse(s[end+2:])
	if err != nil {
		return nil, err
	}

	return &Closure{Params: params, Body: body}, nil
}

func fromAST(node ast.Expr) (Expr, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		return literalFromAST(n)
	case *ast.Ident:
		return &Variable{Name: n.Name}, nil
	case *ast.SelectorExpr:
		name, ok := selectorName(n)
		if !ok {
			return nil, fmt.Errorf("%w: selector on non-identifier", ErrSyntax)
		}

		return &Variable{Name: name}, nil
	case *ast.ParenExpr:
		return fromAST(n.X)
	case *ast.BinaryExpr:
		op, ok := OperatorFromToken(n.Op)
		if !ok {
			return nil, fmt.Errorf("%w: operator %s", ErrSyntax, n.Op)
		}

		left, err := fromAST(n.X)
		if err != nil {
			return nil, err
		}

		right, err := fromAST(n.Y)
		if err != nil {
			return nil, err
		}

		return &Binary{Op: op, Left: left, Right: right}, nil
	case *ast.UnaryExpr:
		operand, err := fromAST(n.X)
		if err != nil {
			return nil, err
		}

		return &Unary{Op: n.Op, Operand: operand}, nil
	case *ast.CallExpr:
		fn, ok := callName(n.Fun)
		if !ok {
			return nil, fmt.Errorf("%w: call of non-identifier", ErrSyntax)
		}

		args := make([]Expr, 0, len(n.Args))

		for _, a := range n.Args {
			arg, err := fromAST(a)
			if err != nil {
				return nil, err
			}

			args = append(args, arg)
		}

		return &Call{Func: fn, Args: args}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrSyntax, node)
	}
}

func literalFromAST(lit *ast.BasicLit) (Expr, error) {
	switch lit.Kind {
	case token.INT, token.FLOAT:
	default:
		return nil, fmt.Errorf("%w: %s literal %s", ErrSyntax, strings.ToLower(lit.Kind.String()), lit.Value)
	}

	val, err := parseNumber(lit.Value)
	if err != nil {
		return nil, err
	}

	return &Literal{Raw: lit.Value, Value: val}, nil
}

func parseNumber(raw string) (*big.Rat, error) {
	clean := strings.ReplaceAll(raw, "_", "")

	// big.Rat does not understand Go's 0o/0x/0b integer prefixes.
	if i, ok := new(big.Int).SetString(clean, 0); ok {
		return new(big.Rat).SetInt(i), nil
	}

	r, ok := new(big.Rat).SetString(clean)
	if !ok {
		return nil, fmt.Errorf("%w: numeric literal %s", ErrSyntax, raw)
	}

	return r, nil
}

func selectorName(sel *ast.SelectorExpr) (string, bool) {
	switch x := sel.X.(type) {
	case *ast.Ident:
		return x.Name + "." + sel.Sel.Name, true
	case *ast.SelectorExpr:
		prefix, ok := selectorName(x)
		if !ok {
			return "", false
		}

		return prefix + "." + sel.Sel.Name, true
	default:
		return "", false
	}
}

func callName(fn ast.Expr) (string, bool) {
	switch f := fn.(type) {
	case *ast.Ident:
		return f.Name, true
	case *ast.SelectorExpr:
		return selectorName(f)
	default:
		return "", false
	}
}
