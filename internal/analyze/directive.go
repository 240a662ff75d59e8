package analyze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DirectivePrefix starts an invert directive comment.
const DirectivePrefix = "//lineq:invert"

// ErrDirective is returned for malformed directives.
var ErrDirective = errors.New("malformed directive")

// Directive holds the arguments of one invert directive.
type Directive struct {
	Expr     string
	SolveFor string
	Target   string
	Type     string
	Method   string
}

// IsDirective reports whether a raw comment line is an invert directive.
func IsDirective(comment string) bool {
	rest, ok := strings.CutPrefix(comment, DirectivePrefix)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

// ParseDirective parses a raw comment line such as
// `//lineq:invert "a + 2" type=int`.
func ParseDirective(comment string) (*Directive, error) {
	if !IsDirective(comment) {
		return nil, fmt.Errorf("%w: missing %s prefix", ErrDirective, DirectivePrefix)
	}

	rest := strings.TrimSpace(strings.TrimPrefix(comment, DirectivePrefix))
	if rest == "" {
		return nil, fmt.Errorf("%w: missing expression", ErrDirective)
	}

	quoted, err := strconv.QuotedPrefix(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: expression must be a quoted string", ErrDirective)
	}

	src, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirective, err)
	}

	d := &Directive{Expr: src}

	for _, opt := range strings.Fields(rest[len(quoted):]) {
		key, value, ok := strings.Cut(opt, "=")
		if !ok || value == "" {
			return nil, fmt.Errorf("%w: option %q is not key=value", ErrDirective, opt)
		}

		switch key {
		case "solve_for":
			d.SolveFor = value
		case "target":
			d.Target = value
		case "type":
			d.Type = value
		case "method":
			d.Method = value
		default:
			return nil, fmt.Errorf("%w: unknown option %q", ErrDirective, key)
		}
	}

	return d, nil
}
