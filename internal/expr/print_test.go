package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{"a+2", "a + 2"},
		{"(a + 2) * 3", "(a + 2) * 3"},
		{"200 - a*2 + 3*2", "200 - a * 2 + 3 * 2"},
		{"a - (b - c)", "a - (b - c)"},
		{"(a - b) - c", "a - b - c"},
		{"a / (b * c)", "a / (b * c)"},
		{"a * (b * c)", "a * (b * c)"},
		{"-(a + 1)", "-(a + 1)"},
		{"-a", "-a"},
		{"f(a, 2 * b)", "f(a, 2 * b)"},
		{"a % 3", "a % 3"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			e, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestString_Group(t *testing.T) {
	t.Parallel()

	e := Bin(OpMul, &Group{Inner: Bin(OpAdd, Var("b"), Int(2))}, Int(3))
	assert.Equal(t, "(b + 2) * 3", e.String())

	// A group keeps its parentheses even where precedence would not need them.
	e = Bin(OpAdd, &Group{Inner: Bin(OpMul, Var("b"), Int(2))}, Int(3))
	assert.Equal(t, "(b * 2) + 3", e.String())
}

func TestClosure_String(t *testing.T) {
	t.Parallel()

	c := &Closure{Params: []string{"b"}, Body: Bin(OpSub, Var("b"), Int(2))}
	assert.Equal(t, "|b| b - 2", c.String())

	c = &Closure{Body: Int(7)}
	assert.Equal(t, "|| 7", c.String())
}
