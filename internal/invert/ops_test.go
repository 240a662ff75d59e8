package invert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineq-generator/internal/expr"
)

func TestInverseOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   expr.Operator
		want expr.Operator
	}{
		{expr.OpAdd, expr.OpSub},
		{expr.OpSub, expr.OpAdd},
		{expr.OpMul, expr.OpDiv},
		{expr.OpDiv, expr.OpMul},
	}

	for _, tt := range tests {
		got, err := inverseOperator(tt.op)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, op := range []expr.Operator{expr.OpRem, expr.OpShl, expr.OpLAnd, expr.OpEql, 0} {
		_, err := inverseOperator(op)
		assert.ErrorIs(t, err, ErrBinOp, op.String())
	}
}

func TestParenthesize(t *testing.T) {
	t.Parallel()

	sum := expr.Bin(expr.OpSub, expr.Var("b"), expr.Int(2))
	quo := expr.Bin(expr.OpDiv, expr.Int(60), expr.Var("b"))

	tests := []struct {
		name    string
		acc     expr.Expr
		op      expr.Operator
		right   bool
		grouped bool
	}{
		{"variable under mul", expr.Var("b"), expr.OpMul, false, false},
		{"literal under div", expr.Int(3), expr.OpDiv, true, false},
		{"sum under add", sum, expr.OpAdd, false, false},
		{"sum left of sub", sum, expr.OpSub, false, false},
		{"sum right of sub", sum, expr.OpSub, true, true},
		{"quotient right of sub", quo, expr.OpSub, true, false},
		{"sum under mul", sum, expr.OpMul, false, true},
		{"sum right of div", sum, expr.OpDiv, true, true},
		{"quotient under mul", quo, expr.OpMul, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parenthesize(tt.acc, tt.op, tt.right)
			require.NoError(t, err)

			_, isGroup := got.(*expr.Group)
			assert.Equal(t, tt.grouped, isGroup)
		})
	}

	_, err := parenthesize(sum, expr.OpRem, false)
	assert.ErrorIs(t, err, ErrBinOp)

	// Leaves are returned as-is whatever the operator.
	got, err := parenthesize(expr.Var("b"), expr.OpRem, false)
	require.NoError(t, err)
	assert.Equal(t, expr.Var("b"), got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want bool
	}{
		{"a + 2", true},
		{"a % 2", true},
		{"c * d", true},
		{"-a", false},
		{"a + f(2)", false},
		{"2 * (a + ^3)", false},
	}

	for _, tt := range tests {
		e, err := expr.Parse(tt.src)
		require.NoError(t, err)
		assert.Equal(t, tt.want, validate(e), tt.src)
	}

	assert.False(t, validate(&expr.Group{Inner: expr.Var("a")}))
	assert.False(t, validate(nil))
}

func TestContainsTarget(t *testing.T) {
	t.Parallel()

	e, err := expr.Parse("200 - a * 2 + 3 * 2")
	require.NoError(t, err)

	assert.True(t, containsTarget(e, "a"))
	assert.False(t, containsTarget(e, "b"))
	assert.False(t, containsTarget(expr.Int(1), "a"))
	assert.True(t, containsTarget(&expr.Group{Inner: expr.Var("a")}, "a"))
}
