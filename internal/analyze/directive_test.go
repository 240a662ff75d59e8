package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    Directive
	}{
		{
			comment: `//lineq:invert "|| a + 2"`,
			want:    Directive{Expr: "|| a + 2"},
		},
		{
			comment: `//lineq:invert "a / 2" type=int`,
			want:    Directive{Expr: "a / 2", Type: "int"},
		},
		{
			comment: "//lineq:invert \t`c * 9 / 5 + 32` solve_for=c target=f type=float64 method=ToCelsius",
			want: Directive{
				Expr:     "c * 9 / 5 + 32",
				SolveFor: "c",
				Target:   "f",
				Type:     "float64",
				Method:   "ToCelsius",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDirective(tt.comment)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseDirective_Errors(t *testing.T) {
	t.Parallel()

	tests := []string{
		`// lineq:invert "a + 2"`,
		`//lineq:inverted "a + 2"`,
		`//lineq:invert`,
		`//lineq:invert a + 2`,
		`//lineq:invert "a + 2`,
		`//lineq:invert "a + 2" type`,
		`//lineq:invert "a + 2" type=`,
		`//lineq:invert "a + 2" colour=red`,
	}

	for _, comment := range tests {
		t.Run(comment, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDirective(comment)
			assert.ErrorIs(t, err, ErrDirective)
		})
	}
}

func TestIsDirective(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDirective(`//lineq:invert "a"`))
	assert.True(t, IsDirective(`//lineq:invert`))
	assert.False(t, IsDirective(`//lineq:inverted`))
	assert.False(t, IsDirective(`// lineq:invert "a"`))
	assert.False(t, IsDirective(`/* lineq:invert */`))
}
