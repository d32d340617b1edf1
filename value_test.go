package functerm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symbolica/functerm"
)

func TestValueGet(t *testing.T) {
	cases := []struct {
		name string
		v    *functerm.Value
		want float64
	}{
		{"literal", functerm.Literal(12.5), 12.5},
		{"calc", functerm.Combine(functerm.Literal(4), functerm.Literal(5), functerm.Add), 9},
		{"nested", functerm.Combine(
			functerm.Combine(functerm.Literal(2), functerm.Literal(3), functerm.Power),
			functerm.Literal(4),
			functerm.Subtract,
		), 4},
		{"deep-right", functerm.Combine(
			functerm.Literal(1),
			functerm.Combine(functerm.Literal(6), functerm.Literal(4), functerm.Divide),
			functerm.Add,
		), 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.v.Get()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestValueGetError(t *testing.T) {
	bad := functerm.Combine(functerm.Literal(1), functerm.Literal(0), functerm.Divide)

	t.Run("right", func(t *testing.T) {
		v := functerm.Combine(functerm.Literal(2), bad, functerm.Multiply)
		_, err := v.Get()
		var op *functerm.OperandError
		require.ErrorAs(t, err, &op)
		assert.Equal(t, functerm.Right, op.Side)
		assert.ErrorIs(t, err, functerm.ErrDivisionByZero)
	})
	t.Run("left", func(t *testing.T) {
		v := functerm.Combine(bad, functerm.Literal(2), functerm.Multiply)
		_, err := v.Get()
		var op *functerm.OperandError
		require.ErrorAs(t, err, &op)
		assert.Equal(t, functerm.Left, op.Side)
		assert.ErrorIs(t, err, functerm.ErrDivisionByZero)
	})
	t.Run("left-before-right", func(t *testing.T) {
		// Both sides fail; the left side is evaluated first and wins.
		v := functerm.Combine(bad, bad, functerm.Add)
		_, err := v.Get()
		var op *functerm.OperandError
		require.ErrorAs(t, err, &op)
		assert.Equal(t, functerm.Left, op.Side)
	})
}

func TestValueString(t *testing.T) {
	v := functerm.Combine(
		functerm.Combine(functerm.Literal(2), functerm.Literal(3), functerm.Power),
		functerm.Literal(4),
		functerm.Subtract,
	)
	assert.Equal(t, "((2 ^ 3) - 4)", v.String())
}
