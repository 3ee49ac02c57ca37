package complexity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegradesTo(t *testing.T) {
	t.Run("zero gain degrades to constant", func(t *testing.T) {
		for _, name := range Names() {
			to, ok := degradesTo(name, NewParams().WithGain(0))
			if name == Constant {
				require.False(t, ok)
				continue
			}
			require.True(t, ok, name.String())
			require.Equal(t, Constant, to)
		}
	})

	tests := []struct {
		name   string
		model  Name
		params Params
		to     Name
	}{
		{"power 0", Polynomial, NewParams().WithPower(0), Constant},
		{"power 1", Polynomial, NewParams().WithPower(1 + 1e-7), Linear},
		{"power 2", Polynomial, NewParams().WithPower(2), Quadratic},
		{"power 3", Polynomial, NewParams().WithPower(3 - 1e-7), Cubic},
		{"base 0", Exponential, NewParams().WithBase(0), Constant},
		{"base 1", Exponential, NewParams().WithBase(1), Constant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to, ok := degradesTo(tt.model, tt.params)
			require.True(t, ok)
			require.Equal(t, tt.to, to)
		})
	}

	t.Run("genuine fits are kept", func(t *testing.T) {
		_, ok := degradesTo(Polynomial, NewParams().WithGain(3).WithPower(4))
		require.False(t, ok)
		_, ok = degradesTo(Exponential, NewParams().WithGain(9).WithBase(5))
		require.False(t, ok)
		_, ok = degradesTo(Linear, NewParams().WithGain(2).WithOffset(3))
		require.False(t, ok)
	})
}

func TestValidate(t *testing.T) {
	neg, err := New(Linear, NewParams().WithGain(-1).WithOffset(3))
	require.NoError(t, err)
	require.Equal(t, "negative gain", validate(neg))

	flat, err := New(Exponential, NewParams().WithGain(2).WithBase(1))
	require.NoError(t, err)
	require.Equal(t, "degrades to Constant", validate(flat))

	ok, err := New(Cubic, NewParams().WithGain(6).WithOffset(7))
	require.NoError(t, err)
	require.Empty(t, validate(ok))
}
