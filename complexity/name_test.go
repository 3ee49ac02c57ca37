package complexity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_RankOrder(t *testing.T) {
	order := []Name{Constant, Logarithmic, Linear, Linearithmic, Quadratic, Cubic, Polynomial, Exponential}
	require.Equal(t, order, Names())

	for i := 1; i < len(order); i++ {
		require.Less(t, order[i-1].Rank(), order[i].Rank(), "%s must rank below %s", order[i-1], order[i])
	}

	entries := Entries()
	require.Len(t, entries, len(order))
	for i := 1; i < len(entries); i++ {
		require.True(t, entries[i-1].Less(entries[i]))
		require.True(t, entries[i].Greater(entries[i-1]))
		require.False(t, entries[i].Equal(entries[i-1]))
	}
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	entries := Entries()
	entries[0].Notation = "mutated"

	require.Equal(t, "O(1)", Constant.Notation())
	require.Equal(t, "O(1)", Entries()[0].Notation)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		notation string
		name     Name
	}{
		{"O(1)", Constant},
		{"O(log n)", Logarithmic},
		{"O(n)", Linear},
		{"O(n log n)", Linearithmic},
		{"O(n^2)", Quadratic},
		{"O(n^3)", Cubic},
		{"O(n^m)", Polynomial},
		{"O(c^n)", Exponential},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			e, err := Lookup(tt.notation)
			require.NoError(t, err)
			require.Equal(t, tt.name, e.Name)
			require.Equal(t, tt.notation, e.Notation)
			require.Equal(t, tt.name.Rank(), e.Rank)
			require.Equal(t, tt.notation, tt.name.Notation())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, s := range []string{"", "O(n!)", "o(n)", "O(n) ", "Linear"} {
		_, err := Lookup(s)
		require.ErrorIs(t, err, ErrUnknownComplexity, "notation %q", s)

		var uerr *UnknownComplexityError
		require.True(t, errors.As(err, &uerr))
		require.Equal(t, s, uerr.Notation)
	}
}

func TestCompare(t *testing.T) {
	linear, err := Lookup("O(n)")
	require.NoError(t, err)
	cubic, err := Lookup("O(n^3)")
	require.NoError(t, err)

	require.Equal(t, -1, Compare(linear, cubic))
	require.Equal(t, 1, Compare(cubic, linear))
	require.Equal(t, 0, Compare(linear, linear))
	require.True(t, linear.Equal(linear))
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"O(n log n)", Linearithmic},
		{"linearithmic", Linearithmic},
		{"  Exponential ", Exponential},
		{"CUBIC", Cubic},
	}
	for _, tt := range tests {
		got, err := ParseName(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseName("factorial")
	require.ErrorIs(t, err, ErrUnknownComplexity)
}

func TestName_InvalidValues(t *testing.T) {
	bad := Name(200)
	require.False(t, bad.Valid())
	require.Equal(t, "Name(200)", bad.String())
	require.Empty(t, bad.Notation())
	require.Equal(t, -1, bad.Rank())

	_, ok := EntryOf(bad)
	require.False(t, ok)

	_, err := bad.MarshalText()
	require.ErrorIs(t, err, ErrUnknownComplexity)
}

func TestName_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Name{"best": Quadratic})
	require.NoError(t, err)
	require.JSONEq(t, `{"best":"Quadratic"}`, string(data))

	var decoded struct {
		A Name `json:"a"`
		B Name `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"O(c^n)","b":"logarithmic"}`), &decoded))
	require.Equal(t, Exponential, decoded.A)
	require.Equal(t, Logarithmic, decoded.B)

	require.Error(t, json.Unmarshal([]byte(`{"a":"O(n!)"}`), &decoded))
}
