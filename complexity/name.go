package complexity

import (
	"cmp"
	"fmt"
	"strings"
)

// Name identifies a complexity class of the fixed catalog.
type Name uint8

const (
	// Constant is O(1): y = offset.
	Constant Name = iota
	// Logarithmic is O(log n): y = gain*ln(x) + offset.
	Logarithmic
	// Linear is O(n): y = gain*x + offset.
	Linear
	// Linearithmic is O(n log n): y = gain*x*ln(x) + offset.
	Linearithmic
	// Quadratic is O(n^2): y = gain*x² + offset.
	Quadratic
	// Cubic is O(n^3): y = gain*x³ + offset.
	Cubic
	// Polynomial is O(n^m): y = gain*x^power.
	Polynomial
	// Exponential is O(c^n): y = gain*base^x.
	Exponential

	numNames
)

// Entry is an immutable registry record.
type Entry struct {
	Name     Name   `json:"name"`
	Notation string `json:"notation"`
	Rank     int    `json:"rank"`
}

var registry = [numNames]Entry{
	Constant:     {Name: Constant, Notation: "O(1)", Rank: 0},
	Logarithmic:  {Name: Logarithmic, Notation: "O(log n)", Rank: 1},
	Linear:       {Name: Linear, Notation: "O(n)", Rank: 2},
	Linearithmic: {Name: Linearithmic, Notation: "O(n log n)", Rank: 3},
	Quadratic:    {Name: Quadratic, Notation: "O(n^2)", Rank: 4},
	Cubic:        {Name: Cubic, Notation: "O(n^3)", Rank: 5},
	Polynomial:   {Name: Polynomial, Notation: "O(n^m)", Rank: 6},
	Exponential:  {Name: Exponential, Notation: "O(c^n)", Rank: 7},
}

var nameStrings = [numNames]string{
	Constant:     "Constant",
	Logarithmic:  "Logarithmic",
	Linear:       "Linear",
	Linearithmic: "Linearithmic",
	Quadratic:    "Quadratic",
	Cubic:        "Cubic",
	Polynomial:   "Polynomial",
	Exponential:  "Exponential",
}

var byNotation = func() map[string]Name {
	m := make(map[string]Name, numNames)
	for _, e := range registry {
		m[e.Notation] = e.Name
	}

	return m
}()

// Names returns every catalog name in rank order.
func Names() []Name {
	out := make([]Name, 0, numNames)
	for _, e := range registry {
		out = append(out, e.Name)
	}

	return out
}

// Valid reports whether n is a catalog name.
func (n Name) Valid() bool {
	return n < numNames
}

// String returns the human-readable name, e.g. "Linearithmic".
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", uint8(n))
	}

	return nameStrings[n]
}

// Notation returns the canonical Big-O notation, or "" for an invalid name.
func (n Name) Notation() string {
	if !n.Valid() {
		return ""
	}

	return registry[n].Notation
}

// Rank returns the growth-order rank, or -1 for an invalid name.
func (n Name) Rank() int {
	if !n.Valid() {
		return -1
	}

	return registry[n].Rank
}

// MarshalText encodes the name as its human-readable string.
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, &UnknownComplexityError{Notation: n.String()}
	}

	return []byte(n.String()), nil
}

// UnmarshalText accepts either a notation or a human-readable name.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed

	return nil
}

// Lookup returns the registry entry whose notation matches exactly.
//
// Example:
//
//	e, err := complexity.Lookup("O(n log n)")
//	// e.Name == complexity.Linearithmic
func Lookup(notation string) (Entry, error) {
	name, ok := byNotation[notation]
	if !ok {
		return Entry{}, &UnknownComplexityError{Notation: notation}
	}

	return registry[name], nil
}

// EntryOf returns the registry entry for a name.
func EntryOf(n Name) (Entry, bool) {
	if !n.Valid() {
		return Entry{}, false
	}

	return registry[n], true
}

// ParseName resolves a notation ("O(n^2)") or a case-insensitive
// human-readable name ("quadratic").
func ParseName(s string) (Name, error) {
	if name, ok := byNotation[s]; ok {
		return name, nil
	}
	trimmed := strings.TrimSpace(s)
	for i, str := range nameStrings {
		if strings.EqualFold(str, trimmed) {
			return Name(i), nil
		}
	}

	return 0, &UnknownComplexityError{Notation: s}
}

// Entries returns a copy of the registry in rank order.
func Entries() []Entry {
	out := make([]Entry, numNames)
	copy(out, registry[:])

	return out
}

// Compare orders two entries by rank: -1 when a grows slower than b, +1 when
// faster, 0 when they are the same class.
func Compare(a, b Entry) int {
	return cmp.Compare(a.Rank, b.Rank)
}

// Less reports whether e is asymptotically better (grows slower) than other.
func (e Entry) Less(other Entry) bool { return Compare(e, other) < 0 }

// Greater reports whether e is asymptotically worse (grows faster) than other.
func (e Entry) Greater(other Entry) bool { return Compare(e, other) > 0 }

// Equal reports whether e and other share a rank.
func (e Entry) Equal(other Entry) bool { return Compare(e, other) == 0 }

func (e Entry) String() string {
	return fmt.Sprintf("%s %s (rank %d)", e.Name, e.Notation, e.Rank)
}
