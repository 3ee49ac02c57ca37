package complexity

import (
	"fmt"
	"strings"
)

// Params holds the recovered parameters of a fitted model.
//
// Only the fields meaningful to the model are set; a nil field means the
// parameter does not apply, which is different from a zero value.
//
//   - y = gain * f(x) + offset   (Constant sets offset only)
//   - y = gain * x^power         (Polynomial)
//   - y = gain * base^x          (Exponential)
type Params struct {
	Gain   *float64 `json:"gain,omitempty" yaml:"gain,omitempty"`
	Offset *float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Power  *float64 `json:"power,omitempty" yaml:"power,omitempty"`
	Base   *float64 `json:"base,omitempty" yaml:"base,omitempty"`
}

// NewParams returns an empty parameter set.
//
// Example:
//
//	p := complexity.NewParams().WithGain(2).WithOffset(3)
func NewParams() Params {
	return Params{}
}

// WithGain returns a copy of p with gain set.
func (p Params) WithGain(v float64) Params {
	p.Gain = &v
	return p
}

// WithOffset returns a copy of p with offset set.
func (p Params) WithOffset(v float64) Params {
	p.Offset = &v
	return p
}

// WithPower returns a copy of p with power set.
func (p Params) WithPower(v float64) Params {
	p.Power = &v
	return p
}

// WithBase returns a copy of p with base set.
func (p Params) WithBase(v float64) Params {
	p.Base = &v
	return p
}

// GainValue returns the gain and whether it is set.
func (p Params) GainValue() (float64, bool) { return deref(p.Gain) }

// OffsetValue returns the offset and whether it is set.
func (p Params) OffsetValue() (float64, bool) { return deref(p.Offset) }

// PowerValue returns the power and whether it is set.
func (p Params) PowerValue() (float64, bool) { return deref(p.Power) }

// BaseValue returns the base and whether it is set.
func (p Params) BaseValue() (float64, bool) { return deref(p.Base) }

// Clone returns a deep copy that shares no storage with p.
func (p Params) Clone() Params {
	return Params{
		Gain:   clonePtr(p.Gain),
		Offset: clonePtr(p.Offset),
		Power:  clonePtr(p.Power),
		Base:   clonePtr(p.Base),
	}
}

// String lists the set parameters, e.g. "gain=2, offset=3".
func (p Params) String() string {
	var parts []string
	for _, f := range []struct {
		name string
		v    *float64
	}{{"gain", p.Gain}, {"offset", p.Offset}, {"power", p.Power}, {"base", p.Base}} {
		if f.v != nil {
			parts = append(parts, fmt.Sprintf("%s=%.6g", f.name, *f.v))
		}
	}

	return strings.Join(parts, ", ")
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}

	return *v, true
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}
