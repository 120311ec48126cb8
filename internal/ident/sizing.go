package ident

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sizing bounds the cardinality of a variable-length container (list, set,
// map, unicode string): min <= max, both inclusive.
type Sizing struct {
	Min uint16
	Max uint16
}

// Common sizings named in spec.md §3.1.
var (
	SizingOne          = Sizing{Min: 1, Max: 1}
	SizingU8           = Sizing{Min: 0, Max: 255}
	SizingU16          = Sizing{Min: 0, Max: 65535}
	SizingU8NonEmpty   = Sizing{Min: 1, Max: 255}
	SizingU16NonEmpty  = Sizing{Min: 1, Max: 65535}
)

// NewSizing validates min <= max and max <= u16::MAX (always true for a
// uint16, kept explicit to mirror spec.md's invariant statement).
func NewSizing(min, max uint16) (Sizing, error) {
	if min > max {
		return Sizing{}, errors.Errorf("sizing: min %d exceeds max %d", min, max)
	}
	return Sizing{Min: min, Max: max}, nil
}

// Fixed returns a Sizing with min == max == len.
func Fixed(length uint16) Sizing { return Sizing{Min: length, Max: length} }

// String renders the Sizing suffix exactly as spec.md §6.1 fixes it:
// empty for (0, max-u16), " ^ ..max" when min=0, " ^ min.." when
// max=max-u16, otherwise " ^ min..0xHEXMAX".
func (s Sizing) String() string {
	const u16Max = 65535
	switch {
	case s.Min == 0 && s.Max == u16Max:
		return ""
	case s.Min == 0:
		return fmt.Sprintf(" ^ ..%d", s.Max)
	case s.Max == u16Max:
		return fmt.Sprintf(" ^ %d..", s.Min)
	default:
		return fmt.Sprintf(" ^ %d..0x%02x", s.Min, s.Max)
	}
}
