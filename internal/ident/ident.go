// Package ident defines the validated name types used throughout the
// strict type system: type names, field names, library names and aliases
// are all instances of the same confined ASCII identifier.
package ident

import (
	"strings"

	"github.com/pkg/errors"
)

// Bounds on identifier length, inclusive.
const (
	MinLen = 1
	MaxLen = 32
)

// Reason classifies why an identifier failed validation.
type Reason int

const (
	ReasonEmpty Reason = iota
	ReasonNonAlphabetic
	ReasonInvalidChar
	ReasonNonASCII
	ReasonLengthOutOfRange
)

// InvalidIdentError reports why a candidate string is not a valid Ident.
// It mirrors spec.md's InvalidIdent variant set (Empty, NonAlphabetic,
// InvalidChar, NonAscii, LengthOutOfRange) as a single tagged struct, the
// way the teacher reports a single KindError for every kind-unification
// failure rather than one Go type per failure mode.
type InvalidIdentError struct {
	Reason Reason
	Char   byte
	Value  string
}

func (e *InvalidIdentError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return "ident: must contain at least one character"
	case ReasonNonAlphabetic:
		return errors.Errorf("ident %q: must start with an alphabetic character, not %q", e.Value, e.Char).Error()
	case ReasonInvalidChar:
		return errors.Errorf("ident %q: contains invalid character %q", e.Value, e.Char).Error()
	case ReasonNonASCII:
		return errors.Errorf("ident %q: contains non-ASCII byte(s)", e.Value).Error()
	case ReasonLengthOutOfRange:
		return errors.Errorf("ident %q: length %d out of range [%d,%d]", e.Value, len(e.Value), MinLen, MaxLen).Error()
	default:
		return "ident: invalid"
	}
}

// Ident is a non-empty, printable-ASCII, 1..32 character name: the first
// character must be alphabetic, the remainder alphanumeric or '_'.
//
// Ident underlies TypeName, FieldName, LibName and LibAlias; equality and
// ordering are byte-wise on the ASCII form.
type Ident string

// TypeName, FieldName, LibName and LibAlias are all Ident: spec.md §3.1
// draws no structural distinction between them, only a usage distinction.
type (
	TypeName = Ident
	FieldName = Ident
	LibName   = Ident
	LibAlias  = Ident
)

// New validates s and returns an Ident, or an *InvalidIdentError.
func New(s string) (Ident, error) {
	if len(s) == 0 {
		return "", &InvalidIdentError{Reason: ReasonEmpty}
	}
	if len(s) < MinLen || len(s) > MaxLen {
		return "", &InvalidIdentError{Reason: ReasonLengthOutOfRange, Value: s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return "", &InvalidIdentError{Reason: ReasonNonASCII, Value: s}
		}
	}
	first := s[0]
	if !isAlphabetic(first) {
		return "", &InvalidIdentError{Reason: ReasonNonAlphabetic, Char: first, Value: s}
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !isAlphanumeric(ch) && ch != '_' {
			return "", &InvalidIdentError{Reason: ReasonInvalidChar, Char: ch, Value: s}
		}
	}
	return Ident(s), nil
}

// MustNew is New but panics on an invalid identifier; it exists for
// constructing compile-time constant identifiers (e.g. built-in type
// names) the way the teacher's types.go builds its Primitive singletons.
func MustNew(s string) Ident {
	id, err := New(s)
	if err != nil {
		panic(err)
	}
	return id
}

// AutoFromHex derives an automatic identifier from the first 8 hex
// characters of an id's hex form, upper-cased, prefixed with "Auto" —
// mirroring original_source's `impl From<SemId> for Ident`, used when a
// type needs a display name but was never given one.
func AutoFromHex(hex string) Ident {
	up := strings.ToUpper(hex)
	if len(up) > 8 {
		up = up[:8]
	}
	return Ident("Auto" + up)
}

func isAlphabetic(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphanumeric(b byte) bool {
	return isAlphabetic(b) || (b >= '0' && b <= '9')
}

func (id Ident) String() string { return string(id) }

// Less implements the byte-wise ordering TypeLib's sorted accessors use to
// keep dependency-alias and type-name iteration deterministic (spec.md
// §4.5 "Ordering guarantees"): SortedDependencyAliases and
// SortedTypeNames both sort by this, not an inline comparison of their
// own.
func Less(a, b Ident) bool { return a < b }
