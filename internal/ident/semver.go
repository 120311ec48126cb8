package ident

import (
	"strconv"
	"strings"

	bsemver "github.com/blang/semver"
	"github.com/pkg/errors"
)

// MaxFragments bounds each of SemVer's pre/build sequences, per spec.md §3.1.
const MaxFragments = 255

// Fragment is one dot-separated component of a pre-release or build
// metadata sequence: either an identifier or a bare decimal run.
type Fragment struct {
	Numeric bool
	Ident   Ident
	Number  uint64
}

func (f Fragment) String() string {
	if f.Numeric {
		return strconv.FormatUint(f.Number, 10)
	}
	return string(f.Ident)
}

// SemVer is major.minor.patch plus ordered pre-release and build-metadata
// fragment sequences (spec.md §3.1).
type SemVer struct {
	Major uint16
	Minor uint16
	Patch uint16
	Pre   []Fragment
	Build []Fragment
}

// ParseSemVer validates and tokenizes a "major.minor.patch[-pre][+build]"
// string by delegating the grammar to github.com/blang/semver (the
// numeric/alphanumeric-identifier parsing this module reuses rather than
// reimplementing), then maps the result onto SemVer's fragment
// representation.
func ParseSemVer(s string) (SemVer, error) {
	v, err := bsemver.Parse(s)
	if err != nil {
		return SemVer{}, errors.Wrapf(err, "semver: invalid version %q", s)
	}
	if v.Major > 0xFFFF || v.Minor > 0xFFFF || v.Patch > 0xFFFF {
		return SemVer{}, errors.Errorf("semver: %q exceeds u16 component range", s)
	}
	if len(v.Pre) > MaxFragments {
		return SemVer{}, errors.Errorf("semver: %q has more than %d pre-release fragments", s, MaxFragments)
	}
	if len(v.Build) > MaxFragments {
		return SemVer{}, errors.Errorf("semver: %q has more than %d build fragments", s, MaxFragments)
	}

	sv := SemVer{Major: uint16(v.Major), Minor: uint16(v.Minor), Patch: uint16(v.Patch)}
	for _, pr := range v.Pre {
		if pr.IsNum {
			sv.Pre = append(sv.Pre, Fragment{Numeric: true, Number: pr.VersionNum})
			continue
		}
		id, err := New(pr.VersionStr)
		if err != nil {
			// Pre-release identifiers may contain hyphens, which Ident
			// forbids; a fragment that fails validation keeps its raw
			// text as an unvalidated, non-numeric Ident.
			sv.Pre = append(sv.Pre, Fragment{Ident: Ident(pr.VersionStr)})
			continue
		}
		sv.Pre = append(sv.Pre, Fragment{Ident: id})
	}
	for _, b := range v.Build {
		sv.Build = append(sv.Build, Fragment{Ident: Ident(b)})
	}
	return sv, nil
}

// String renders major.minor.patch followed by build fragments behind "-"
// and pre-release fragments behind "+", in that order — preserved
// verbatim from original_source/src/util.rs's Display impl, which places
// the two sequences in that (non-conventional) order.
func (v SemVer) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(v.Major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(v.Minor), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(v.Patch), 10))

	if len(v.Build) > 0 {
		b.WriteByte('-')
		for i, f := range v.Build {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(f.String())
		}
	}
	if len(v.Pre) > 0 {
		b.WriteByte('+')
		for i, f := range v.Pre {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(f.String())
		}
	}
	return b.String()
}

// Equal reports structural equality, used by SemId-adjacent code that
// needs value comparison without relying on String() round-trips.
func (v SemVer) Equal(o SemVer) bool {
	if v.Major != o.Major || v.Minor != o.Minor || v.Patch != o.Patch {
		return false
	}
	if len(v.Pre) != len(o.Pre) || len(v.Build) != len(o.Build) {
		return false
	}
	for i := range v.Pre {
		if v.Pre[i] != o.Pre[i] {
			return false
		}
	}
	for i := range v.Build {
		if v.Build[i] != o.Build[i] {
			return false
		}
	}
	return true
}
