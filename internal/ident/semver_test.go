package ident

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemVerBasic(t *testing.T) {
	v, err := ParseSemVer("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, SemVer{Major: 1, Minor: 2, Patch: 3}, v)
}

func TestParseSemVerWithFragments(t *testing.T) {
	v, err := ParseSemVer("2.0.0-alpha.1+build.7")
	require.NoError(t, err)
	require.Len(t, v.Pre, 2)
	assert.Equal(t, Fragment{Ident: Ident("alpha")}, v.Pre[0])
	assert.True(t, v.Pre[1].Numeric)
	assert.Equal(t, uint64(1), v.Pre[1].Number)
	require.Len(t, v.Build, 2)
}

func TestParseSemVerInvalid(t *testing.T) {
	_, err := ParseSemVer("not-a-version")
	require.Error(t, err)
}

func TestSemVerEqual(t *testing.T) {
	a, _ := ParseSemVer("1.0.0")
	b, _ := ParseSemVer("1.0.0")
	assert.True(t, a.Equal(b))

	c, _ := ParseSemVer("1.0.1")
	assert.False(t, a.Equal(c))
}

// TestParseSemVerStructuralDiff uses go-cmp rather than testify's
// reflect.DeepEqual-based Equal so a future fragment-sequence mismatch
// prints a readable field-by-field diff instead of just "not equal".
func TestParseSemVerStructuralDiff(t *testing.T) {
	got, err := ParseSemVer("3.1.4-rc.2")
	require.NoError(t, err)
	want := SemVer{
		Major: 3, Minor: 1, Patch: 4,
		Pre: []Fragment{{Ident: Ident("rc")}, {Numeric: true, Number: 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSemVer mismatch (-want +got):\n%s", diff)
	}
}
