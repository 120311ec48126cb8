package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strict-types/strict-types/internal/ident"
)

// TestBuildIsDeterministic realizes spec.md's Scenario S2: building Std
// twice from the same definitions must produce the same LibId. This port
// doesn't carry over original_source/src/stl.rs's golden LIB_ID_STD
// constant (it was computed by a different hashing pipeline over a
// different reflection mechanism than this port uses — see DESIGN.md);
// determinism of repeated builds is what's actually checked here.
func TestBuildIsDeterministic(t *testing.T) {
	lib1, err := Build()
	require.NoError(t, err)
	lib2, err := Build()
	require.NoError(t, err)
	assert.Equal(t, lib1.Id(), lib2.Id())
}

func TestBuildDeclaresExpectedTypes(t *testing.T) {
	lib, err := Build()
	require.NoError(t, err)

	for _, n := range []string{
		"Bool", "U4", "AsciiPrintable", "Alpha", "AlphaCaps", "AlphaSmall",
		"Dec", "HexDecCaps", "HexDecSmall", "AlphaNum", "AlphaCapsNum",
		"AlphaNumDash", "AlphaNumLodash",
	} {
		_, _, ok := lib.Lookup(ident.MustNew(n))
		assert.True(t, ok, "missing %s", n)
	}
}

func TestCharacterClassesHaveDisjointAlphabetSizes(t *testing.T) {
	lib, err := Build()
	require.NoError(t, err)

	alphaTy, _, _ := lib.Lookup(ident.MustNew("Alpha"))
	assert.Equal(t, 52, len(alphaTy.Variants()))

	decTy, _, _ := lib.Lookup(ident.MustNew("Dec"))
	assert.Equal(t, 10, len(decTy.Variants()))

	alphaNumTy, _, _ := lib.Lookup(ident.MustNew("AlphaNum"))
	assert.Equal(t, 62, len(alphaNumTy.Variants()))
}
