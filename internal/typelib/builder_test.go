package typelib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
	"github.com/strict-types/strict-types/internal/types"
)

func name(s string) *ident.Ident {
	id := ident.MustNew(s)
	return &id
}

func u8Field(fieldName string) types.Field[DraftRef] {
	return types.Field[DraftRef]{
		Name: name(fieldName),
		Type: EmbeddedRef(types.NewPrimitive[DraftRef](types.U8)),
	}
}

func TestBuildSimpleStruct(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{u8Field("x"), u8Field("y")})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Geo"))
	b.Transpile(ident.MustNew("Point"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	ty, id, ok := lib.Lookup(ident.MustNew("Point"))
	require.True(t, ok)
	assert.Equal(t, 2, ty.CountSubtypes())
	assert.False(t, id.IsZero())
}

func TestBuildDeterministicLibId(t *testing.T) {
	build := func() semid.ID {
		body, err := types.NewStruct([]types.Field[DraftRef]{u8Field("x"), u8Field("y")})
		require.NoError(t, err)
		b := NewBuilder(ident.MustNew("Geo"))
		b.Transpile(ident.MustNew("Point"), body)
		lib, err := b.Build()
		require.NoError(t, err)
		return lib.Id()
	}
	assert.Equal(t, build(), build())
}

func TestBuildRejectsDuplicateName(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{u8Field("x")})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Geo"))
	b.Transpile(ident.MustNew("Point"), body)
	b.Transpile(ident.MustNew("Point"), body)
	_, err = b.Build()
	require.Error(t, err)
}

func TestBuildRejectsUnknownNamedType(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("next"), Type: NamedRef(ident.MustNew("Ghost"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Lib"))
	b.Transpile(ident.MustNew("Only"), body)
	_, err = b.Build()
	require.Error(t, err)
}

func TestBuildRejectsUnknownDependencyAlias(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("x"), Type: ExternRef("Missing", ident.MustNew("Thing"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Lib"))
	b.Transpile(ident.MustNew("Only"), body)
	_, err = b.Build()
	require.Error(t, err)
}

func TestBuildResolvesDependency(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("x"), Type: ExternRef("Std", ident.MustNew("U8"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Lib"))
	b.DependsOn("Std", Dependency{Name: ident.MustNew("Std"), Ver: mustVer("1.0.0")})
	b.Transpile(ident.MustNew("Only"), body)
	lib, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, lib.Types, 1)
}

func TestBuildResolvesSelfReferentialType(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		u8Field("value"),
		{Name: name("next"), Type: NamedRef(ident.MustNew("Node"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("List"))
	b.Transpile(ident.MustNew("Node"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	_, id, ok := lib.Lookup(ident.MustNew("Node"))
	require.True(t, ok)
	assert.False(t, id.IsZero())
}

func TestBuildResolvesMutuallyRecursiveTypes(t *testing.T) {
	evenBody, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("tail"), Type: NamedRef(ident.MustNew("Odd"))},
	})
	require.NoError(t, err)
	oddBody, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("tail"), Type: NamedRef(ident.MustNew("Even"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Parity"))
	b.Transpile(ident.MustNew("Even"), evenBody)
	b.Transpile(ident.MustNew("Odd"), oddBody)
	lib, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, lib.Types, 2)
}

// TestBuildTooDeepInlineNestingErrors nests a struct five inline levels
// deep. The ladder holds four inline levels — Ty[InlineRef], Ty[InlineRef1],
// Ty[InlineRef2] and finally Ty[KeyTy], whose children must be KeyTy
// leaves (see TestBuildAllowsFourthLadderRung) — so a fifth anonymous
// struct, landing where only a KeyTy fits, has nowhere left to go.
func TestBuildTooDeepInlineNestingErrors(t *testing.T) {
	leaf := types.NewPrimitive[DraftRef](types.U8)
	bodyE, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f6"), Type: EmbeddedRef(leaf)}})
	require.NoError(t, err)
	bodyD, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f5"), Type: EmbeddedRef(bodyE)}})
	require.NoError(t, err)
	bodyC, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f4"), Type: EmbeddedRef(bodyD)}})
	require.NoError(t, err)
	bodyB, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f3"), Type: EmbeddedRef(bodyC)}})
	require.NoError(t, err)
	bodyA, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f2"), Type: EmbeddedRef(bodyB)}})
	require.NoError(t, err)
	top, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f1"), Type: EmbeddedRef(bodyA)}})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Deep"))
	b.Transpile(ident.MustNew("Deep"), top)
	_, err = b.Build()
	require.Error(t, err)
}

// TestBuildAllowsFourthLadderRung exercises the newly-legal case the
// ladder fix restored: InlineRef2 inlining all the way down to a bare
// Ty[KeyTy] leaf (here a fixed-length array of a primitive, one of the
// handful of shapes KeyTy itself can express).
func TestBuildAllowsFourthLadderRung(t *testing.T) {
	leafElem := types.NewPrimitive[DraftRef](types.U8)
	leafArray, err := types.NewArray[DraftRef](EmbeddedRef(leafElem), 4)
	require.NoError(t, err)
	bodyC, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f4"), Type: EmbeddedRef(leafArray)}})
	require.NoError(t, err)
	bodyB, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f3"), Type: EmbeddedRef(bodyC)}})
	require.NoError(t, err)
	bodyA, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f2"), Type: EmbeddedRef(bodyB)}})
	require.NoError(t, err)
	top, err := types.NewStruct([]types.Field[DraftRef]{{Name: name("f1"), Type: EmbeddedRef(bodyA)}})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Deep"))
	b.Transpile(ident.MustNew("Deep"), top)
	lib, err := b.Build()
	require.NoError(t, err)

	_, id, ok := lib.Lookup(ident.MustNew("Deep"))
	require.True(t, ok)
	assert.False(t, id.IsZero())
}

// TestBuildRejectsEmptyLibrary enforces spec.md §3.5's 1 <= len(types): a
// Builder that never staged a Draft must not freeze into a validly-empty
// TypeLib.
func TestBuildRejectsEmptyLibrary(t *testing.T) {
	b := NewBuilder(ident.MustNew("Empty"))
	_, err := b.Build()
	require.Error(t, err)
}

func mustVer(s string) ident.SemVer {
	v, err := ident.ParseSemVer(s)
	if err != nil {
		panic(err)
	}
	return v
}
