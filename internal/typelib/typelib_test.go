package typelib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/types"
)

func TestDisplayNoDependencies(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{u8Field("x")})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Geo"))
	b.Transpile(ident.MustNew("Point"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	out := lib.String()
	assert.Contains(t, out, "typemod Geo")
	assert.Contains(t, out, "-- no dependencies")
	assert.Contains(t, out, "data Point")
}

func TestDisplayListsDependencies(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("x"), Type: ExternRef("Std", ident.MustNew("U8"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Lib"))
	b.DependsOn("Std", Dependency{Name: ident.MustNew("Std"), Ver: mustVer("1.0.0")})
	b.Transpile(ident.MustNew("Only"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	out := lib.String()
	dep := lib.Dependencies["Std"]
	assert.Contains(t, out, dep.String())
	assert.NotContains(t, out, " as ")
}

func TestDisplayAliasedDependencyAddsAsClause(t *testing.T) {
	body, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("x"), Type: ExternRef("S", ident.MustNew("U8"))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Lib"))
	b.DependsOn("S", Dependency{Name: ident.MustNew("Std"), Ver: mustVer("1.0.0")})
	b.Transpile(ident.MustNew("Only"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	out := lib.String()
	dep := lib.Dependencies["S"]
	assert.Contains(t, out, dep.String()+" as S")
}

// TestDisplayPinsS1Literal pins spec.md §8.2 S1's textual form exactly,
// apart from the deterministic LibId substituted in: "typemod" header (not
// the stale "typelib ... -- <id>" form original_source/tests/byte_str.rs
// carries from an earlier revision of this Display impl — see DESIGN.md),
// lowercase primitive codes, and no dependency block.
func TestDisplayPinsS1Literal(t *testing.T) {
	body := types.NewList[DraftRef](EmbeddedRef(types.NewPrimitive[DraftRef](types.U8)), ident.SizingU16)

	b := NewBuilder(ident.MustNew("Test"))
	b.Transpile(ident.MustNew("ByteStr"), body)
	lib, err := b.Build()
	require.NoError(t, err)

	want := "typemod Test\n" +
		"\n" +
		"-- no dependencies\n" +
		"\n" +
		"data ByteStr          :: [u8]\n"
	assert.Equal(t, want, lib.String())
}

func TestSortedAccessorsAreStable(t *testing.T) {
	lib := TypeLib{
		Name: ident.MustNew("Lib"),
		Dependencies: map[ident.LibAlias]Dependency{
			"Zeta":  {Name: ident.MustNew("Zeta")},
			"Alpha": {Name: ident.MustNew("Alpha")},
		},
	}
	aliases := lib.SortedDependencyAliases()
	assert.Equal(t, []ident.LibAlias{"Alpha", "Zeta"}, aliases)
}
