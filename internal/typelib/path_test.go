package typelib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/types"
)

// buildTransactionLib wires up the Transaction/Input/Output shape spec.md
// §8.2's S6 scenario walks: Transaction{version, inputs: List(Input),
// outputs: List(Output), locktime}, each of Input/Output carrying its own
// value: U64 field.
func buildTransactionLib(t *testing.T) TypeLib {
	t.Helper()

	valueField := types.Field[DraftRef]{Name: name("value"), Type: EmbeddedRef(types.NewPrimitive[DraftRef](types.U64))}
	inputBody, err := types.NewStruct([]types.Field[DraftRef]{valueField})
	require.NoError(t, err)
	outputBody, err := types.NewStruct([]types.Field[DraftRef]{valueField})
	require.NoError(t, err)

	txBody, err := types.NewStruct([]types.Field[DraftRef]{
		{Name: name("version"), Type: EmbeddedRef(types.NewPrimitive[DraftRef](types.U32))},
		{Name: name("inputs"), Type: EmbeddedRef(types.NewList[DraftRef](NamedRef(ident.MustNew("Input")), ident.SizingU16))},
		{Name: name("outputs"), Type: EmbeddedRef(types.NewList[DraftRef](NamedRef(ident.MustNew("Output")), ident.SizingU16))},
		{Name: name("locktime"), Type: EmbeddedRef(types.NewPrimitive[DraftRef](types.U32))},
	})
	require.NoError(t, err)

	b := NewBuilder(ident.MustNew("Chain"))
	b.Transpile(ident.MustNew("Input"), inputBody)
	b.Transpile(ident.MustNew("Output"), outputBody)
	b.Transpile(ident.MustNew("Transaction"), txBody)
	lib, err := b.Build()
	require.NoError(t, err)
	return lib
}

func TestAtPathCrossesNamedListElementToField(t *testing.T) {
	lib := buildTransactionLib(t)

	path := types.Path{types.FieldStep("inputs"), types.ListStep(), types.FieldStep("value")}
	view, err := lib.AtPath(ident.MustNew("Transaction"), path)
	require.NoError(t, err)

	assert.Equal(t, types.KindPrimitive, view.Kind())
	assert.Equal(t, types.U64, view.Primitive())
}

func TestAtPathEmptyReturnsRootUnchanged(t *testing.T) {
	lib := buildTransactionLib(t)

	view, err := lib.AtPath(ident.MustNew("Transaction"), nil)
	require.NoError(t, err)
	assert.Equal(t, types.KindStruct, view.Kind())
	assert.Equal(t, 4, view.CountSubtypes())
}

func TestAtPathUnknownFieldReportsPathSoFar(t *testing.T) {
	lib := buildTransactionLib(t)

	path := types.Path{types.FieldStep("missing")}
	_, err := lib.AtPath(ident.MustNew("Transaction"), path)
	require.Error(t, err)

	var pathErr *types.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, types.Path{types.FieldStep("missing")}, pathErr.PathSoFar)
}
