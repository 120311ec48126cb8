// Package typelib implements TypeLib, spec.md §5's dependency-aware
// collection of named types: a library name, its dependency set (each
// pinned to a LibId and version), and the named types it declares,
// together with the builder pipeline (§C7/§4.5) that turns an unbounded
// Draft type graph into the fixed reference-form ladder internal/types
// defines, computing every SemId and the library's own LibId along the
// way. Grounded on original_source/src/typelib/type_lib.rs and
// src/typelib/id.rs.
package typelib

import (
	"sort"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
	"github.com/strict-types/strict-types/internal/types"
)

// Dependency pins one library this TypeLib relies on to resolve its Extern
// references: the dependency's own LibId, its declared name, and the
// version it was built against (spec.md §5).
type Dependency struct {
	Id   semid.ID
	Name ident.LibName
	Ver  ident.SemVer
}

// TypeLib is a frozen, content-addressed collection of named types: once
// built, every Named/Extern reference inside it carries a resolved SemId
// and the library itself carries a resolved LibId (TypeLib.Id()).
type TypeLib struct {
	Name         ident.LibName
	Dependencies map[ident.LibAlias]Dependency
	Types        map[ident.TypeName]types.Ty[types.LibRef]
}

// SortedDependencyAliases returns the library's dependency aliases in
// ascending order, the canonical order both hashing (§4.4) and display
// (§6.1) iterate dependencies in.
func (l TypeLib) SortedDependencyAliases() []ident.LibAlias {
	aliases := make([]ident.LibAlias, 0, len(l.Dependencies))
	for a := range l.Dependencies {
		aliases = append(aliases, a)
	}
	sort.Slice(aliases, func(i, j int) bool { return ident.Less(aliases[i], aliases[j]) })
	return aliases
}

// SortedTypeNames returns the library's declared type names in ascending
// order, the canonical order both hashing and display iterate types in.
func (l TypeLib) SortedTypeNames() []ident.TypeName {
	names := make([]ident.TypeName, 0, len(l.Types))
	for n := range l.Types {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return ident.Less(names[i], names[j]) })
	return names
}

// Lookup returns the named type's resolved SemId, if declared.
func (l TypeLib) Lookup(name ident.TypeName) (types.Ty[types.LibRef], semid.ID, bool) {
	ty, ok := l.Types[name]
	if !ok {
		return types.Ty[types.LibRef]{}, semid.ID{}, false
	}
	return ty, ty.ID(&name), true
}
