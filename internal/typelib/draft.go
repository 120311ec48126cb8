package typelib

import (
	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
	"github.com/strict-types/strict-types/internal/types"
)

// DraftRef is the library builder's input reference form: unlike the
// fixed ladder internal/types exposes to the rest of the module, a Draft
// type graph may nest inline bodies arbitrarily deep and its Named/Extern
// legs don't carry a resolved SemId yet — computing that id is exactly
// what Build does. Grounded on original_source/src/typelib/id.rs's
// TranspileRef{Embedded,Named,Extern}.
type DraftRef struct {
	Kind     types.RefKind
	Embedded *Draft
	Alias    ident.LibAlias
	Name     ident.TypeName
}

// ID satisfies types.Ref so Ty[DraftRef] type-checks; it is never called
// for its result during a normal build; the builder's own translation
// recurses through Embedded/Name instead of asking a DraftRef for its id.
func (r DraftRef) ID() semid.ID { return semid.ID{} }

func EmbeddedRef(body types.Ty[DraftRef]) DraftRef {
	return DraftRef{Kind: types.RefInline, Embedded: &Draft{Body: body}}
}

func NamedRef(name ident.TypeName) DraftRef {
	return DraftRef{Kind: types.RefNamed, Name: name}
}

func ExternRef(alias ident.LibAlias, name ident.TypeName) DraftRef {
	return DraftRef{Kind: types.RefExtern, Alias: alias, Name: name}
}

// Draft is one top-level type declaration awaiting a Build: a name and its
// (arbitrarily nested) body.
type Draft struct {
	Name ident.TypeName
	Body types.Ty[DraftRef]
}
