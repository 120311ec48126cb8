package types

import (
	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
)

// RefKind distinguishes the three shapes a reference in the ladder can
// take: a type inlined directly into its parent, a reference to a named
// type in the same library, or a reference to a named type in a
// dependency library (spec.md §3.3).
type RefKind uint8

const (
	RefInline RefKind = iota
	RefNamed
	RefExtern
)

// Ref is the constraint every rung of the reference-form ladder satisfies:
// it can report the SemId of whatever type it denotes, whether that's
// computed fresh (an inline body) or carried as a cached commitment
// (a Named/Extern pointer). KeyTy also satisfies Ref, since it terminates
// the ladder at Map keys.
type Ref interface {
	ID() semid.ID
}

// LibRef is the outermost rung: a struct/union field or a List/Set/Map
// element may inline a type one level deep, before the ladder forces
// indirection through a name.
type LibRef struct {
	Kind   RefKind
	Inline *Ty[InlineRef]
	Alias  *ident.LibAlias
	Name   ident.TypeName
	Cached semid.ID
}

func (r LibRef) ID() semid.ID {
	if r.Kind == RefInline {
		return r.Inline.ID(nil)
	}
	return r.Cached
}

// InlineRef is the second rung, reached by inlining once from LibRef.
type InlineRef struct {
	Kind   RefKind
	Inline *Ty[InlineRef1]
	Alias  *ident.LibAlias
	Name   ident.TypeName
	Cached semid.ID
}

func (r InlineRef) ID() semid.ID {
	if r.Kind == RefInline {
		return r.Inline.ID(nil)
	}
	return r.Cached
}

// InlineRef1 is the third rung.
type InlineRef1 struct {
	Kind   RefKind
	Inline *Ty[InlineRef2]
	Alias  *ident.LibAlias
	Name   ident.TypeName
	Cached semid.ID
}

func (r InlineRef1) ID() semid.ID {
	if r.Kind == RefInline {
		return r.Inline.ID(nil)
	}
	return r.Cached
}

// InlineRef2 is the ladder's last reference form (spec.md §3.3): its own
// Inline/"Builtin" case holds a Ty[KeyTy] rather than another rung of the
// ladder, and KeyTy carries no further indirection of its own — "the
// cascade guarantees termination: InlineRef2::Builtin holds only
// Ty<KeyTy>, and KeyTy is acyclic" (§4.2). A Draft that would need to
// inline past this point (anonymous structure nested one level deeper
// than Ty[KeyTy] can express) is what TooDeepError reports.
type InlineRef2 struct {
	Kind   RefKind
	Inline *Ty[KeyTy]
	Alias  *ident.LibAlias
	Name   ident.TypeName
	Cached semid.ID
}

func (r InlineRef2) ID() semid.ID {
	if r.Kind == RefInline {
		return r.Inline.ID(nil)
	}
	return r.Cached
}

func NewLibRefInline(t Ty[InlineRef]) LibRef { return LibRef{Kind: RefInline, Inline: &t} }
func NewLibRefNamed(name ident.TypeName, id semid.ID) LibRef {
	return LibRef{Kind: RefNamed, Name: name, Cached: id}
}
func NewLibRefExtern(alias ident.LibAlias, name ident.TypeName, id semid.ID) LibRef {
	return LibRef{Kind: RefExtern, Alias: &alias, Name: name, Cached: id}
}

func NewInlineRefInline(t Ty[InlineRef1]) InlineRef { return InlineRef{Kind: RefInline, Inline: &t} }
func NewInlineRefNamed(name ident.TypeName, id semid.ID) InlineRef {
	return InlineRef{Kind: RefNamed, Name: name, Cached: id}
}
func NewInlineRefExtern(alias ident.LibAlias, name ident.TypeName, id semid.ID) InlineRef {
	return InlineRef{Kind: RefExtern, Alias: &alias, Name: name, Cached: id}
}

func NewInlineRef1Inline(t Ty[InlineRef2]) InlineRef1 {
	return InlineRef1{Kind: RefInline, Inline: &t}
}
func NewInlineRef1Named(name ident.TypeName, id semid.ID) InlineRef1 {
	return InlineRef1{Kind: RefNamed, Name: name, Cached: id}
}
func NewInlineRef1Extern(alias ident.LibAlias, name ident.TypeName, id semid.ID) InlineRef1 {
	return InlineRef1{Kind: RefExtern, Alias: &alias, Name: name, Cached: id}
}

func NewInlineRef2Inline(t Ty[KeyTy]) InlineRef2 { return InlineRef2{Kind: RefInline, Inline: &t} }
func NewInlineRef2Named(name ident.TypeName, id semid.ID) InlineRef2 {
	return InlineRef2{Kind: RefNamed, Name: name, Cached: id}
}
func NewInlineRef2Extern(alias ident.LibAlias, name ident.TypeName, id semid.ID) InlineRef2 {
	return InlineRef2{Kind: RefExtern, Alias: &alias, Name: name, Cached: id}
}
