package typelib

import (
	"sort"

	"go.uber.org/multierr"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
	"github.com/strict-types/strict-types/internal/types"
)

// forwardRefDiscriminant marks a cyclic back-edge's commitment: it shares
// no value with any types.Kind byte, so it can never be mistaken for a
// real variant while still being a stable, deterministic stand-in for "the
// type currently being resolved refers back to itself".
const forwardRefDiscriminant = 0xF0

// Builder accumulates Draft declarations and a dependency set, then
// freezes them into a TypeLib, following spec.md §4.5's four stages:
// index build, translation, closure check, and freeze (LibId
// computation). Grounded on original_source/src/typelib/type_lib.rs's
// LibBuilder.
type Builder struct {
	name         ident.LibName
	dependencies map[ident.LibAlias]Dependency
	drafts       map[ident.TypeName]Draft
	order        []ident.TypeName
	errs         error
}

func NewBuilder(name ident.LibName) *Builder {
	return &Builder{
		name:         name,
		dependencies: make(map[ident.LibAlias]Dependency),
		drafts:       make(map[ident.TypeName]Draft),
	}
}

// DependsOn registers a dependency library under alias; a second
// registration for the same alias silently replaces the first, mirroring
// a builder call being re-issued rather than a distinct declaration.
func (b *Builder) DependsOn(alias ident.LibAlias, dep Dependency) *Builder {
	b.dependencies[alias] = dep
	return b
}

// Transpile stages a named Draft declaration (index-build stage). A
// duplicate name is recorded as a lazily-aggregated error rather than
// raised immediately, so a caller can keep staging and see every problem
// Build surfaces at once (spec.md §4.5, "aggregates translation errors
// lazily").
func (b *Builder) Transpile(name ident.TypeName, body types.Ty[DraftRef]) *Builder {
	if _, dup := b.drafts[name]; dup {
		b.errs = multierr.Append(b.errs, &DuplicateNameError{Name: name})
		return b
	}
	b.drafts[name] = Draft{Name: name, Body: body}
	b.order = append(b.order, name)
	return b
}

type buildCtx struct {
	drafts     map[ident.TypeName]Draft
	deps       map[ident.LibAlias]Dependency
	resolvedID map[ident.TypeName]semid.ID
	resolvedTy map[ident.TypeName]types.Ty[types.LibRef]
	inProgress map[ident.TypeName]bool
	errs       error
}

// Build runs translation, closure checking and freeze, returning the
// completed TypeLib or the aggregated errors found along the way.
//
// Named types are resolved in ascending-name order rather than Draft
// submission order, so the result doesn't depend on the order Transpile
// was called in. A Named reference still "in progress" when it's met
// again (a structurally recursive or mutually-recursive type) can't have
// its full body hashed without recursing forever; resolution degrades
// that one back-edge to a forward-reference commitment — a discriminant
// byte plus the referenced name, nothing else — and keeps going. The
// type's own final SemId, computed once its body is fully resolved,
// still commits its complete structure; only the contribution a cyclic
// back-edge makes to an enclosing type is name-only. This is a deliberate
// resolution of an otherwise-unspecified case; see DESIGN.md.
func (b *Builder) Build() (TypeLib, error) {
	if b.errs != nil {
		return TypeLib{}, b.errs
	}
	if len(b.drafts) < 1 {
		return TypeLib{}, &types.ConfinementError{What: "typelib types", Got: 0, Min: 1, Max: 65535}
	}
	if len(b.dependencies) > 255 {
		return TypeLib{}, &types.ConfinementError{What: "typelib dependencies", Got: len(b.dependencies), Min: 0, Max: 255}
	}
	if len(b.drafts) > 65535 {
		return TypeLib{}, &types.ConfinementError{What: "typelib types", Got: len(b.drafts), Min: 1, Max: 65535}
	}

	ctx := &buildCtx{
		drafts:     b.drafts,
		deps:       b.dependencies,
		resolvedID: make(map[ident.TypeName]semid.ID),
		resolvedTy: make(map[ident.TypeName]types.Ty[types.LibRef]),
		inProgress: make(map[ident.TypeName]bool),
	}

	names := make([]ident.TypeName, 0, len(b.drafts))
	for n := range b.drafts {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return ident.Less(names[i], names[j]) })

	for _, n := range names {
		ctx.resolve(n)
	}
	if ctx.errs != nil {
		return TypeLib{}, ctx.errs
	}

	return TypeLib{
		Name:         b.name,
		Dependencies: b.dependencies,
		Types:        ctx.resolvedTy,
	}, nil
}

// resolve computes (and memoizes) name's SemId and translated Ty[LibRef],
// returning the forward-reference id for a cyclic back-edge.
func (c *buildCtx) resolve(name ident.TypeName) semid.ID {
	if id, ok := c.resolvedID[name]; ok {
		return id
	}
	draft, ok := c.drafts[name]
	if !ok {
		c.errs = multierr.Append(c.errs, &UnknownTypeError{Name: name})
		return semid.ID{}
	}
	if c.inProgress[name] {
		return forwardRefID(name)
	}
	c.inProgress[name] = true

	ty, err := types.Translate(draft.Body, func(r DraftRef) (types.LibRef, error) {
		return c.convertLibRef(r)
	})
	c.inProgress[name] = false
	if err != nil {
		c.errs = multierr.Append(c.errs, err)
		return semid.ID{}
	}

	id := ty.ID(&name)
	c.resolvedID[name] = id
	c.resolvedTy[name] = ty
	return id
}

func forwardRefID(name ident.TypeName) semid.ID {
	h := semid.NewHasher()
	h.WriteByte(forwardRefDiscriminant)
	h.WriteName(name)
	return h.Sum()
}

func (c *buildCtx) resolveExtern(alias ident.LibAlias, name ident.TypeName) semid.ID {
	dep, ok := c.deps[alias]
	if !ok {
		c.errs = multierr.Append(c.errs, &UnknownDependencyError{Alias: alias})
		return semid.ID{}
	}
	// An Extern type's id is opaque from this library's point of view: it
	// was already computed when the dependency itself was built, so it's
	// committed here as the dependency's LibId combined with the name
	// being imported, not re-derived from a body this library can't see.
	h := semid.NewHasher()
	h.WriteID(dep.Id)
	h.WriteName(name)
	return h.Sum()
}

func (c *buildCtx) convertLibRef(r DraftRef) (types.LibRef, error) {
	switch r.Kind {
	case types.RefNamed:
		return types.NewLibRefNamed(r.Name, c.resolve(r.Name)), nil
	case types.RefExtern:
		return types.NewLibRefExtern(r.Alias, r.Name, c.resolveExtern(r.Alias, r.Name)), nil
	default:
		inner, err := types.Translate(r.Embedded.Body, func(r2 DraftRef) (types.InlineRef, error) {
			return c.convertInlineRef(r2)
		})
		if err != nil {
			return types.LibRef{}, err
		}
		return types.NewLibRefInline(inner), nil
	}
}

func (c *buildCtx) convertInlineRef(r DraftRef) (types.InlineRef, error) {
	switch r.Kind {
	case types.RefNamed:
		return types.NewInlineRefNamed(r.Name, c.resolve(r.Name)), nil
	case types.RefExtern:
		return types.NewInlineRefExtern(r.Alias, r.Name, c.resolveExtern(r.Alias, r.Name)), nil
	default:
		inner, err := types.Translate(r.Embedded.Body, func(r2 DraftRef) (types.InlineRef1, error) {
			return c.convertInlineRef1(r2)
		})
		if err != nil {
			return types.InlineRef{}, err
		}
		return types.NewInlineRefInline(inner), nil
	}
}

func (c *buildCtx) convertInlineRef1(r DraftRef) (types.InlineRef1, error) {
	switch r.Kind {
	case types.RefNamed:
		return types.NewInlineRef1Named(r.Name, c.resolve(r.Name)), nil
	case types.RefExtern:
		return types.NewInlineRef1Extern(r.Alias, r.Name, c.resolveExtern(r.Alias, r.Name)), nil
	default:
		inner, err := types.Translate(r.Embedded.Body, func(r2 DraftRef) (types.InlineRef2, error) {
			return c.convertInlineRef2(r2)
		})
		if err != nil {
			return types.InlineRef1{}, err
		}
		return types.NewInlineRef1Inline(inner), nil
	}
}

// convertInlineRef2 reaches the ladder's last rung before KeyTy: its own
// Inline case translates into Ty[KeyTy], the one level deeper the ladder
// allows (spec.md §4.2, "InlineRef2::Builtin holds only Ty<KeyTy>").
func (c *buildCtx) convertInlineRef2(r DraftRef) (types.InlineRef2, error) {
	switch r.Kind {
	case types.RefNamed:
		return types.NewInlineRef2Named(r.Name, c.resolve(r.Name)), nil
	case types.RefExtern:
		return types.NewInlineRef2Extern(r.Alias, r.Name, c.resolveExtern(r.Alias, r.Name)), nil
	default:
		inner, err := types.Translate(r.Embedded.Body, func(r2 DraftRef) (types.KeyTy, error) {
			return c.convertKeyTy(r2)
		})
		if err != nil {
			return types.InlineRef2{}, err
		}
		return types.NewInlineRef2Inline(inner), nil
	}
}

// convertKeyTy reaches the ladder's true floor. KeyTy carries no
// indirection of its own (spec.md §3.4: "no compound structure; no
// recursion through it"), so a Named/Extern reference has no
// representation here, and only a handful of anonymous shapes reduce to
// a KeyTy leaf: a bare primitive, a fixed-length array of one, and the
// bounded Unicode string. Anything else — another compound type, or a
// fifth level of anonymous nesting — is exactly what TooDeepError
// reports: the ladder has run out of rungs.
func (c *buildCtx) convertKeyTy(r DraftRef) (types.KeyTy, error) {
	if r.Kind != types.RefInline {
		return types.KeyTy{}, &types.TooDeepError{Limit: 4}
	}
	body := r.Embedded.Body
	switch body.Kind() {
	case types.KindPrimitive:
		return types.NewKeyPrimitive(body.Primitive()), nil
	case types.KindUnicode:
		return types.NewKeyUnicode(body.Sizing()), nil
	case types.KindArray:
		elemCode, ok := primitiveLeaf(body.Elem())
		if !ok {
			return types.KeyTy{}, &types.TooDeepError{Limit: 4}
		}
		arr, err := types.NewKeyArray(elemCode, body.ArrayLen())
		if err != nil {
			return types.KeyTy{}, err
		}
		return arr, nil
	default:
		return types.KeyTy{}, &types.TooDeepError{Limit: 4}
	}
}

// primitiveLeaf reports the PrimitiveCode a DraftRef denotes when it's a
// bare inlined primitive, the only element shape a KeyTy array may hold.
func primitiveLeaf(r DraftRef) (types.PrimitiveCode, bool) {
	if r.Kind != types.RefInline || r.Embedded.Body.Kind() != types.KindPrimitive {
		return 0, false
	}
	return r.Embedded.Body.Primitive(), true
}
