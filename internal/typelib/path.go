package typelib

import (
	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/types"
)

// AtPath resolves path against the type declared under root, crossing
// Named references through this library's own Types as the path meets
// them — the graph-aware composition Ty[R].At's doc points to (spec.md
// §6.3, §8.1 invariant 7). A frozen TypeLib is the only thing that can do
// this: it holds every named type's body, so a Named ref met mid-path can
// be resumed from the start of its own reference ladder, the same way a
// fresh lookup would.
//
// An empty path returns root's own type unchanged. A step the current
// shape doesn't admit, or an Extern ref (this library holds only the
// dependency's cached id, never its body), fails with a *types.PathError
// carrying every step consumed so far, including the failing one. A root,
// or a Named ref met along the path, that this library doesn't declare
// fails with *UnknownTypeError.
func (l TypeLib) AtPath(root ident.TypeName, path types.Path) (types.View, error) {
	ty, ok := l.Types[root]
	if !ok {
		return nil, &UnknownTypeError{Name: root}
	}
	return l.walkLibRef(ty, path, nil)
}

func (l TypeLib) followNamed(name ident.TypeName, path, soFar types.Path) (types.View, error) {
	named, ok := l.Types[name]
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return l.walkLibRef(named, path, soFar)
}

func (l TypeLib) walkLibRef(t types.Ty[types.LibRef], path, soFar types.Path) (types.View, error) {
	if len(path) == 0 {
		return t, nil
	}
	step := path[0]
	soFar = append(soFar, step)
	child, err := t.At(step)
	if err != nil {
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
	switch child.Kind {
	case types.RefInline:
		return l.walkInlineRef(*child.Inline, path[1:], soFar)
	case types.RefNamed:
		return l.followNamed(child.Name, path[1:], soFar)
	default: // RefExtern: the body lives in a dependency this library never embeds.
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
}

func (l TypeLib) walkInlineRef(t types.Ty[types.InlineRef], path, soFar types.Path) (types.View, error) {
	if len(path) == 0 {
		return t, nil
	}
	step := path[0]
	soFar = append(soFar, step)
	child, err := t.At(step)
	if err != nil {
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
	switch child.Kind {
	case types.RefInline:
		return l.walkInlineRef1(*child.Inline, path[1:], soFar)
	case types.RefNamed:
		return l.followNamed(child.Name, path[1:], soFar)
	default:
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
}

func (l TypeLib) walkInlineRef1(t types.Ty[types.InlineRef1], path, soFar types.Path) (types.View, error) {
	if len(path) == 0 {
		return t, nil
	}
	step := path[0]
	soFar = append(soFar, step)
	child, err := t.At(step)
	if err != nil {
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
	switch child.Kind {
	case types.RefInline:
		return l.walkInlineRef2(*child.Inline, path[1:], soFar)
	case types.RefNamed:
		return l.followNamed(child.Name, path[1:], soFar)
	default:
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
}

// walkInlineRef2 is the ladder's last rung: its own Inline case lands on a
// Ty[KeyTy], the floor the ladder guarantees termination at (spec.md
// §4.2). Nothing past that point can be stepped into — a KeyTy leaf has
// no Named/Extern indirection of its own to cross — so a path that still
// has steps left once it reaches one is exactly the "no subtype at this
// step" case PathError exists for.
func (l TypeLib) walkInlineRef2(t types.Ty[types.InlineRef2], path, soFar types.Path) (types.View, error) {
	if len(path) == 0 {
		return t, nil
	}
	step := path[0]
	soFar = append(soFar, step)
	child, err := t.At(step)
	if err != nil {
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
	rest := path[1:]
	switch child.Kind {
	case types.RefInline:
		if len(rest) != 0 {
			return nil, &types.PathError{PathSoFar: soFar, Step: step}
		}
		return *child.Inline, nil
	case types.RefNamed:
		return l.followNamed(child.Name, rest, soFar)
	default:
		return nil, &types.PathError{PathSoFar: soFar, Step: step}
	}
}
