package types

import (
	"strconv"
	"strings"
)

// StepKind discriminates the ways a path can descend one level into a
// type, spec.md §6.3, grounded on original_source/src/ast/path.rs's Step.
type StepKind uint8

const (
	StepNamedField StepKind = iota
	StepUnnamedField
	StepIndex
	StepList
	StepSet
	StepMap
)

// Step is one hop of a Path: which named/ordinal field of a Struct/Union
// to enter, or which container shape (Array/List index, Set member, Map
// value) to descend into.
type Step struct {
	Kind StepKind
	Name string // StepNamedField
	Ord  uint8  // StepUnnamedField
}

func FieldStep(name string) Step     { return Step{Kind: StepNamedField, Name: name} }
func OrdStep(ord uint8) Step         { return Step{Kind: StepUnnamedField, Ord: ord} }
func IndexStep() Step                { return Step{Kind: StepIndex} }
func ListStep() Step                 { return Step{Kind: StepList} }
func SetStep() Step                  { return Step{Kind: StepSet} }
func MapStep() Step                  { return Step{Kind: StepMap} }

// String renders a single step per original_source/src/ast/path.rs's
// Display impl: ".{name}"/".{ord}" for fields, "#"/"[]"/"{}"/"->" for the
// container shapes.
func (s Step) String() string {
	switch s.Kind {
	case StepNamedField:
		return "." + s.Name
	case StepUnnamedField:
		return "." + strconv.Itoa(int(s.Ord))
	case StepIndex:
		return "#"
	case StepList:
		return "[]"
	case StepSet:
		return "{}"
	case StepMap:
		return "->"
	default:
		return "?"
	}
}

// Path is an ordered sequence of Steps from a type's root to one of its
// subtypes.
type Path []Step

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// View is what a path lookup hands back once it lands on a subtype: enough
// to inspect the shape found, without committing to which reference rung
// produced it. Every Ty[R] satisfies View regardless of R, since none of
// these methods depend on it — a LibRef-rooted Ty and a KeyTy-rooted Ty
// answer Kind/Primitive/String/CountSubtypes identically.
type View interface {
	Kind() Kind
	Primitive() PrimitiveCode
	String() string
	CountSubtypes() int
}

// At resolves a single Step against t, returning the R-typed child it
// denotes. t only has its own immediate shape to work with, so a Named or
// Extern child comes back as an unresolved reference, not the type it
// points to; crossing that reference — and so composing a full
// multi-step Path traversal — needs the library that holds the whole type
// graph and can follow the reference to the body it names. See
// typelib.TypeLib.AtPath, which is built on repeated application of this
// single-hop primitive (spec.md §6.3).
func (t Ty[R]) At(step Step) (R, error) {
	var zero R
	switch {
	case (t.kind == KindStruct || t.kind == KindUnion) && step.Kind == StepNamedField:
		for _, f := range t.fields {
			if f.Name != nil && string(*f.Name) == step.Name {
				return f.Type, nil
			}
		}
	case (t.kind == KindStruct || t.kind == KindUnion) && step.Kind == StepUnnamedField:
		for _, f := range t.fields {
			if f.Ord == step.Ord {
				return f.Type, nil
			}
		}
	case t.kind == KindArray && step.Kind == StepIndex:
		return t.elem, nil
	case t.kind == KindList && step.Kind == StepList:
		return t.elem, nil
	case t.kind == KindSet && step.Kind == StepSet:
		return t.elem, nil
	case t.kind == KindMap && step.Kind == StepMap:
		return t.elem, nil
	}
	return zero, &PathError{PathSoFar: Path{step}, Step: step}
}
