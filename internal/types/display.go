package types

import (
	"strconv"
	"strings"

	"github.com/strict-types/strict-types/internal/ident"
)

// String renders t per spec.md §6.1's textual grammar. Named children are
// rendered by whatever the reference form's own String shows (a bare name
// for Named/Extern refs, the inline body for Inline refs, parenthesized
// when that body is compound);
// this method only has t's own shape to work with, so it defers to a
// Stringer constraint satisfied by every rung of the ladder.
func (t Ty[R]) String() string {
	switch t.kind {
	case KindPrimitive:
		return t.primitive.String()
	case KindEnum:
		return "{ " + strings.Join(enumLabels(t.variants), ", ") + " }"
	case KindUnion:
		return renderFields(t.fields, " | ")
	case KindStruct:
		return renderFields(t.fields, ", ")
	case KindArray:
		return refString(t.elem) + "[" + strconv.Itoa(int(t.arrayLen)) + "]"
	case KindList:
		return "[" + refString(t.elem) + "]" + t.sizing.String()
	case KindSet:
		return "{" + refString(t.elem) + "}" + t.sizing.String()
	case KindMap:
		return "{" + t.key.String() + "} -> " + refString(t.elem) + t.sizing.String()
	case KindUnicode:
		return "Unicode" + t.sizing.String()
	default:
		return "?"
	}
}

func enumLabels(variants []EnumVariant) []string {
	vs := sortedVariants(variants)
	out := make([]string, len(vs))
	for i, v := range vs {
		if v.Name != nil {
			out[i] = string(*v.Name)
		} else {
			out[i] = strconv.Itoa(int(v.Ord))
		}
	}
	return out
}

func renderFields[R Ref](fields []Field[R], sep string) string {
	named := false
	for _, f := range fields {
		if f.Name != nil {
			named = true
			break
		}
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		if named {
			label := strconv.Itoa(int(f.Ord))
			if f.Name != nil {
				label = string(*f.Name)
			}
			parts[i] = label + " : " + refString(f.Type)
		} else {
			parts[i] = refString(f.Type)
		}
	}
	openDelim, closeDelim := "{ ", " }"
	if !named {
		openDelim, closeDelim = "(", ")"
	}
	return openDelim + strings.Join(parts, sep) + closeDelim
}

// refStringer is satisfied by every rung of the reference ladder plus
// KeyTy: each can render itself as either a bare name (Named/Extern) or an
// inline body (parenthesized when compound).
type refStringer interface {
	refString() string
}

func refString[R Ref](r R) string {
	if s, ok := any(r).(refStringer); ok {
		return s.refString()
	}
	return ""
}

func (r LibRef) refString() string     { return refKindString(r.Kind, r.Alias, r.Name, r.Inline) }
func (r InlineRef) refString() string  { return refKindString(r.Kind, r.Alias, r.Name, r.Inline) }
func (r InlineRef1) refString() string { return refKindString(r.Kind, r.Alias, r.Name, r.Inline) }

func (r InlineRef2) refString() string { return refKindString(r.Kind, r.Alias, r.Name, r.Inline) }

func (k KeyTy) refString() string { return k.String() }

type stringer interface{ String() string }

func refKindString(kind RefKind, alias *ident.LibAlias, name ident.TypeName, inline stringer) string {
	switch kind {
	case RefNamed:
		return string(name)
	case RefExtern:
		if alias != nil {
			return string(*alias) + "." + string(name)
		}
		return string(name)
	default:
		if c, ok := inline.(interface{ IsCompound() bool }); ok && c.IsCompound() {
			return "(" + inline.String() + ")"
		}
		return inline.String()
	}
}
