// Package types implements the recursive type algebra Ty<R> spec.md §3
// describes: a single tagged-union struct generic over the reference form
// R, smart constructors that enforce each variant's cardinality
// invariants, SemId commitment (§4.3), textual rendering (§6.1), and path
// navigation (§6.3). Grounded on the teacher's internal/types/types.go
// variant-struct idiom, generalized from an interface-per-variant design
// to one generic struct per the "single Ty<R>" shape spec.md requires.
package types

import (
	"sort"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
)

// Kind discriminates the nine Ty<R> variants, spec.md §3.2.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindEnum
	KindUnion
	KindStruct
	KindArray
	KindList
	KindSet
	KindMap
	KindUnicode
)

// EnumVariant is one (ord, name?) pair of an Enum type. Enum carries no
// payload type per variant — only the bare discriminant and an optional
// label — which is what distinguishes it from Union.
type EnumVariant struct {
	Ord  uint8
	Name *ident.Ident
}

// Field is one (ord, name?, type) entry of a Struct or Union.
type Field[R Ref] struct {
	Ord  uint8
	Name *ident.Ident
	Type R
}

// Ty is the single recursive type descriptor every strict type schema is
// built from, generic over the reference form R its children are held
// behind (spec.md §3.1/§3.3). A bare Ty[R] value is never constructed by
// hand outside this package: use the New* smart constructors, which
// enforce §3.2's cardinality invariants at construction time instead of
// leaving them to be caught later.
type Ty[R Ref] struct {
	kind      Kind
	primitive PrimitiveCode
	variants  []EnumVariant
	fields    []Field[R] // Struct/Union, insertion order preserved
	elem      R          // Array/List/Set element, Map value
	key       KeyTy       // Map
	arrayLen  uint16      // Array
	sizing    ident.Sizing // List/Set/Map/Unicode
}

func NewPrimitive[R Ref](code PrimitiveCode) Ty[R] {
	return Ty[R]{kind: KindPrimitive, primitive: code}
}

// NewEnum builds an Enum from 1..=256 variants with unique ords and, when
// present, unique names (spec.md §3.2).
func NewEnum[R Ref](variants []EnumVariant) (Ty[R], error) {
	if len(variants) < 1 || len(variants) > 256 {
		return Ty[R]{}, &ConfinementError{What: "enum variants", Got: len(variants), Min: 1, Max: 256}
	}
	seenOrd := make(map[uint8]bool, len(variants))
	seenName := make(map[string]bool, len(variants))
	for _, v := range variants {
		if seenOrd[v.Ord] {
			return Ty[R]{}, &DuplicateOrdError{What: "enum variant", Ord: v.Ord}
		}
		seenOrd[v.Ord] = true
		if v.Name != nil {
			if seenName[string(*v.Name)] {
				return Ty[R]{}, &DuplicateNameError{What: "enum variant", Name: string(*v.Name)}
			}
			seenName[string(*v.Name)] = true
		}
	}
	out := make([]EnumVariant, len(variants))
	copy(out, variants)
	return Ty[R]{kind: KindEnum, variants: out}, nil
}

// NewUnion builds a Union from 1..=256 (ord, name?, type) variants with
// unique ords and, when present, unique names. Insertion order is
// preserved for display; hashing canonicalizes by ord (spec.md §4.3/§6.1).
func NewUnion[R Ref](fields []Field[R]) (Ty[R], error) {
	if len(fields) < 1 || len(fields) > 256 {
		return Ty[R]{}, &ConfinementError{What: "union variants", Got: len(fields), Min: 1, Max: 256}
	}
	if err := checkUniqueOrdsAndNames("union variant", fields); err != nil {
		return Ty[R]{}, err
	}
	out := make([]Field[R], len(fields))
	copy(out, fields)
	return Ty[R]{kind: KindUnion, fields: out}, nil
}

// NewStruct builds a Struct from 1..=255 fields. Unlike Union, a Struct's
// ord is assigned by declaration position, not supplied by the caller
// (spec.md §3.2, "ord assigned in declaration order").
func NewStruct[R Ref](fields []Field[R]) (Ty[R], error) {
	if len(fields) < 1 || len(fields) > 255 {
		return Ty[R]{}, &ConfinementError{What: "struct fields", Got: len(fields), Min: 1, Max: 255}
	}
	out := make([]Field[R], len(fields))
	seenName := make(map[string]bool, len(fields))
	for i, f := range fields {
		f.Ord = uint8(i)
		if f.Name != nil {
			if seenName[string(*f.Name)] {
				return Ty[R]{}, &DuplicateNameError{What: "struct field", Name: string(*f.Name)}
			}
			seenName[string(*f.Name)] = true
		}
		out[i] = f
	}
	return Ty[R]{kind: KindStruct, fields: out}, nil
}

func checkUniqueOrdsAndNames[R Ref](what string, fields []Field[R]) error {
	seenOrd := make(map[uint8]bool, len(fields))
	seenName := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seenOrd[f.Ord] {
			return &DuplicateOrdError{What: what, Ord: f.Ord}
		}
		seenOrd[f.Ord] = true
		if f.Name != nil {
			if seenName[string(*f.Name)] {
				return &DuplicateNameError{What: what, Name: string(*f.Name)}
			}
			seenName[string(*f.Name)] = true
		}
	}
	return nil
}

// NewArray builds a fixed-length homogeneous array of length >= 1.
func NewArray[R Ref](elem R, length uint16) (Ty[R], error) {
	if length == 0 {
		return Ty[R]{}, &ConfinementError{What: "array length", Got: 0, Min: 1, Max: 65535}
	}
	return Ty[R]{kind: KindArray, elem: elem, arrayLen: length}, nil
}

// NewList builds a variable-length, order-preserving homogeneous sequence
// bounded by sizing.
func NewList[R Ref](elem R, sizing ident.Sizing) Ty[R] {
	return Ty[R]{kind: KindList, elem: elem, sizing: sizing}
}

// NewSet builds a variable-length, deduplicated homogeneous collection
// bounded by sizing (element ordering is the encoder's concern).
func NewSet[R Ref](elem R, sizing ident.Sizing) Ty[R] {
	return Ty[R]{kind: KindSet, elem: elem, sizing: sizing}
}

// NewMap builds a variable-length associative collection keyed by the
// restricted KeyTy universe, bounded by sizing.
func NewMap[R Ref](key KeyTy, value R, sizing ident.Sizing) Ty[R] {
	return Ty[R]{kind: KindMap, key: key, elem: value, sizing: sizing}
}

// NewUnicode builds the built-in bounded Unicode string primitive: despite
// its name, it carries no R-typed child, only a length bound (spec.md
// §3.1's Sizing note groups it with List/Set/Map as a "variable-length
// container", and original_source/src/ast/path.rs's count_subtypes treats
// Unicode exactly as a zero-subtype leaf, like Primitive/Enum).
func NewUnicode[R Ref](sizing ident.Sizing) Ty[R] {
	return Ty[R]{kind: KindUnicode, sizing: sizing}
}

func (t Ty[R]) Kind() Kind { return t.kind }

// IsCompound reports whether t is one of the container variants whose
// identity depends on at least one nested R (spec.md §4.1).
func (t Ty[R]) IsCompound() bool {
	switch t.kind {
	case KindStruct, KindUnion, KindArray, KindList, KindSet, KindMap:
		return true
	default:
		return false
	}
}

// CountSubtypes returns how many direct R-typed children t has: the field
// count for Struct/Union, 1 for Array/List/Set/Map, 0 otherwise. Grounded
// on original_source/src/ast/path.rs's Ty::count_subtypes.
func (t Ty[R]) CountSubtypes() int {
	switch t.kind {
	case KindStruct, KindUnion:
		return len(t.fields)
	case KindArray, KindList, KindSet, KindMap:
		return 1
	default:
		return 0
	}
}

func sortedFields[R Ref](fields []Field[R]) []Field[R] {
	out := make([]Field[R], len(fields))
	copy(out, fields)
	sort.Slice(out, func(i, j int) bool { return out[i].Ord < out[j].Ord })
	return out
}

func sortedVariants(variants []EnumVariant) []EnumVariant {
	out := make([]EnumVariant, len(variants))
	copy(out, variants)
	sort.Slice(out, func(i, j int) bool { return out[i].Ord < out[j].Ord })
	return out
}

// ID computes t's SemId, optionally committing a top-level type name,
// exactly per spec.md §4.3:
//  1. a one-byte variant discriminant
//  2. the name's length-prefixed bytes, if name is non-nil
//  3. the variant's own body
//
// Enum and Union cardinality (1..=256) and Struct cardinality (1..=255)
// are both committed via a plain byte truncation of the count. Since the
// minimum is 1 for every one of these, a count of exactly 256 truncates
// to 0 — a byte value no valid 1..255 count ever produces — so the
// truncation stays injective across the whole allowed range without a
// separate off-by-one encoding.
func (t Ty[R]) ID(name *ident.Ident) semid.ID {
	h := semid.NewHasher()
	h.WriteByte(byte(t.kind))
	if name != nil {
		h.WriteName(*name)
	}
	switch t.kind {
	case KindPrimitive:
		h.WriteByte(byte(t.primitive))
	case KindEnum:
		h.WriteByte(byte(len(t.variants)))
		for _, v := range sortedVariants(t.variants) {
			h.WriteByte(v.Ord)
			h.WriteOptName(v.Name)
		}
	case KindUnion:
		h.WriteByte(byte(len(t.fields)))
		for _, f := range sortedFields(t.fields) {
			h.WriteByte(f.Ord)
			h.WriteOptName(f.Name)
			h.WriteID(f.Type.ID())
		}
	case KindStruct:
		h.WriteByte(byte(len(t.fields)))
		for _, f := range sortedFields(t.fields) {
			h.WriteByte(f.Ord)
			h.WriteOptName(f.Name)
			h.WriteID(f.Type.ID())
		}
	case KindArray:
		h.WriteID(t.elem.ID())
		h.WriteU16(t.arrayLen)
	case KindList, KindSet:
		h.WriteID(t.elem.ID())
		h.WriteSizing(t.sizing)
	case KindMap:
		h.WriteID(t.key.ID())
		h.WriteID(t.elem.ID())
		h.WriteSizing(t.sizing)
	case KindUnicode:
		h.WriteSizing(t.sizing)
	}
	return h.Sum()
}

// Fields returns the Struct/Union fields in insertion (declaration) order;
// empty for every other kind.
func (t Ty[R]) Fields() []Field[R] { return t.fields }

// Variants returns the Enum variants in insertion order.
func (t Ty[R]) Variants() []EnumVariant { return t.variants }

// Elem returns the Array/List/Set element or Map value type.
func (t Ty[R]) Elem() R { return t.elem }

// Key returns the Map key descriptor; zero value otherwise.
func (t Ty[R]) Key() KeyTy { return t.key }

// ArrayLen returns the Array's fixed length; zero otherwise.
func (t Ty[R]) ArrayLen() uint16 { return t.arrayLen }

// Sizing returns the List/Set/Map/Unicode length bound.
func (t Ty[R]) Sizing() ident.Sizing { return t.sizing }

func (t Ty[R]) Primitive() PrimitiveCode { return t.primitive }
