package types

import (
	"strconv"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/semid"
)

// KeyKind enumerates the restricted universe a Map key may draw from,
// spec.md §3.4: a primitive scalar, a fixed-length array of a primitive
// (e.g. a 20-byte hash), or a bounded ASCII/Unicode string.
type KeyKind uint8

const (
	KeyPrimitive KeyKind = iota
	KeyArray
	KeyAscii
	KeyUnicode
)

// KeyTy is the terminal rung of the reference ladder: Map is the only
// container keyed by something other than a full Ty<R>, and that something
// must come from this restricted, comparable universe so Map has a
// well-defined key ordering (owned by the type encoder, outside this
// package's scope — see DESIGN.md).
type KeyTy struct {
	kind      KeyKind
	primitive PrimitiveCode
	arrayLen  uint16
	arrayElem PrimitiveCode
	sizing    ident.Sizing
}

func NewKeyPrimitive(p PrimitiveCode) KeyTy {
	return KeyTy{kind: KeyPrimitive, primitive: p}
}

// NewKeyArray builds a fixed-length byte/primitive-element array key, e.g.
// a 20-byte or 32-byte hash used as a map key.
func NewKeyArray(elem PrimitiveCode, length uint16) (KeyTy, error) {
	if length == 0 {
		return KeyTy{}, &ConfinementError{What: "key array length", Got: 0, Min: 1, Max: 65535}
	}
	return KeyTy{kind: KeyArray, arrayElem: elem, arrayLen: length}, nil
}

func NewKeyAscii(sizing ident.Sizing) KeyTy {
	return KeyTy{kind: KeyAscii, sizing: sizing}
}

func NewKeyUnicode(sizing ident.Sizing) KeyTy {
	return KeyTy{kind: KeyUnicode, sizing: sizing}
}

func (k KeyTy) Kind() KeyKind { return k.kind }

// ID commits KeyTy's shape the same way a Ty variant does: a discriminant
// byte followed by the variant's own body, so a KeyTy participating as a
// Map's key contributes deterministically to the enclosing Map's SemId.
func (k KeyTy) ID() semid.ID {
	h := semid.NewHasher()
	h.WriteByte(byte(k.kind))
	switch k.kind {
	case KeyPrimitive:
		h.WriteByte(byte(k.primitive))
	case KeyArray:
		h.WriteByte(byte(k.arrayElem))
		h.WriteU16(k.arrayLen)
	case KeyAscii, KeyUnicode:
		h.WriteSizing(k.sizing)
	}
	return h.Sum()
}

// Less defines the total order over KeyTy descriptors required so a
// TypeLib's own bookkeeping (e.g. sorting a Struct's fields, deduplicating
// Map declarations) is deterministic; it says nothing about how two actual
// encoded values of this key type compare, which is the encoder's concern.
func (k KeyTy) Less(o KeyTy) bool {
	if k.kind != o.kind {
		return k.kind < o.kind
	}
	switch k.kind {
	case KeyPrimitive:
		return k.primitive < o.primitive
	case KeyArray:
		if k.arrayElem != o.arrayElem {
			return k.arrayElem < o.arrayElem
		}
		return k.arrayLen < o.arrayLen
	default:
		if k.sizing.Min != o.sizing.Min {
			return k.sizing.Min < o.sizing.Min
		}
		return k.sizing.Max < o.sizing.Max
	}
}

func (k KeyTy) String() string {
	switch k.kind {
	case KeyPrimitive:
		return k.primitive.String()
	case KeyArray:
		return k.arrayElem.String() + "[" + strconv.Itoa(int(k.arrayLen)) + "]"
	case KeyAscii:
		return "Ascii" + k.sizing.String()
	default:
		return "Unicode" + k.sizing.String()
	}
}
