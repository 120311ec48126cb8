// Package semid implements the tagged-hash commitment scheme shared by
// SemId (per-type semantic identifiers) and LibId (per-library
// identifiers): a single 32-byte tag, pre-hashed once and fed twice as a
// domain-separation prefix (the BIP-340-style "tagged hash" construction),
// followed by the content bytes being committed to.
package semid

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/strict-types/strict-types/internal/ident"
)

// Size is the digest length in bytes for both SemId and LibId.
const Size = 32

// ID is a 32-byte tagged-hash digest: the underlying representation of
// both SemId and LibId (spec.md §4.3/§4.4 — they share one hash recipe
// and one tag, differing only in what's committed).
type ID [Size]byte

// Hex returns the lowercase hex encoding of the digest.
func (id ID) Hex() string { return hex.EncodeToString(id[:]) }

// Bytes returns a defensive copy of the underlying 32 bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, id[:])
	return b
}

func (id ID) IsZero() bool { return id == ID{} }

// LibIDTag is the domain-separation tag for type/library identifiers,
// spec.md §4.3: ASCII("urn:ubideco:strict-types:lib:v01").
const LibIDTag = "urn:ubideco:strict-types:lib:v01"

// tagPrefix is H(tag) computed once; every Hasher starts from two copies
// of it, per the tagged-hash construction spec.md §9 requires verbatim.
var tagPrefix = sha256.Sum256([]byte(LibIDTag))

// Hasher accumulates the content bytes of a single commitment (one Ty,
// one TypeLib) behind the doubled tag prefix, then yields the digest.
type Hasher struct {
	h interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
	}
}

// NewHasher starts a new commitment context: H(tag) || H(tag) || content.
func NewHasher() *Hasher {
	h := sha256.New()
	h.Write(tagPrefix[:])
	h.Write(tagPrefix[:])
	return &Hasher{h: h}
}

// Write feeds raw bytes into the commitment.
func (h *Hasher) Write(p []byte) {
	h.h.Write(p)
}

// WriteByte feeds a single byte (e.g. a variant discriminant).
func (h *Hasher) WriteByte(b byte) {
	h.h.Write([]byte{b})
}

// WriteU16 feeds a little-endian u16 (lengths, array sizes, Sizing bounds).
func (h *Hasher) WriteU16(v uint16) {
	h.h.Write([]byte{byte(v), byte(v >> 8)})
}

// WriteSizing feeds a Sizing as min then max, both LE u16 (spec.md §4.3
// List/Set/Map bodies).
func (h *Hasher) WriteSizing(s ident.Sizing) {
	h.WriteU16(s.Min)
	h.WriteU16(s.Max)
}

// WriteName feeds a length-prefixed identifier: one byte length, then the
// ASCII bytes. Used both for the optional top-level type name (spec.md
// §4.3 item 2) and for library/dependency names (§4.4 item 1).
func (h *Hasher) WriteName(name ident.Ident) {
	h.h.Write([]byte{byte(len(name))})
	h.h.Write([]byte(name))
}

// WriteOptName feeds a presence byte (1/0) followed by WriteName's output
// when present — spec.md §4.3's "name?" for enum variants and
// struct/union field names.
func (h *Hasher) WriteOptName(name *ident.Ident) {
	if name == nil {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	h.WriteName(*name)
}

// WriteID feeds a previously-computed 32-byte ID verbatim, e.g. a field's
// recursive SemId or a dependency's LibId.
func (h *Hasher) WriteID(id ID) {
	h.h.Write(id[:])
}


// Sum finalizes the commitment into an ID. The Hasher must not be reused
// afterwards.
func (h *Hasher) Sum() ID {
	var out ID
	copy(out[:], h.h.Sum(nil))
	return out
}
