package semid

import (
	"crypto/sha256"
	"strings"

	base58 "github.com/jbenet/go-base58"
	"github.com/pkg/errors"
)

// ErrBaid58Parse is returned when a textual identifier fails to decode,
// spec.md §7's Baid58Parse error kind.
type ErrBaid58Parse struct {
	Input string
	Cause error
}

func (e *ErrBaid58Parse) Error() string {
	return errors.Wrapf(e.Cause, "baid58: cannot parse %q", e.Input).Error()
}
func (e *ErrBaid58Parse) Unwrap() error { return e.Cause }

// checksumLen is the number of trailing checksum bytes appended to the
// payload before base58 encoding, following the base58check shape common
// to the pack's other content-id encodings. spec.md §6.2 pins the "stl:"
// human-readable-identifier prefix and the baid58 name but not a
// checksum algorithm; see DESIGN.md for this resolution.
const checksumLen = 4

// ToBaid58 renders a 32-byte payload with human-readable-identifier hri
// as "<hri>:<base58(payload||checksum)>".
func ToBaid58(hri string, payload [Size]byte) string {
	full := append(append([]byte{}, payload[:]...), checksum(hri, payload)...)
	return hri + ":" + base58.Encode(full)
}

// FromBaid58 parses a baid58 string, accepting both "<hri>:<payload>" and
// a bare "<payload>" (the caller's expected hri is assumed when no prefix
// is present) — spec.md §6.2 "parser accepts both with and without the
// stl: prefix".
func FromBaid58(hri, s string) ([Size]byte, error) {
	body := s
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		prefix := s[:idx]
		if prefix != hri {
			return [Size]byte{}, &ErrBaid58Parse{Input: s, Cause: errors.Errorf("unexpected hri %q, want %q", prefix, hri)}
		}
		body = s[idx+1:]
	}
	raw := base58.Decode(body)
	if len(raw) != Size+checksumLen {
		return [Size]byte{}, &ErrBaid58Parse{Input: s, Cause: errors.Errorf("decoded length %d, want %d", len(raw), Size+checksumLen)}
	}
	var payload [Size]byte
	copy(payload[:], raw[:Size])
	want := checksum(hri, payload)
	got := raw[Size:]
	for i := range want {
		if want[i] != got[i] {
			return [Size]byte{}, &ErrBaid58Parse{Input: s, Cause: errors.New("checksum mismatch")}
		}
	}
	return payload, nil
}

func checksum(hri string, payload [Size]byte) []byte {
	h := sha256.New()
	h.Write([]byte(hri))
	h.Write(payload[:])
	first := h.Sum(nil)
	second := sha256.Sum256(first)
	return second[:checksumLen]
}

// HRISemID and HRILibID are the human-readable identifiers for the two
// id kinds, both "stl" per spec.md §6.2 (a SemId and a LibId decode to
// the same namespace; callers distinguish by context, as the original
// crate does via separate Rust newtypes sharing one HRI).
const (
	HRISemID = "stl"
	HRILibID = "stl"
)

// Baid58 renders a SemId/LibId-shaped ID in baid58 form.
func (id ID) Baid58(hri string) string { return ToBaid58(hri, id) }

// ParseBaid58 parses a baid58 string into an ID.
func ParseBaid58(hri, s string) (ID, error) {
	payload, err := FromBaid58(hri, s)
	if err != nil {
		return ID{}, err
	}
	return ID(payload), nil
}
