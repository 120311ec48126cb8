package typelib

import "github.com/strict-types/strict-types/internal/semid"

// Id computes the library's LibId per spec.md §4.4:
//  1. the library's own name (length-prefixed).
//  2. the dependency set, count-prefixed (len_u8, since dependencies are
//     capped at 255), then each dependency's LibId alone in ascending
//     alias (map-key) order — name and version are deliberately not
//     committed here; identity reduces to content, per §4.4's own
//     rationale and the §9 open question against hashing in `ver`.
//  3. the declared types, count-prefixed as u16 (a library may hold far
//     more than 256), then each one's ty.id(Some(name)) in ascending
//     name order; the name itself isn't written separately because
//     Ty.ID already commits it when given Some(name).
//
// Shares the tagged-hash construction with SemId (internal/semid.Hasher):
// only the content committed differs.
func (l TypeLib) Id() semid.ID {
	h := semid.NewHasher()
	h.WriteName(l.Name)

	aliases := l.SortedDependencyAliases()
	h.WriteByte(byte(len(aliases)))
	for _, alias := range aliases {
		h.WriteID(l.Dependencies[alias].Id)
	}

	names := l.SortedTypeNames()
	h.WriteU16(uint16(len(names)))
	for _, name := range names {
		ty := l.Types[name]
		h.WriteID(ty.ID(&name))
	}

	return h.Sum()
}
