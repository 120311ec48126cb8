package types

import "github.com/pkg/errors"

// ConfinementError reports a cardinality bound violated while constructing
// a Ty: too few or too many variants/fields, an array of length zero, a
// sizing whose bounds fall outside what the container kind allows. spec.md
// §3.2's per-variant invariant table is entirely cardinality bounds, so one
// error shape covers all of them (mirrors internal/types/kind.go's single
// KindError struct in the teacher, rather than one error type per variant).
type ConfinementError struct {
	What string
	Got  int
	Min  int
	Max  int
}

func (e *ConfinementError) Error() string {
	return errors.Errorf("%s: got %d, want %d..=%d", e.What, e.Got, e.Min, e.Max).Error()
}

// DuplicateOrdError reports two fields/variants sharing the same ord.
type DuplicateOrdError struct {
	What string
	Ord  uint8
}

func (e *DuplicateOrdError) Error() string {
	return errors.Errorf("%s: duplicate ord %d", e.What, e.Ord).Error()
}

// DuplicateNameError reports two named fields/variants sharing a name.
type DuplicateNameError struct {
	What string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return errors.Errorf("%s: duplicate name %q", e.What, e.Name).Error()
}

// TooDeepError reports an inline nesting chain exceeding the reference-form
// ladder's compile-time depth bound, spec.md §3.3 invariant L6.
type TooDeepError struct {
	Limit int
}

func (e *TooDeepError) Error() string {
	return errors.Errorf("inline nesting exceeds depth limit %d", e.Limit).Error()
}

// PathError reports a Path traversal stepping into a position the type
// graph does not have: a struct/union field that doesn't exist, a
// container-shape step against a type that isn't that container, or an
// Extern reference this library has no body for. PathSoFar carries every step
// consumed up to and including the failing one, for diagnostics (spec.md
// §6.3, §7 / original_source/src/ast/path.rs).
type PathError struct {
	PathSoFar Path
	Step      Step
}

func (e *PathError) Error() string {
	return errors.Errorf("path %s: no subtype at step %s", e.PathSoFar, e.Step).Error()
}
