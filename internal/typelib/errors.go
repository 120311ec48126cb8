package typelib

import (
	"github.com/pkg/errors"

	"github.com/strict-types/strict-types/internal/ident"
)

// DuplicateNameError reports two Draft declarations claiming the same type
// name within one library, spec.md §4.5's index-build stage.
type DuplicateNameError struct {
	Name ident.TypeName
}

func (e *DuplicateNameError) Error() string {
	return errors.Errorf("typelib: duplicate type name %q", e.Name).Error()
}

// UnknownTypeError reports a Named reference to a type the library never
// declares.
type UnknownTypeError struct {
	Name ident.TypeName
}

func (e *UnknownTypeError) Error() string {
	return errors.Errorf("typelib: reference to unknown type %q", e.Name).Error()
}

// UnknownDependencyError reports an Extern reference through an alias the
// library never lists as a dependency.
type UnknownDependencyError struct {
	Alias ident.LibAlias
}

func (e *UnknownDependencyError) Error() string {
	return errors.Errorf("typelib: reference through unknown dependency alias %q", e.Alias).Error()
}
