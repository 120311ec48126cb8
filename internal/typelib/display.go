package typelib

import (
	"fmt"
	"strings"

	"github.com/strict-types/strict-types/internal/semid"
)

// String renders the Dependency the way a library's own header cites it:
// "typelib <name>@<ver> <id>", <id> in its baid58 textual form — the
// dependency's full identity, not just the alias it's imported under
// (original_source/src/typelib/type_lib.rs's Display for Dependency).
func (d Dependency) String() string {
	return fmt.Sprintf("typelib %s@%s %s", d.Name, d.Ver, d.Id.Baid58(semid.HRILibID))
}

// String renders the library's full textual form per spec.md §6.1: a
// "typemod" header, a blank line, the dependency block (or a placeholder
// when there are none), another blank line, then one "data" line per
// declared type, each name padded to a fixed column so the "::"
// separators line up. Grounded on original_source/src/typelib/type_lib.rs's
// Display for TypeLib.
func (l TypeLib) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "typemod %s\n", l.Name)
	b.WriteString("\n")

	aliases := l.SortedDependencyAliases()
	if len(aliases) == 0 {
		b.WriteString("-- no dependencies\n")
	} else {
		for _, alias := range aliases {
			dep := l.Dependencies[alias]
			if alias != dep.Name {
				fmt.Fprintf(&b, "%s as %s\n", dep.String(), alias)
			} else {
				b.WriteString(dep.String())
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	for _, name := range l.SortedTypeNames() {
		ty := l.Types[name]
		fmt.Fprintf(&b, "data %-16s :: %s\n", name, ty.String())
	}
	return b.String()
}
