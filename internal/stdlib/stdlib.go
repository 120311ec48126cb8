// Package stdlib builds "Std", the character-class library every strict
// type schema can depend on for its restricted string alphabets: Bool,
// U4, and the Ascii/Alpha/Dec/HexDec/AlphaNum family, each a restricted
// enumeration over one fixed slice of the byte range. Grounded on
// original_source/src/stl.rs's _std_stl(), which builds the same set via
// LibBuilder::new(...).transpile::<T>()...compile(); this port doesn't
// carry over the Rust reflection macros that one relies on; each class is
// assembled explicitly from its character set instead (see DESIGN.md).
package stdlib

import (
	"fmt"

	"github.com/strict-types/strict-types/internal/ident"
	"github.com/strict-types/strict-types/internal/typelib"
	"github.com/strict-types/strict-types/internal/types"
)

const (
	digits       = "0123456789"
	alphaCaps    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphaSmall   = "abcdefghijklmnopqrstuvwxyz"
	hexDecCaps   = "0123456789ABCDEF"
	hexDecSmall  = "0123456789abcdef"
	alphaNumDash = alphaCaps + alphaSmall + digits + "-"
	alphaNumLo   = alphaCaps + alphaSmall + digits + "_"
)

var alpha = alphaCaps + alphaSmall
var alphaNum = alpha + digits
var alphaCapsNum = alphaCaps + digits

// charVariantName renders one allowed character as a valid ident.Ident:
// letters name themselves, digits and punctuation get a stable prefixed
// spelling since a bare Ident must start with a letter (internal/ident).
func charVariantName(c byte) *ident.Ident {
	var s string
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		s = string(c)
	case c >= '0' && c <= '9':
		s = "D" + string(c)
	case c == '-':
		s = "Dash"
	case c == '_':
		s = "Lodash"
	default:
		s = fmt.Sprintf("Ch%02X", c)
	}
	id := ident.MustNew(s)
	return &id
}

// charClass builds an Enum type restricted to exactly the bytes in chars,
// ordered by their own byte value so the same alphabet always produces
// the same SemId.
func charClass(chars string) (types.Ty[typelib.DraftRef], error) {
	variants := make([]types.EnumVariant, len(chars))
	for i := 0; i < len(chars); i++ {
		variants[i] = types.EnumVariant{Ord: chars[i], Name: charVariantName(chars[i])}
	}
	return types.NewEnum[typelib.DraftRef](variants)
}

// mustCharClass panics on an invalid alphabet; every alphabet below is a
// compile-time constant, so a failure here can only mean this file itself
// built an invalid one.
func mustCharClass(chars string) types.Ty[typelib.DraftRef] {
	ty, err := charClass(chars)
	if err != nil {
		panic(err)
	}
	return ty
}

// Build assembles the Std library: Bool and U4 as bounded enums over the
// raw bit patterns they admit, then the Ascii/Alpha/Dec/HexDec/AlphaNum
// character-class family, each an Enum over its fixed alphabet.
func Build() (typelib.TypeLib, error) {
	b := typelib.NewBuilder(ident.MustNew("Std"))

	boolVariants, err := types.NewEnum[typelib.DraftRef]([]types.EnumVariant{
		{Ord: 0, Name: ptr("False")},
		{Ord: 1, Name: ptr("True")},
	})
	if err != nil {
		return typelib.TypeLib{}, err
	}
	b.Transpile(ident.MustNew("Bool"), boolVariants)

	u4Variants := make([]types.EnumVariant, 16)
	for i := 0; i < 16; i++ {
		u4Variants[i] = types.EnumVariant{Ord: uint8(i)}
	}
	u4, err := types.NewEnum[typelib.DraftRef](u4Variants)
	if err != nil {
		return typelib.TypeLib{}, err
	}
	b.Transpile(ident.MustNew("U4"), u4)

	classes := []struct {
		name  string
		chars string
	}{
		{"AsciiPrintable", asciiPrintable()},
		{"Alpha", alpha},
		{"AlphaCaps", alphaCaps},
		{"AlphaSmall", alphaSmall},
		{"Dec", digits},
		{"HexDecCaps", hexDecCaps},
		{"HexDecSmall", hexDecSmall},
		{"AlphaNum", alphaNum},
		{"AlphaCapsNum", alphaCapsNum},
		{"AlphaNumDash", alphaNumDash},
		{"AlphaNumLodash", alphaNumLo},
	}
	for _, c := range classes {
		b.Transpile(ident.MustNew(c.name), mustCharClass(c.chars))
	}

	return b.Build()
}

func asciiPrintable() string {
	s := make([]byte, 0, 95)
	for c := byte(0x20); c <= 0x7E; c++ {
		s = append(s, c)
	}
	return string(s)
}

func ptr(s string) *ident.Ident {
	id := ident.MustNew(s)
	return &id
}
