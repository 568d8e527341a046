package runeclass

import (
	"slices"

	"github.com/dshills/runecodec"
)

// spaceTab lists the code points with the Unicode White_Space property,
// in ascending order.
var spaceTab = []rune{
	0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0x85, 0xA0, 0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007,
	0x2008, 0x2009, 0x200A, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000,
}

// blankTab lists the Space_Separator (Zs) code points plus horizontal
// tab, in ascending order. Tab is included for compatibility with the
// single-byte isblank semantics.
var blankTab = []rune{
	0x09, 0x20, 0xA0, 0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005, 0x2006, 0x2007,
	0x2008, 0x2009, 0x200A, 0x202F, 0x205F, 0x3000,
}

// IsSpace reports whether r has the Unicode White_Space property.
func IsSpace(r rune) bool {
	_, found := slices.BinarySearch(spaceTab, r)
	return found
}

// IsBlank reports whether r is horizontal tab or a Space_Separator (Zs)
// code point.
func IsBlank(r rune) bool {
	_, found := slices.BinarySearch(blankTab, r)
	return found
}

// IsDigit reports whether r is a decimal digit (0-9).
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsAlpha reports whether r is an ASCII letter (A-Z or a-z).
func IsAlpha(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// IsAlnum reports whether r is an ASCII letter or a decimal digit.
func IsAlnum(r rune) bool {
	return IsDigit(r) || IsAlpha(r)
}

// IsXDigit reports whether r is a hexadecimal digit (0-9, A-F or a-f).
func IsXDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

// IsUpper reports whether r is an ASCII upper-case letter (A-Z).
func IsUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// IsLower reports whether r is an ASCII lower-case letter (a-z).
func IsLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// Cursor forms: each decodes the code point starting at byte offset pos
// of b, then tests it. A malformed encoding decodes to U+FFFD, which is
// in none of the classes.

// IsSpaceAt reports whether the code point at offset pos of b is white
// space.
func IsSpaceAt(b []byte, pos int) bool {
	return IsSpace(runecodec.RuneAt(b, pos))
}

// IsBlankAt reports whether the code point at offset pos of b is blank.
func IsBlankAt(b []byte, pos int) bool {
	return IsBlank(runecodec.RuneAt(b, pos))
}

// IsDigitAt reports whether the code point at offset pos of b is a
// decimal digit.
func IsDigitAt(b []byte, pos int) bool {
	return IsDigit(runecodec.RuneAt(b, pos))
}

// IsAlphaAt reports whether the code point at offset pos of b is an
// ASCII letter.
func IsAlphaAt(b []byte, pos int) bool {
	return IsAlpha(runecodec.RuneAt(b, pos))
}

// IsAlnumAt reports whether the code point at offset pos of b is an
// ASCII letter or digit.
func IsAlnumAt(b []byte, pos int) bool {
	return IsAlnum(runecodec.RuneAt(b, pos))
}

// IsXDigitAt reports whether the code point at offset pos of b is a
// hexadecimal digit.
func IsXDigitAt(b []byte, pos int) bool {
	return IsXDigit(runecodec.RuneAt(b, pos))
}

// IsUpperAt reports whether the code point at offset pos of b is an
// ASCII upper-case letter.
func IsUpperAt(b []byte, pos int) bool {
	return IsUpper(runecodec.RuneAt(b, pos))
}

// IsLowerAt reports whether the code point at offset pos of b is an
// ASCII lower-case letter.
func IsLowerAt(b []byte, pos int) bool {
	return IsLower(runecodec.RuneAt(b, pos))
}
