// Package runeclass provides character classification predicates over
// decoded code points or UTF-8 byte-sequence cursors.
//
// The predicates are well-behaved for any input, unlike the C ctype
// family. Space and blank follow the Unicode White_Space and
// Space_Separator properties; the remaining classes keep the classic
// 7-bit ASCII semantics for compatibility with single-byte callers.
//
// Each predicate has a cursor form that decodes the code point at a byte
// offset first:
//
//	blanks := 0
//	for pos := 0; pos < len(b) && runeclass.IsSpaceAt(b, pos); {
//		blanks++
//		_, pos = runecodec.DecodeRune(b, pos)
//	}
package runeclass
