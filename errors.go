package runecodec

import "errors"

// Errors returned by codec operations under the Fail policy.
var (
	// ErrUTF8 indicates a malformed UTF-8 byte sequence: a bad or missing
	// continuation byte, an overlong encoding, an encoded surrogate, a code
	// point above MaxRune, or a truncated trailing sequence.
	ErrUTF8 = errors.New("invalid UTF-8 encoding")

	// ErrRune indicates a code point outside the valid domain was presented
	// for encoding (a surrogate, a negative value, or a value above MaxRune).
	ErrRune = errors.New("invalid code-point value")

	// ErrUTF16 indicates a lone or mismatched 16-bit surrogate unit.
	ErrUTF16 = errors.New("invalid UTF-16 encoding")
)
