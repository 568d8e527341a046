// Package runecodec converts text between UTF-8 byte sequences and the
// fixed-width in-memory forms: 32-bit code points (Go runes) and 16-bit
// UTF-16 code units.
//
// Key features:
//   - Single code point encode/decode with explicit byte-offset cursors
//   - Backward decoding for reverse iteration over UTF-8 text
//   - Strict validation: overlong encodings, encoded surrogates, truncated
//     sequences and out-of-range values are all rejected
//   - Caller-selected error policy: substitute U+FFFD or fail fast
//   - UTF-16 surrogate-pair conversion for 16-bit code unit consumers
//
// Basic usage:
//
//	c := runecodec.New()
//	r, next, _ := c.DecodeRune(b, 0)       // first code point
//	r, start, _ := c.DecodeLastRune(b, len(b), 0) // last code point
//
//	strict := runecodec.New(runecodec.WithFail())
//	if _, err := strict.Decode(b); err != nil {
//		// b is not valid UTF-8
//	}
//
// Package-level functions mirror the Codec methods using the default
// Replace policy, so runecodec.Decode(b) never fails and substitutes
// U+FFFD for malformed input.
//
// A Codec performs no I/O and retains no references to its arguments;
// distinct goroutines should use distinct Codec values.
package runecodec
