package runecodec

// Decode converts a UTF-8 byte sequence to its code-point sequence,
// decoding repeatedly from the start of b until its end. Under Replace
// each malformed span contributes one RuneError entry and decoding
// continues after it; under Fail the first malformed span aborts with
// ErrUTF8 and no partial output is returned.
func (c *Codec) Decode(b []byte) ([]rune, error) {
	out := make([]rune, 0, Length(b))
	for pos := 0; pos < len(b); {
		r, next, err := c.DecodeRune(b, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		pos = next
	}
	return out, nil
}

// Decode converts a UTF-8 byte sequence to code points using the default
// Replace policy.
func Decode(b []byte) []rune {
	out, _ := defaultCodec.Decode(b)
	return out
}

// Valid reports whether b is entirely valid UTF-8, scanning with an
// internally forced Replace policy: it is true iff no code point would
// require replacement. It never fails and ignores any codec policy.
// A correctly encoded U+FFFD in the input is valid.
func Valid(b []byte) bool {
	for pos := 0; pos < len(b); {
		_, next, ok := decode(b, pos)
		if !ok {
			return false
		}
		pos = next
	}
	return true
}

// ValidAt reports whether the bytes at offset pos of b begin a valid
// UTF-8 encoding.
func ValidAt(b []byte, pos int) bool {
	_, _, ok := decode(b, pos)
	return ok
}

// Length returns the number of code points in b, counting lead bytes
// (bytes whose top two bits are not 10). It does not validate b; for a
// malformed sequence it returns the number of code points a Replace
// decode would produce only if each malformed span is a single lead byte.
func Length(b []byte) int {
	n := 0
	for _, c := range b {
		if c&0xC0 != 0x80 {
			n++
		}
	}
	return n
}
