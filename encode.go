package runecodec

// runeErrorBytes is the UTF-8 encoding of RuneError.
var runeErrorBytes = []byte{0xEF, 0xBF, 0xBD}

// AppendRune appends the UTF-8 encoding of r to dst and returns the
// extended slice. A valid code point always appends its minimal-length
// encoding; a surrogate, negative or out-of-range value appends the
// encoding of RuneError under Replace, or returns dst unchanged with
// ErrRune under Fail. A partial encoding is never appended.
func (c *Codec) AppendRune(dst []byte, r rune) ([]byte, error) {
	switch {
	case 0 <= r && r < 0x80:
		return append(dst, byte(r)), nil
	case r < 0x800 && r >= 0:
		return append(dst, 0xC0|byte(r>>6), 0x80|byte(r)&0x3F), nil
	case surr1 <= r && r < surr3, r < 0:
		// surrogate or negative value: fall through to the error policy
	case r < surrSelf:
		return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F), nil
	case r <= MaxRune:
		return append(dst, 0xF0|byte(r>>18), 0x80|byte(r>>12)&0x3F, 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F), nil
	}
	if c.policy == Fail {
		return dst, ErrRune
	}
	return append(dst, runeErrorBytes...), nil
}

// AppendRunes appends the UTF-8 encoding of each code point of rs to dst
// in order. Under Fail the first invalid code point aborts the operation
// and dst is returned unchanged.
func (c *Codec) AppendRunes(dst []byte, rs []rune) ([]byte, error) {
	out := dst
	for _, r := range rs {
		var err error
		out, err = c.AppendRune(out, r)
		if err != nil {
			return dst, err
		}
	}
	return out, nil
}

// Encode converts a code-point sequence to its UTF-8 byte sequence.
// Under Fail the first invalid code point aborts with ErrRune and no
// partial output is returned.
func (c *Codec) Encode(rs []rune) ([]byte, error) {
	out, err := c.AppendRunes(make([]byte, 0, len(rs)), rs)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendRune appends the UTF-8 encoding of r to dst using the default
// Replace policy.
func AppendRune(dst []byte, r rune) []byte {
	out, _ := defaultCodec.AppendRune(dst, r)
	return out
}

// Encode converts a code-point sequence to UTF-8 using the default
// Replace policy.
func Encode(rs []rune) []byte {
	out, _ := defaultCodec.Encode(rs)
	return out
}

// RuneLen returns the number of bytes in the UTF-8 encoding of r, or -1
// if r is not a valid code point.
func RuneLen(r rune) int {
	switch {
	case r < 0:
		return -1
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case surr1 <= r && r < surr3:
		return -1
	case r < surrSelf:
		return 3
	case r <= MaxRune:
		return 4
	}
	return -1
}
