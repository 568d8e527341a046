package runecodec

// decode is the core forward decoder. It decodes the code point starting
// at pos and returns it with the offset of the following code point.
// Failure is reported through ok rather than the error policy so that
// validity scans stay policy independent.
//
// On failure the returned offset is still advanced past the malformed
// bytes: a misplaced continuation byte and every contiguous high-bit byte
// after it are skipped as one malformed span, so forward iteration always
// makes progress and resynchronizes at the next candidate lead byte.
func decode(b []byte, pos int) (r rune, next int, ok bool) {
	if pos < 0 || pos >= len(b) {
		return RuneError, pos, false
	}

	c := b[pos]
	switch {
	case c&0x80 == 0:
		// 1-byte code point
		return rune(c), pos + 1, true

	case c&0xC0 == 0x80:
		// continuation byte where a lead byte was expected
		pos++
		for pos < len(b) && b[pos]&0x80 == 0x80 {
			pos++
		}
		return RuneError, pos, false
	}

	var cont int
	switch {
	case c&0xE0 == 0xC0:
		cont = 1
		r = rune(c & 0x1F)
	case c&0xF0 == 0xE0:
		cont = 2
		r = rune(c & 0x0F)
	case c&0xF8 == 0xF0:
		cont = 3
		r = rune(c & 0x07)
	default:
		// 11111xxx lead bytes cannot encode a valid code point
		pos++
		for pos < len(b) && b[pos]&0xC0 == 0x80 {
			pos++
		}
		return RuneError, pos, false
	}
	pos++

	var i int
	for ; i < cont && pos < len(b) && b[pos]&0xC0 == 0x80; i++ {
		r = r<<6 | rune(b[pos]&0x3F)
		pos++
	}

	switch {
	case i != cont:
		// short encoding: ran out of continuation bytes
		return RuneError, pos, false
	case surr1 <= r && r < surr3:
		// surrogates U+D800-U+DFFF are not code points
		return RuneError, pos, false
	case r < 0x80, cont > 1 && r < 0x800, cont > 2 && r < surrSelf:
		// overlong encoding
		return RuneError, pos, false
	case r > MaxRune:
		return RuneError, pos, false
	}
	return r, pos, true
}

// DecodeRune decodes the code point starting at byte offset pos of b and
// returns it together with the offset of the following code point.
//
// On malformed input the returned offset is advanced past the malformed
// bytes in both policies, so iteration always terminates. Under Replace
// the returned code point is RuneError with a nil error; under Fail it is
// RuneError with ErrUTF8. Decoding at pos == len(b) is malformed input
// with no bytes to skip.
func (c *Codec) DecodeRune(b []byte, pos int) (rune, int, error) {
	r, next, ok := decode(b, pos)
	if !ok && c.policy == Fail {
		return r, next, ErrUTF8
	}
	return r, next, nil
}

// DecodeRune decodes the code point starting at byte offset pos of b
// using the default Replace policy.
func DecodeRune(b []byte, pos int) (rune, int) {
	r, next, _ := defaultCodec.DecodeRune(b, pos)
	return r, next
}

// RuneAt returns the code point starting at byte offset pos of b, or
// RuneError if the bytes at pos are not a valid encoding.
func RuneAt(b []byte, pos int) rune {
	r, _, _ := decode(b, pos)
	return r
}
