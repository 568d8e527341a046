package runecodec

// decodeLast is the core backward decoder. It decodes the code point
// ending just before pos and returns it with the offset of its first
// byte. lower is the offset the scan must not cross.
//
// Unlike decode, a failed backward scan reports the original pos: a
// caller iterating backward has not yet visited the bytes before the
// malformed span, so there is nothing to resynchronize past.
func decodeLast(b []byte, pos, lower int) (r rune, start int, ok bool) {
	if lower < 0 || pos <= lower || pos > len(b) {
		return RuneError, pos, false
	}

	// Step backward over continuation bytes, accumulating their low six
	// bits. At most three steps; the lower bound stops the scan early.
	i := pos - 1
	c := b[i]
	cont := 0
	for c&0xC0 == 0x80 && cont < 3 && i > lower {
		r |= rune(c&0x3F) << (cont * 6)
		cont++
		i--
		c = b[i]
	}

	// The byte the scan stopped at must be a lead byte promising exactly
	// the number of continuation bytes consumed.
	switch {
	case cont == 3 && c&0xF8 == 0xF0:
		r |= rune(c&0x07) << 18
	case cont == 2 && c&0xF0 == 0xE0:
		r |= rune(c&0x0F) << 12
	case cont == 1 && c&0xE0 == 0xC0:
		r |= rune(c&0x3F) << 6
	case cont == 0 && c&0x80 == 0:
		r = rune(c)
	default:
		return RuneError, pos, false
	}

	switch {
	case surr1 <= r && r < surr3:
		return RuneError, pos, false
	case cont > 0 && r < 0x80, cont > 1 && r < 0x800, cont > 2 && r < surrSelf:
		// overlong encoding
		return RuneError, pos, false
	case r > MaxRune:
		return RuneError, pos, false
	}
	return r, i, true
}

// DecodeLastRune decodes the code point ending just before byte offset
// pos of b, scanning backward no further than lower. It returns the code
// point and the offset of its first byte.
//
// On malformed input the returned offset equals pos (the cursor never
// moves on a failed backward decode). Under Replace the returned code
// point is RuneError with a nil error; under Fail it is RuneError with
// ErrUTF8.
func (c *Codec) DecodeLastRune(b []byte, pos, lower int) (rune, int, error) {
	r, start, ok := decodeLast(b, pos, lower)
	if !ok && c.policy == Fail {
		return r, start, ErrUTF8
	}
	return r, start, nil
}

// DecodeLastRune decodes the code point ending just before byte offset
// pos of b using the default Replace policy.
func DecodeLastRune(b []byte, pos, lower int) (rune, int) {
	r, start, _ := defaultCodec.DecodeLastRune(b, pos, lower)
	return r, start
}
