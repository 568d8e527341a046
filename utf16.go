package runecodec

// EncodeUTF16 converts a code-point sequence to 16-bit code units. Code
// points below 0x10000 emit one unit; supplementary code points emit a
// high/low surrogate pair. A surrogate or out-of-range code point hits
// the error policy with ErrRune.
func (c *Codec) EncodeUTF16(rs []rune) ([]uint16, error) {
	out := make([]uint16, 0, len(rs))
	for _, r := range rs {
		switch {
		case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
			out = append(out, uint16(r))
		case surrSelf <= r && r <= MaxRune:
			v := r - surrSelf
			out = append(out, uint16(surr1+(v>>10)), uint16(surr2+(v&0x3FF)))
		default:
			if c.policy == Fail {
				return nil, ErrRune
			}
			out = append(out, uint16(RuneError))
		}
	}
	return out, nil
}

// DecodeUTF16 converts a sequence of 16-bit code units to code points.
// A high surrogate must be followed by a low surrogate; a lone or
// mismatched surrogate hits the error policy with ErrUTF16.
func (c *Codec) DecodeUTF16(u []uint16) ([]rune, error) {
	out := make([]rune, 0, len(u))
	for i := 0; i < len(u); i++ {
		switch v := u[i]; {
		case v < surr1, surr3 <= v:
			out = append(out, rune(v))
		case v < surr2:
			// high surrogate: the next unit must be a low surrogate
			if i+1 < len(u) && surr2 <= u[i+1] && u[i+1] < surr3 {
				i++
				out = append(out, ((rune(v)-surr1)<<10|rune(u[i]-surr2))+surrSelf)
				continue
			}
			if c.policy == Fail {
				return nil, ErrUTF16
			}
			out = append(out, RuneError)
		default:
			// low surrogate with no preceding high surrogate
			if c.policy == Fail {
				return nil, ErrUTF16
			}
			out = append(out, RuneError)
		}
	}
	return out, nil
}

// Widen converts a UTF-8 byte sequence directly to 16-bit code units.
// Malformed bytes follow the error policy of DecodeRune.
func (c *Codec) Widen(b []byte) ([]uint16, error) {
	rs, err := c.Decode(b)
	if err != nil {
		return nil, err
	}
	return c.EncodeUTF16(rs)
}

// Narrow converts a sequence of 16-bit code units directly to a UTF-8
// byte sequence. Lone surrogates follow the error policy of DecodeUTF16.
func (c *Codec) Narrow(u []uint16) ([]byte, error) {
	rs, err := c.DecodeUTF16(u)
	if err != nil {
		return nil, err
	}
	return c.AppendRunes(make([]byte, 0, len(u)), rs)
}

// EncodeUTF16 converts code points to 16-bit units using the default
// Replace policy.
func EncodeUTF16(rs []rune) []uint16 {
	out, _ := defaultCodec.EncodeUTF16(rs)
	return out
}

// DecodeUTF16 converts 16-bit units to code points using the default
// Replace policy.
func DecodeUTF16(u []uint16) []rune {
	out, _ := defaultCodec.DecodeUTF16(u)
	return out
}

// Widen converts UTF-8 bytes to 16-bit units using the default Replace
// policy.
func Widen(b []byte) []uint16 {
	out, _ := defaultCodec.Widen(b)
	return out
}

// Narrow converts 16-bit units to UTF-8 bytes using the default Replace
// policy.
func Narrow(u []uint16) []byte {
	out, _ := defaultCodec.Narrow(u)
	return out
}
