package runecodec

import (
	"errors"
	"testing"
)

func TestDecodeLastRuneBoundaries(t *testing.T) {
	for _, tt := range boundaryRunes {
		r, start, err := New().DecodeLastRune(tt.bytes, len(tt.bytes), 0)
		if err != nil {
			t.Errorf("DecodeLastRune(% X): unexpected error %v", tt.bytes, err)
		}
		if r != tt.r {
			t.Errorf("DecodeLastRune(% X) = %#x, want %#x", tt.bytes, r, tt.r)
		}
		if start != 0 {
			t.Errorf("DecodeLastRune(% X): start = %d, want 0", tt.bytes, start)
		}
	}
}

func TestDecodeLastRuneWalk(t *testing.T) {
	b := []byte("😃😎😛")
	want := []rune{'😛', '😎', '😃'}

	pos := len(b)
	for i, w := range want {
		r, start, err := New(WithFail()).DecodeLastRune(b, pos, 0)
		if err != nil {
			t.Fatalf("step %d: unexpected error %v", i, err)
		}
		if r != w {
			t.Fatalf("step %d = %q, want %q", i, r, w)
		}
		pos = start
	}
	if pos != 0 {
		t.Errorf("final cursor = %d, want 0", pos)
	}
}

// A failed backward decode must leave the cursor untouched, in contrast
// with the forward decoder which skips the malformed span.
func TestDecodeLastRuneMalformed(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		pos   int
		lower int
	}{
		{"bare continuation", []byte{0x80}, 1, 0},
		{"continuation run", []byte{0x80, 0x80, 0x80, 0x80}, 4, 0},
		{"lead byte promises too much", []byte{0xF0, 0x82, 0xAC}, 3, 0},
		{"lead byte promises too little", []byte{0xC2, 0x82, 0x82}, 3, 0},
		{"encoded surrogate", []byte{0xED, 0xA0, 0x80}, 3, 0},
		{"overlong euro", []byte{0xF0, 0x82, 0x82, 0xAC}, 4, 0},
		{"above max rune", []byte{0xF4, 0x90, 0x80, 0x80}, 4, 0},
		{"lower bound cuts sequence", []byte{0xF0, 0x90, 0x80, 0x80}, 4, 2},
		{"at lower bound", []byte("ab"), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, start, err := New().DecodeLastRune(tt.in, tt.pos, tt.lower)
			if err != nil {
				t.Fatalf("Replace policy returned error %v", err)
			}
			if r != RuneError {
				t.Errorf("got %#x, want RuneError", r)
			}
			if start != tt.pos {
				t.Errorf("cursor moved: start = %d, want %d", start, tt.pos)
			}

			_, start, err = New(WithFail()).DecodeLastRune(tt.in, tt.pos, tt.lower)
			if !errors.Is(err, ErrUTF8) {
				t.Errorf("Fail policy error = %v, want ErrUTF8", err)
			}
			if start != tt.pos {
				t.Errorf("Fail policy moved cursor: start = %d, want %d", start, tt.pos)
			}
		})
	}
}

func TestDecodeLastRuneLowerBound(t *testing.T) {
	// Scanning backward over the euro sign with the lower bound at its
	// lead byte must succeed without reading before the bound.
	b := []byte("a€")

	r, start, err := New(WithFail()).DecodeLastRune(b, len(b), 1)
	if err != nil || r != '€' || start != 1 {
		t.Errorf("got (%#x, %d, %v), want (%#x, 1, nil)", r, start, err, '€')
	}

	// DEL is a valid single-byte code point.
	r, start, err = New(WithFail()).DecodeLastRune([]byte{0x7F}, 1, 0)
	if err != nil || r != 0x7F || start != 0 {
		t.Errorf("DEL: got (%#x, %d, %v), want (0x7f, 0, nil)", r, start, err)
	}
}
