package runecodec

// Code points in the valid domain and the surrogate ranges used by the
// encoding forms.
const (
	// RuneError is the replacement code point U+FFFD, substituted for
	// malformed input under the Replace policy.
	RuneError = '�'

	// MaxRune is the maximum valid Unicode code point.
	MaxRune = '\U0010FFFF'

	// UTFMax is the maximum number of bytes in a UTF-8 encoded code point.
	UTFMax = 4

	// 0xD800-0xDBFF encodes the high 10 bits of a surrogate pair,
	// 0xDC00-0xDFFF the low 10 bits; the pair value is those 20 bits
	// plus 0x10000.
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

// ErrorPolicy selects how codec operations handle malformed input.
type ErrorPolicy uint8

const (
	// Replace substitutes RuneError for malformed input and continues.
	Replace ErrorPolicy = iota

	// Fail aborts the operation and reports the specific error. Sequence
	// operations return no partial output under Fail.
	Fail
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Fail:
		return "fail"
	}
	return "unknown"
}

// Codec converts between UTF-8 byte sequences, runes and UTF-16 code
// units. The zero value is ready to use with the Replace policy.
type Codec struct {
	policy ErrorPolicy
}

// New creates a Codec configured by the given options.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Policy returns the codec's current error policy.
func (c *Codec) Policy() ErrorPolicy {
	return c.policy
}

// SetPolicy sets the error policy and returns the previous one, so a
// caller can scope a temporary override and restore it afterward.
func (c *Codec) SetPolicy(p ErrorPolicy) ErrorPolicy {
	prev := c.policy
	c.policy = p
	return prev
}

// defaultCodec backs the package-level convenience functions. It is never
// mutated, so those functions are safe for concurrent use.
var defaultCodec = &Codec{policy: Replace}
