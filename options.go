package runecodec

// Option is a functional option for configuring a Codec.
type Option func(*Codec)

// WithPolicy sets the codec's error policy.
func WithPolicy(p ErrorPolicy) Option {
	return func(c *Codec) {
		c.policy = p
	}
}

// WithReplace configures the codec to substitute RuneError (U+FFFD) for
// malformed input. This is the default.
func WithReplace() Option {
	return WithPolicy(Replace)
}

// WithFail configures the codec to report malformed input as an error.
func WithFail() Option {
	return WithPolicy(Fail)
}
