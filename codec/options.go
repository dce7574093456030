package codec

import "math"

// NoLimit is the default maximum: decoders accept any count or length the
// stream can back.
const NoLimit = math.MaxUint64

type options struct {
	maxLength uint64
}

// Option configures a codec.
type Option func(*options)

// WithMaxLength sets the largest count (slices) or byte length (strings,
// bytes) a decoder accepts. Larger values fail with an overflow status.
func WithMaxLength(n uint64) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

func buildOptions(opts []Option) options {
	o := options{maxLength: NoLimit}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
