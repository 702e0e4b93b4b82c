package htygo

import (
	"github.com/hupe1980/htygo/codec"
)

type options struct {
	codec  codec.Codec
	logger *Logger
}

// Option configures the DB returned by Open.
type Option func(*options)

// WithCodec configures the codec used for the trailer metadata.
//
// If nil is passed, codec.Default is used. Both built-in codecs emit
// interchangeable JSON, so this is a performance knob, not a format choice.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for all operations.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
