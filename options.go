// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

// Codec encodes and decodes Z85 text. The zero value is a lenient codec.
// A Codec is immutable once built and may be shared between goroutines.
type Codec struct {
	strict bool
}

// Option configures some aspect of a Codec.
type Option func(c *Codec)

// WithStrict configures a Codec to reject encodings the encoder never
// emits: a '0' padding marker, and a final frame whose discarded padding
// octets are not zero. Both are reported as ErrNonCanonical.
//
// With strict decoding the codec is a bijection between byte sequences
// and the strings it accepts.
func WithStrict(strict bool) Option {
	return func(c *Codec) {
		c.strict = strict
	}
}

// NewCodec returns a Codec configured with opts.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Strict reports whether c rejects non-canonical encodings.
func (c *Codec) Strict() bool {
	return c.strict
}
