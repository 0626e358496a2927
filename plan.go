// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

// Capacity describes how n source bytes are laid out in their encoding.
type Capacity struct {
	Frames    int // full 4-byte frames
	Remainder int // trailing bytes, 0..3
	Len       int // encoded length in bytes
}

// Plan computes the encoding layout for n source bytes.
// Len is exactly the number of bytes the encoder writes.
func Plan(n int) Capacity {
	c := Capacity{
		Frames:    n / 4,
		Remainder: n % 4,
	}
	if c.Remainder == 0 {
		c.Len = c.Frames * 5
	} else {
		// one padded frame plus the marker
		c.Len = (c.Frames+1)*5 + 1
	}
	return c
}

// EncodedLen returns the Z85 encoded length for n source bytes.
func EncodedLen(n int) int {
	return Plan(n).Len
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of Z85-encoded data. The exact length also
// depends on the padding marker, if any.
func DecodedLen(n int) int {
	return n / 5 * 4
}
