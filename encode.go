// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"encoding/binary"
	"fmt"
	"slices"
	"unsafe"
)

// EncodeToString returns the Z85 encoding of src. It never fails.
func (c *Codec) EncodeToString(src []byte) string {
	p := Plan(len(src))
	if p.Len == 0 {
		return ""
	}
	buf := make([]byte, p.Len)
	encode(buf, src, p)
	// buf is not referenced again, so the string may share it.
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

// Encode encodes src using Z85 encoding,
// writing EncodedLen(len(src)) bytes to dst.
func (c *Codec) Encode(dst, src []byte) (int, error) {
	p := Plan(len(src))
	if len(dst) < p.Len {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortBuffer, p.Len, len(dst))
	}
	encode(dst[:p.Len], src, p)
	return p.Len, nil
}

// AppendEncode appends the Z85 encoding of src to dst.
// dst and src must not overlap.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	p := Plan(len(src))
	dst = slices.Grow(dst, p.Len)
	n := len(dst)
	dst = dst[:n+p.Len]
	encode(dst[n:], src, p)
	return dst
}

// encode writes the encoding of src into dst, which is exactly p.Len long.
func encode(dst, src []byte, p Capacity) {
	di, si := 0, 0
	for f := 0; f < p.Frames; f++ {
		encodeFrame(dst[di:di+5], binary.BigEndian.Uint32(src[si:si+4]))
		si += 4
		di += 5
	}

	if p.Remainder > 0 {
		var tail [4]byte
		copy(tail[:], src[si:])
		encodeFrame(dst[di:di+5], binary.BigEndian.Uint32(tail[:]))
		dst[di+5] = alphabet[4-p.Remainder]
		di += 6
	}

	if di != p.Len {
		panic(fmt.Sprintf("z85: wrote %d bytes, planned %d", di, p.Len))
	}
}
