// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"fmt"
	"math"
)

// encodeFrame writes the five digits of v to dst, most significant first.
// 2^32 < 85^5, so every 32-bit value fits.
func encodeFrame(dst []byte, v uint32) {
	_ = dst[4]
	dst[4] = alphabet[v%85]
	v /= 85
	dst[3] = alphabet[v%85]
	v /= 85
	dst[2] = alphabet[v%85]
	v /= 85
	dst[1] = alphabet[v%85]
	v /= 85
	dst[0] = alphabet[v]
}

// decodeFrame decodes the five digits of src starting at offset at.
// The sum is accumulated in 64 bits: five digits reach 85^5-1, which does
// not fit in a uint32 and would otherwise wrap silently.
func decodeFrame[T byteString](src T, at int) (uint32, error) {
	var v uint64
	for i := at; i < at+5; i++ {
		d := decoder[src[i]]
		if d == Invalid {
			return 0, fmt.Errorf("%w: character %q at position %d", ErrInvalidChar, src[i], i)
		}
		v = v*85 + uint64(d)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: frame at position %d", ErrFrameOverflow, at)
	}
	return uint32(v), nil
}
