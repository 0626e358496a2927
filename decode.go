// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"encoding/binary"
	"fmt"
)

// layout describes a Z85 input once its length and marker are checked.
type layout struct {
	frames  int // text frames, the padded one included
	padding int // zero octets added to the final frame
	n       int // decoded length
}

// DecodeString returns the bytes represented by the Z85 string s.
// On error no output is returned.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return decodeAlloc(s, c.strict)
}

// DecodeBytes returns the bytes represented by the Z85 text in src.
func (c *Codec) DecodeBytes(src []byte) ([]byte, error) {
	return decodeAlloc(src, c.strict)
}

// Decode decodes src using Z85 encoding into dst and returns the number of
// bytes written. At most DecodedLen(len(src)) bytes are needed.
// On error the part of dst that decoding would have filled is zeroed.
func (c *Codec) Decode(dst, src []byte) (int, error) {
	l, err := inspect(src, c.strict)
	if err != nil {
		return 0, err
	}
	if len(dst) < l.n {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrShortBuffer, l.n, len(dst))
	}
	if err := decode(dst[:l.n], src, l, c.strict); err != nil {
		clear(dst[:l.n])
		return 0, err
	}
	return l.n, nil
}

// ValidateString checks if s is a valid Z85 encoded string,
// without producing the decoded bytes.
func (c *Codec) ValidateString(s string) error {
	l, err := inspect(s, c.strict)
	if err != nil {
		return err
	}
	for f := 0; f < l.frames; f++ {
		v, err := decodeFrame(s, f*5)
		if err != nil {
			return err
		}
		if f == l.frames-1 {
			if err := checkPadding(v, l, c.strict); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeAlloc[T byteString](src T, strict bool) ([]byte, error) {
	l, err := inspect(src, strict)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, l.n)
	if err := decode(dst, src, l, strict); err != nil {
		return nil, err
	}
	return dst, nil
}

// inspect checks the length of src and its padding marker.
func inspect[T byteString](src T, strict bool) (layout, error) {
	n := len(src)
	if n == 0 {
		return layout{}, nil
	}
	if n < 5 {
		return layout{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	l := layout{frames: n / 5}
	switch n % 5 {
	case 0:
	case 1:
		m := decoder[src[n-1]]
		if m > 3 {
			return layout{}, fmt.Errorf("%w: padding marker %q at position %d", ErrInvalidChar, src[n-1], n-1)
		}
		if m == 0 && strict {
			return layout{}, fmt.Errorf("%w: zero padding marker", ErrNonCanonical)
		}
		l.padding = int(m)
	default:
		return layout{}, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	l.n = l.frames*4 - l.padding
	return l, nil
}

// decode writes the l.n decoded bytes of src into dst.
func decode[T byteString](dst []byte, src T, l layout, strict bool) error {
	if l.frames == 0 {
		return nil
	}

	di := 0
	for f := 0; f < l.frames-1; f++ {
		v, err := decodeFrame(src, f*5)
		if err != nil {
			return err
		}
		binary.BigEndian.PutUint32(dst[di:di+4], v)
		di += 4
	}

	v, err := decodeFrame(src, (l.frames-1)*5)
	if err != nil {
		return err
	}
	if err := checkPadding(v, l, strict); err != nil {
		return err
	}
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], v)
	copy(dst[di:], tail[:4-l.padding])
	return nil
}

// checkPadding verifies, in strict mode, that the octets dropped from the
// final frame are zero.
func checkPadding(v uint32, l layout, strict bool) error {
	if !strict || l.padding == 0 {
		return nil
	}
	mask := uint32(1)<<(8*l.padding) - 1
	if v&mask != 0 {
		return fmt.Errorf("%w: non-zero padding in final frame", ErrNonCanonical)
	}
	return nil
}
