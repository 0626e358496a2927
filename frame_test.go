// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 84, 85, 0x1f98ad00, 0x864FD26F, math.MaxUint32 - 1, math.MaxUint32}

	for _, v := range values {
		var buf [5]byte
		encodeFrame(buf[:], v)

		got, err := decodeFrame(buf[:], 0)
		require.NoError(t, err, "value 0x%08x", v)
		assert.Equal(t, v, got)

		got, err = decodeFrame(string(buf[:]), 0)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestEncodeFrameVectors(t *testing.T) {
	var buf [5]byte

	encodeFrame(buf[:], 0)
	assert.Equal(t, "00000", string(buf[:]))

	encodeFrame(buf[:], math.MaxUint32)
	assert.Equal(t, "%nSc0", string(buf[:]))

	encodeFrame(buf[:], 0x864FD26F)
	assert.Equal(t, "Hello", string(buf[:]))
}

func TestDecodeFrameOffset(t *testing.T) {
	v, err := decodeFrame("HelloWorld", 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xB559F75B), v)
}

func TestDecodeFrameErrors(t *testing.T) {
	_, err := decodeFrame("%nSc1", 0)
	assert.ErrorIs(t, err, ErrFrameOverflow)

	_, err = decodeFrame("#####", 0)
	assert.ErrorIs(t, err, ErrFrameOverflow)

	_, err = decodeFrame("Hel~o", 0)
	assert.ErrorIs(t, err, ErrInvalidChar)
	assert.Contains(t, err.Error(), "position 3")

	_, err = decodeFrame([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0)
	assert.ErrorIs(t, err, ErrInvalidChar)
}
