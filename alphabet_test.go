// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z85

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetCompleteness(t *testing.T) {
	require.Len(t, alphabet, 85)

	seen := make(map[byte]bool)
	for i, char := range []byte(alphabet) {
		assert.False(t, seen[char], "duplicate character %q at position %d", char, i)
		seen[char] = true
		assert.True(t, char > ' ' && char < 0x7F, "character %q is not printable", char)
	}
}

func TestDecoderTable(t *testing.T) {
	for i := 0; i < len(alphabet); i++ {
		assert.Equal(t, byte(i), decoder[alphabet[i]], "decoder mismatch for %q", alphabet[i])
	}

	for b := 0; b < 256; b++ {
		if strings.IndexByte(alphabet, byte(b)) >= 0 {
			continue
		}
		assert.Equal(t, byte(Invalid), decoder[b], "byte 0x%02x should be invalid", b)
	}
}

func TestDecoderRejectsLookalikes(t *testing.T) {
	for _, c := range []byte(" \t\r\n\"',;\\_`|~\x00\x7f\x80\xff") {
		assert.Equal(t, byte(Invalid), decoder[c], "byte 0x%02x", c)
	}
}
