// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil holds helpers shared by the tests of this module.
package testutil

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destiny/z85"
)

// Alphabet is the Z85 alphabet, in digit order.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ.-:+=^!/*?&<>()[]{}@%$#"

// RandomBytes returns n random bytes.
func RandomBytes(t testing.TB, n int) []byte {
	t.Helper()

	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err, "failed to generate random data")
	return b
}

// RequireRoundTrip encodes original with codec and checks every law the
// encoding must obey: planned length, alphabet closure, and that decoding
// returns the original bytes. It returns the encoding.
func RequireRoundTrip(t testing.TB, codec *z85.Codec, original []byte) string {
	t.Helper()

	encoded := codec.EncodeToString(original)
	require.Len(t, encoded, z85.Plan(len(original)).Len, "encoded length for %d bytes", len(original))
	AssertAlphabet(t, encoded)

	decoded, err := codec.DecodeString(encoded)
	require.NoError(t, err, "decoding %q", encoded)
	require.Equal(t, len(original), len(decoded))
	if len(original) > 0 {
		require.Equal(t, original, decoded)
	}

	require.NoError(t, codec.ValidateString(encoded))
	return encoded
}

// AssertAlphabet checks that every byte of s is a Z85 digit.
func AssertAlphabet(t testing.TB, s string) {
	t.Helper()

	for i := 0; i < len(s); i++ {
		assert.True(t, strings.IndexByte(Alphabet, s[i]) >= 0, "byte %q at position %d is not a Z85 digit", s[i], i)
	}
}
