// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curvekey_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destiny/z85"
	"github.com/destiny/z85/curvekey"
	"github.com/destiny/z85/internal/testutil"
)

// Key from the RFC 32 test vector.
const (
	rfcKeyZ85 = "JTKVSB%%)wK0E.X)V>+}o?pNmC{O&4W4b!Ni{Lh6"
	rfcKeyHex = "8e0bdd697628b91d8f245587ee95c5b04d48963f79259877b49cd9063aead3b7"
)

func TestKeyPairEncodings(t *testing.T) {
	kp := testutil.NewTestKeyPair(t)
	testutil.ValidateKeyPair(t, kp.KeyPair)

	assert.Len(t, kp.PublicZ85, curvekey.Z85KeyLen)
	assert.Len(t, kp.SecretZ85, curvekey.Z85KeyLen)
	testutil.AssertAlphabet(t, kp.PublicZ85)

	fromZ85, err := curvekey.NewKeyPairFromZ85(kp.PublicZ85, kp.SecretZ85)
	require.NoError(t, err)
	assert.Equal(t, kp.KeyPair, fromZ85)

	fromHex, err := curvekey.NewKeyPairFromHex(kp.PublicHex, kp.SecretHex)
	require.NoError(t, err)
	assert.Equal(t, kp.KeyPair, fromHex)
}

func TestParseKeyZ85(t *testing.T) {
	key, err := curvekey.ParseKeyZ85(rfcKeyZ85)
	require.NoError(t, err)

	kp := &curvekey.KeyPair{Public: key}
	assert.Equal(t, rfcKeyHex, kp.PublicKeyHex())
	assert.Equal(t, rfcKeyZ85, kp.PublicKeyZ85())
}

func TestParseKeyZ85Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"short", "HelloWorld", nil},
		{"padded", z85.EncodeToString(bytes.Repeat([]byte{1}, 31)), nil},
		{"zero marker", rfcKeyZ85 + "0", nil},
		{"invalid char", "~" + rfcKeyZ85[1:], z85.ErrInvalidChar},
		{"overflow", "#####" + rfcKeyZ85[5:], z85.ErrFrameOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := curvekey.ParseKeyZ85(tt.input)
			assert.ErrorIs(t, err, curvekey.ErrInvalidKey)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}

			err = curvekey.ValidateZ85Key(tt.input)
			assert.ErrorIs(t, err, curvekey.ErrInvalidKey)
		})
	}

	assert.NoError(t, curvekey.ValidateZ85Key(rfcKeyZ85))
}

func TestNewKeyPairFromHexErrors(t *testing.T) {
	_, err := curvekey.NewKeyPairFromHex("zz", rfcKeyHex)
	assert.ErrorIs(t, err, curvekey.ErrInvalidKey)

	_, err = curvekey.NewKeyPairFromHex(rfcKeyHex, rfcKeyHex[:62])
	assert.ErrorIs(t, err, curvekey.ErrInvalidKey)
	assert.Contains(t, err.Error(), "secret key")
}

func TestSharedKey(t *testing.T) {
	alice := testutil.NewTestKeyPair(t)
	bob := testutil.NewTestKeyPair(t)

	// Parse the peers' public keys back from their text form.
	bobPublic, err := curvekey.ParseKeyZ85(bob.PublicZ85)
	require.NoError(t, err)
	alicePublic, err := curvekey.ParseKeyZ85(alice.PublicZ85)
	require.NoError(t, err)

	assert.Equal(t, alice.SharedKey(bobPublic), bob.SharedKey(alicePublic))
}

func TestGenerateKeyPairError(t *testing.T) {
	_, err := curvekey.GenerateKeyPair(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
}
