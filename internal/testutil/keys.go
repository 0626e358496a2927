// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/destiny/z85/curvekey"
)

// TestKeyPair holds a test key pair with its text encodings
type TestKeyPair struct {
	*curvekey.KeyPair
	PublicZ85 string
	SecretZ85 string
	PublicHex string
	SecretHex string
}

// NewTestKeyPair generates a new test key pair with all encodings
func NewTestKeyPair(t testing.TB) *TestKeyPair {
	t.Helper()

	keyPair, err := curvekey.GenerateKeyPair(rand.Reader)
	require.NoError(t, err, "failed to generate test key pair")

	return &TestKeyPair{
		KeyPair:   keyPair,
		PublicZ85: keyPair.PublicKeyZ85(),
		SecretZ85: keyPair.SecretKeyZ85(),
		PublicHex: keyPair.PublicKeyHex(),
		SecretHex: keyPair.SecretKeyHex(),
	}
}

// ValidateKeyPair checks that neither key of kp is all zeros.
func ValidateKeyPair(t testing.TB, kp *curvekey.KeyPair) {
	t.Helper()

	var zeroKey [curvekey.KeySize]byte
	require.NotEqual(t, zeroKey, kp.Public, "public key is all zeros")
	require.NotEqual(t, zeroKey, kp.Secret, "secret key is all zeros")
}
