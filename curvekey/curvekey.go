// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curvekey handles Curve25519 key pairs in the Z85 text form used
// by the ZeroMQ CURVE mechanism, as specified by:
// https://rfc.zeromq.org/spec/26/CURVEZMQ/
package curvekey

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"github.com/destiny/z85"
)

const (
	KeySize   = 32 // Curve25519 key size
	Z85KeyLen = 40 // Z85 text length of a key
)

var ErrInvalidKey = errors.New("curvekey: invalid key")

// KeyPair represents a Curve25519 key pair
type KeyPair struct {
	Public [KeySize]byte
	Secret [KeySize]byte
}

// GenerateKeyPair generates a new key pair using randomness from r.
func GenerateKeyPair(r io.Reader) (*KeyPair, error) {
	public, private, err := box.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("curvekey: failed to generate key pair: %w", err)
	}

	return &KeyPair{
		Public: *public,
		Secret: *private,
	}, nil
}

// NewKeyPairFromZ85 creates a key pair from Z85-encoded public and secret keys
func NewKeyPairFromZ85(publicZ85, secretZ85 string) (*KeyPair, error) {
	public, err := ParseKeyZ85(publicZ85)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	secret, err := ParseKeyZ85(secretZ85)
	if err != nil {
		return nil, fmt.Errorf("secret key: %w", err)
	}
	return &KeyPair{Public: public, Secret: secret}, nil
}

// NewKeyPairFromHex creates a key pair from hex-encoded public and secret keys
func NewKeyPairFromHex(publicHex, secretHex string) (*KeyPair, error) {
	public, err := parseKeyHex(publicHex)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	secret, err := parseKeyHex(secretHex)
	if err != nil {
		return nil, fmt.Errorf("secret key: %w", err)
	}
	return &KeyPair{Public: public, Secret: secret}, nil
}

// PublicKeyZ85 returns the public key encoded as Z85 string
func (kp *KeyPair) PublicKeyZ85() string {
	return z85.EncodeToString(kp.Public[:])
}

// SecretKeyZ85 returns the secret key encoded as Z85 string
func (kp *KeyPair) SecretKeyZ85() string {
	return z85.EncodeToString(kp.Secret[:])
}

// PublicKeyHex returns the public key encoded as hex string
func (kp *KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(kp.Public[:])
}

// SecretKeyHex returns the secret key encoded as hex string
func (kp *KeyPair) SecretKeyHex() string {
	return hex.EncodeToString(kp.Secret[:])
}

// SharedKey precomputes the box key shared between kp and the peer's
// public key.
func (kp *KeyPair) SharedKey(peer [KeySize]byte) [KeySize]byte {
	var shared [KeySize]byte
	box.Precompute(&shared, &peer, &kp.Secret)
	return shared
}

// ParseKeyZ85 decodes a 40-character Z85 key. Keys are always aligned, so
// padded forms are rejected, and decoding is strict.
func ParseKeyZ85(s string) ([KeySize]byte, error) {
	var key [KeySize]byte
	if len(s) != Z85KeyLen {
		return key, fmt.Errorf("%w: Z85 key must be %d characters, got %d", ErrInvalidKey, Z85KeyLen, len(s))
	}
	if _, err := z85.StrictCodec.Decode(key[:], []byte(s)); err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return key, nil
}

// ValidateZ85Key validates that a string is a valid Z85-encoded CURVE key
func ValidateZ85Key(keyZ85 string) error {
	if len(keyZ85) != Z85KeyLen {
		return fmt.Errorf("%w: Z85 key must be %d characters, got %d", ErrInvalidKey, Z85KeyLen, len(keyZ85))
	}
	if err := z85.StrictCodec.ValidateString(keyZ85); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}

func parseKeyHex(s string) ([KeySize]byte, error) {
	var key [KeySize]byte
	b, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(b) != KeySize {
		return key, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidKey, KeySize, len(b))
	}
	copy(key[:], b)
	return key, nil
}
