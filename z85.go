// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package z85 provides ZeroMQ Base-85 Encoding as specified by:
// https://rfc.zeromq.org/spec/32/Z85/
//
// Inputs whose length is not a multiple of 4 are supported with a padding
// convention: the final binary frame is zero-filled and a single marker
// digit holding the number of added zero octets (1, 2 or 3) is appended.
// Aligned inputs encode exactly as RFC 32 prescribes, so the output
// interoperates with any other Z85 implementation.
package z85

import "errors"

var (
	ErrInvalidLength = errors.New("z85: invalid input length")
	ErrInvalidChar   = errors.New("z85: invalid character")
	ErrFrameOverflow = errors.New("z85: frame value overflows 32 bits")
	ErrShortBuffer   = errors.New("z85: destination buffer too small")
	ErrNonCanonical  = errors.New("z85: non-canonical encoding")
)

// byteString is satisfied by both text and binary input, so strings are
// decoded in place without a conversion copy.
type byteString interface {
	~string | ~[]byte
}

// StdCodec is the lenient codec used by the package-level functions.
// It accepts a trailing '0' marker and ignores the value of padding octets.
var StdCodec = NewCodec()

// StrictCodec only accepts encodings the encoder itself produces.
var StrictCodec = NewCodec(WithStrict(true))

// EncodeToString returns the Z85 encoding of src.
func EncodeToString(src []byte) string {
	return StdCodec.EncodeToString(src)
}

// Encode encodes src into dst, which must hold at least EncodedLen(len(src))
// bytes. It returns the number of bytes written.
func Encode(dst, src []byte) (int, error) {
	return StdCodec.Encode(dst, src)
}

// AppendEncode appends the Z85 encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	return StdCodec.AppendEncode(dst, src)
}

// DecodeString returns the bytes represented by the Z85 string s.
func DecodeString(s string) ([]byte, error) {
	return StdCodec.DecodeString(s)
}

// DecodeBytes returns the bytes represented by the Z85 text in src.
func DecodeBytes(src []byte) ([]byte, error) {
	return StdCodec.DecodeBytes(src)
}

// Decode decodes src into dst and returns the number of bytes written.
func Decode(dst, src []byte) (int, error) {
	return StdCodec.Decode(dst, src)
}

// ValidateString checks if s is a valid Z85 encoded string.
func ValidateString(s string) error {
	return StdCodec.ValidateString(s)
}
