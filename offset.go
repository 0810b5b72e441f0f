package main

import (
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/vanity25519/field"
)

// errPrefixMismatch is returned by applyOffset when neither s+n*k nor s-n*k
// derives a public key with the requested prefix.
var errPrefixMismatch = errors.New("prefix mismatch")

// publicKeyFor returns the Curve25519 (WireGuard) Montgomery public key for
// a clamped Curve25519 private key.
func publicKeyFor(privateKey []byte) ([]byte, error) {
	s, err := new(edwards25519.Scalar).SetBytesWithClamping(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return new(edwards25519.Point).ScalarBaseMult(s).BytesMontgomery(), nil
}

// applyOffset is the offset verifier: given the private scalar s
// that corresponds to the public key an earlier `offset` search matched
// against, and the offset n that search reported, it returns whichever of
// s+n*k or s-n*k (k = scalarOffsetK, the scalar used to build O = k*G)
// derives a public key with the given prefix.
func applyOffset(startPrivateKey []byte, offset uint64, prefix *prefixDescriptor) ([]byte, error) {
	s, err := new(field.Element).SetBytes(startPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	so := fieldElementFromUint64(offset)
	so.Mult32(so, scalarOffsetK)

	sp := new(field.Element).Add(s, so)
	sm := new(field.Element).Subtract(s, so)

	test := prefix.test()
	for _, candidate := range []*field.Element{sp, sm} {
		privateKey := candidate.Bytes()
		publicKey, err := publicKeyFor(privateKey)
		if err != nil {
			continue
		}
		if test(publicKey) {
			return privateKey, nil
		}
	}
	return nil, errPrefixMismatch
}

// readPrivateKey reads exactly the 44 base64 characters of a private scalar
// from r; any trailing newline is left unread and ignored.
func readPrivateKey(r io.Reader) ([]byte, error) {
	buf := make([]byte, keyChars)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("failed to read private key from stdin: %w", err)
	}
	return decodeKey(string(buf))
}

// fieldElementFromUint64 encodes n as a little-endian field element.
func fieldElementFromUint64(n uint64) *field.Element {
	var buf [32]byte
	for i := range 8 {
		buf[i] = byte(n >> (8 * i))
	}
	fe, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		panic(err) // n < 2^64 is always < p
	}
	return fe
}
