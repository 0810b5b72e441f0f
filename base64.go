package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// maxPrefixChars is the largest base64 prefix this tool will test: 10
// characters is 60 bits, the most that still fits a single uint64-wide
// comparison the way the original C tool packs it into one machine word.
const maxPrefixChars = 10

// keyChars is the length of a base64-encoded (padded) 32-byte Curve25519
// key, e.g. a WireGuard public or private key string.
const keyChars = 44

// decodeKey decodes a 44-character standard-base64 32-byte Curve25519 key.
// It is used for both public keys and private scalars: the encoding is
// identical, only the arithmetic meaning of the bytes differs.
func decodeKey(s string) ([]byte, error) {
	if len(s) != keyChars {
		return nil, fmt.Errorf("invalid key length, want %d base64 characters, got %d", keyChars, len(s))
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("invalid key length, want 32 bytes, got %d", len(b))
	}
	return b, nil
}

// encodeKey encodes a 32-byte Curve25519 key as standard base64.
func encodeKey(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// prefixDescriptor is the "Prefix descriptor" of the data model: the
// base64-decoded prefix bytes together with the number of significant
// leading bits they represent (6 per base64 character).
type prefixDescriptor struct {
	bytes []byte
	bits  int
}

// newPrefixDescriptor validates and decodes a 1-10 character base64 prefix.
func newPrefixDescriptor(prefix string) (*prefixDescriptor, error) {
	if len(prefix) == 0 {
		return nil, fmt.Errorf("empty prefix")
	}
	if len(prefix) > maxPrefixChars {
		return nil, fmt.Errorf("maximum supported prefix length is %d base64 characters (60 bits)", maxPrefixChars)
	}

	b, bits, err := decodePrefixBits(prefix)
	if err != nil {
		return nil, fmt.Errorf("invalid prefix: %w", err)
	}
	return &prefixDescriptor{bytes: b, bits: bits}, nil
}

// decodePrefixBits decodes a partial base64 string by padding it out to a
// full 4-character quantum with the zero-value character ("A") and decoding
// that, returning the decoded bytes and the number of bits the original,
// unpadded prefix represents.
func decodePrefixBits(prefix string) ([]byte, int, error) {
	const zeroChar = "A" // base64.StdEncoding.EncodeToString([]byte{0})[0:1]

	decodedBits := 6 * len(prefix)
	quantums := (len(prefix) + 3) / 4
	padded := prefix + strings.Repeat(zeroChar, quantums*4-len(prefix))

	buf := make([]byte, quantums*3)
	n, err := base64.StdEncoding.Decode(buf, []byte(padded))
	if err != nil {
		return nil, 0, err
	}
	return buf[:n], decodedBits, nil
}

// test returns a predicate that reports whether the leading d.bits bits of
// its argument equal d.bytes. Input shorter than the prefix never matches.
func (d *prefixDescriptor) test() func(b []byte) bool {
	bits := d.bits
	prefix := d.bytes

	if bits%8 == 0 {
		full := prefix[:bits/8]
		return func(b []byte) bool {
			return bytes.HasPrefix(b, full)
		}
	}

	prefixBytes := bits / 8
	shift := 8 - (bits % 8)
	tailByte := prefix[prefixBytes] >> shift
	full := prefix[:prefixBytes]

	return func(b []byte) bool {
		return len(b) > prefixBytes &&
			bytes.Equal(b[:prefixBytes], full) &&
			b[prefixBytes]>>shift == tailByte
	}
}
