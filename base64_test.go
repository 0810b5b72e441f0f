package main

import (
	"testing"

	"github.com/wgtools/wvk/internal/assert"
	"github.com/wgtools/wvk/internal/require"
)

func TestDecodeEncodeKeyRoundTrip(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i * 7)
	}
	s := encodeKey(b)
	require.Equal(t, 44, len(s))

	got, err := decodeKey(s)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestDecodeKeyRejectsWrongLength(t *testing.T) {
	_, err := decodeKey("AAAA")
	assert.True(t, err != nil)
}

func TestDecodeKeyRejectsBadPadding(t *testing.T) {
	_, err := decodeKey("====" + string(make([]byte, 40)))
	assert.True(t, err != nil)
}

func TestPrefixDescriptorByteAligned(t *testing.T) {
	d, err := newPrefixDescriptor("ABCD")
	require.NoError(t, err)
	require.Equal(t, 24, d.bits)

	full, _, err := decodePrefixBits("ABCD")
	require.NoError(t, err)

	test := d.test()
	candidate := append(append([]byte{}, full...), 0, 0, 0, 0, 0, 0, 0, 0)
	assert.True(t, test(candidate))

	candidate[2] ^= 0x01
	assert.False(t, test(candidate))
}

func TestPrefixDescriptorSubByteAligned(t *testing.T) {
	d, err := newPrefixDescriptor("Z")
	require.NoError(t, err)
	require.Equal(t, 6, d.bits)

	full, _, err := decodePrefixBits("Z")
	require.NoError(t, err)

	test := d.test()

	match := make([]byte, 2)
	match[0] = full[0]
	assert.True(t, test(match))

	mismatch := make([]byte, 2)
	mismatch[0] = full[0] ^ 0x04 // flip a bit within the 6-bit window
	assert.False(t, test(mismatch))
}

func TestNewPrefixDescriptorRejectsLength(t *testing.T) {
	_, err := newPrefixDescriptor("")
	assert.True(t, err != nil)

	_, err = newPrefixDescriptor("01234567890")
	assert.True(t, err != nil)
}
