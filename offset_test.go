package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AlexanderYastrebov/vanity25519/field"
	"github.com/wgtools/wvk/internal/assert"
	"github.com/wgtools/wvk/internal/require"
)

func mustPrefix(t *testing.T, s string) *prefixDescriptor {
	t.Helper()
	d, err := newPrefixDescriptor(s)
	require.NoError(t, err)
	return d
}

// TestApplyOffsetFindsVerifiedDirection derives a prefix from the "plus"
// direction s+n*k directly, then checks applyOffset recovers that same
// private key.
func TestApplyOffsetFindsVerifiedDirection(t *testing.T) {
	priv := testPrivateKey()
	const n = 42

	s, err := new(field.Element).SetBytes(priv)
	require.NoError(t, err)
	so := fieldElementFromUint64(n)
	so.Mult32(so, scalarOffsetK)
	sp := new(field.Element).Add(s, so)

	pub, err := publicKeyFor(sp.Bytes())
	require.NoError(t, err)
	prefix := mustPrefix(t, encodeKey(pub)[:6])

	got, err := applyOffset(priv, n, prefix)
	require.NoError(t, err)
	assert.Equal(t, sp.Bytes(), got)
}

func TestApplyOffsetMismatch(t *testing.T) {
	priv := testPrivateKey()
	_, err := applyOffset(priv, 1, mustPrefix(t, "//////////"))
	assert.True(t, err == errPrefixMismatch)
}

func TestReadPrivateKeyReadsExactLength(t *testing.T) {
	priv := testPrivateKey()
	encoded := encodeKey(priv)

	r := strings.NewReader(encoded + "\n")
	got, err := readPrivateKey(r)
	require.NoError(t, err)
	assert.Equal(t, priv, got)

	remaining, err := (&bytes.Buffer{}).ReadFrom(r)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}
