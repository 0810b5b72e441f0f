package main

import (
	"testing"

	"filippo.io/edwards25519"
	"github.com/wgtools/wvk/internal/assert"
	"github.com/wgtools/wvk/internal/require"
)

func testPrivateKey() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i*31 + 1)
	}
	return b
}

func TestDecodeMontgomeryPointRoundTrip(t *testing.T) {
	priv := testPrivateKey()
	pub, err := publicKeyFor(priv)
	require.NoError(t, err)

	p, err := decodeMontgomeryPoint(pub)
	require.NoError(t, err)

	var xy pointXY
	xy.fromPoint(p)
	assert.Equal(t, pub, xy.montgomeryU())
}

// Flipping the Edwards x-sign of the starting point must not change the
// Montgomery u-coordinate the search produces, since Montgomery(P) only
// depends on u, never on the Edwards sign bit lost at decode.
func TestDecodeMontgomeryPointSignAmbiguity(t *testing.T) {
	priv := testPrivateKey()
	pub, err := publicKeyFor(priv)
	require.NoError(t, err)

	p, err := decodeMontgomeryPoint(pub)
	require.NoError(t, err)

	negated := new(edwards25519.Point).Negate(p)

	var a, b pointXY
	a.fromPoint(p)
	b.fromPoint(negated)
	assert.Equal(t, a.montgomeryU(), b.montgomeryU())
}

func TestDecodeMontgomeryPointRejectsBadLength(t *testing.T) {
	_, err := decodeMontgomeryPoint(make([]byte, 31))
	assert.True(t, err != nil)
}
