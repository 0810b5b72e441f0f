package main

import (
	"fmt"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/vanity25519/field"
)

// affine is the "Affine-with-product" of the data model: a twisted-Edwards
// point (x, y) with its product xy precomputed, so that one operand of the
// batched addition formula in candidates.go costs zero extra multiplications
// across a whole batch.
type affine struct {
	X, Y, XY field.Element
}

// fromP3 normalises an extended-coordinate point to affine form, paying the
// one inversion this costs. Used once per offsets-table entry at startup.
func (v *affine) fromP3(p *edwards25519.Point) *affine {
	ex, ey, ez, _ := p.ExtendedCoordinates()
	X := fieldElementFromMontgomeryBytes(ex.Bytes())
	Y := fieldElementFromMontgomeryBytes(ey.Bytes())
	Z := fieldElementFromMontgomeryBytes(ez.Bytes())

	var zInv field.Element
	zInv.Invert(Z)
	v.X.Multiply(X, &zInv)
	v.Y.Multiply(Y, &zInv)
	v.XY.Multiply(&v.X, &v.Y)
	return v
}

// fromP3zInv normalises p using a caller-supplied inverse of its Z
// coordinate, so no extra inversion is paid - the search driver calls this
// with the 1/Z recovered as a side effect of the batch's single inversion.
func (v *affine) fromP3zInv(p *edwards25519.Point, zInv *field.Element) *affine {
	ex, ey, _, _ := p.ExtendedCoordinates()
	X := fieldElementFromMontgomeryBytes(ex.Bytes())
	Y := fieldElementFromMontgomeryBytes(ey.Bytes())

	v.X.Multiply(X, zInv)
	v.Y.Multiply(Y, zInv)
	v.XY.Multiply(&v.X, &v.Y)
	return v
}

// pointXY is the data model's PointXY: a normalised affine (x, y) pair. The
// search loop, decodeMontgomeryPoint and publicKeyFor do not use it; the
// tests use it to compute expected Montgomery u-coordinates.
type pointXY struct {
	X, Y field.Element
}

// fromPoint normalises an extended-coordinate point to (x, y), costing one
// inversion and two multiplications.
func (v *pointXY) fromPoint(p *edwards25519.Point) *pointXY {
	ex, ey, ez, _ := p.ExtendedCoordinates()
	X := fieldElementFromMontgomeryBytes(ex.Bytes())
	Y := fieldElementFromMontgomeryBytes(ey.Bytes())
	Z := fieldElementFromMontgomeryBytes(ez.Bytes())

	var zInv field.Element
	zInv.Invert(Z)
	v.X.Multiply(X, &zInv)
	v.Y.Multiply(Y, &zInv)
	return v
}

// montgomeryU returns u = (1+y)/(1-y), the Montgomery u-coordinate, encoded
// as 32 little-endian bytes. This is the value a WireGuard public key
// base64-encodes.
func (v *pointXY) montgomeryU() []byte {
	one := new(field.Element).One()
	n := new(field.Element).Add(one, &v.Y)
	d := new(field.Element).Subtract(one, &v.Y)
	d.Invert(d)
	u := new(field.Element).Multiply(n, d)
	return u.Bytes()
}

// decodeMontgomeryPoint decodes the Curve25519 Montgomery u-coordinate of a
// public key into its Edwards form: computes Edwards y = (u-1)/(u+1) and
// decodes the compressed point with x-sign 0. The search only ever compares
// resulting u-coordinates, so the lost sign bit is immaterial - see
// DESIGN.md for the accompanying test that confirms this.
func decodeMontgomeryPoint(u []byte) (*edwards25519.Point, error) {
	if len(u) != 32 {
		return nil, fmt.Errorf("invalid Montgomery u length, want 32 bytes, got %d", len(u))
	}
	ue, err := new(field.Element).SetBytes(u)
	if err != nil {
		return nil, fmt.Errorf("invalid field element: %w", err)
	}

	one := new(field.Element).One()
	n := new(field.Element).Subtract(ue, one)
	d := new(field.Element).Add(ue, one)
	d.Invert(d)
	y := new(field.Element).Multiply(n, d)

	yb := y.Bytes()
	yb[31] &= 0x7f // force x-sign to 0, see decodeMontgomeryPoint doc above

	p, err := new(edwards25519.Point).SetBytes(yb)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: not a point on the curve: %w", err)
	}
	return p, nil
}

// fieldElementFromMontgomeryBytes adapts a filippo.io/edwards25519 field
// element's little-endian byte encoding into a vanity25519/field.Element.
// Both packages encode 𝔽_p elements identically (reduced, little-endian,
// 32 bytes); this is the typed conversion point the rest of the module
// relies on to cross the package boundary without raw pointer casts.
func fieldElementFromMontgomeryBytes(b []byte) *field.Element {
	fe, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err) // b is always a reduced field element produced by edwards25519 itself
	}
	return fe
}
