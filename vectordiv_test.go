package main

import (
	"testing"

	"github.com/AlexanderYastrebov/vanity25519/field"
	"github.com/wgtools/wvk/internal/assert"
	"github.com/wgtools/wvk/internal/require"
)

func feFromInt(n int64) *field.Element {
	neg := n < 0
	if neg {
		n = -n
	}
	fe := fieldElementFromUint64(uint64(n))
	if neg {
		fe.Negate(fe)
	}
	return fe
}

func TestVectorDivisionMatchesIndependentInversion(t *testing.T) {
	xs := []int64{3, 11, -7, 1, 42}
	ys := []int64{5, 2, 13, 9, -3}

	x := make([]field.Element, len(xs))
	y := make([]field.Element, len(ys))
	for i := range xs {
		x[i] = *feFromInt(xs[i])
		y[i] = *feFromInt(ys[i])
	}

	got := make([]field.Element, len(xs))
	vectorDivision(x, y, got)

	for i := range xs {
		var want field.Element
		want.Invert(&y[i])
		want.Multiply(&want, &x[i])
		require.Equal(t, want.Bytes(), got[i].Bytes())
	}
}

func TestVectorDivisionSingleElement(t *testing.T) {
	x := []field.Element{*feFromInt(6)}
	y := []field.Element{*feFromInt(3)}
	got := make([]field.Element, 1)
	vectorDivision(x, y, got)
	assert.Equal(t, feFromInt(2).Bytes(), got[0].Bytes())
}
