package main

import (
	"context"

	"filippo.io/edwards25519"
	"github.com/AlexanderYastrebov/vanity25519/field"
)

// scalarOffsetK is the scalar k such that O = k*G, the fixed auxiliary
// point the search walks multiples of. 8 matches the reference
// implementation (wvk/main.c's scalar_offset) - it is also the cofactor of
// edwards25519, so O is most cheaply computed via MultByCofactor.
const scalarOffsetK = 8

// defaultBatchSize is the reference implementation's batch_size: each outer
// iteration tests batchSize+1 candidate u-coordinates, which share one
// division of batchSize+2 elements with the 1/Z_p slot. Must stay even; 4096 is the value the original C tool and its 25x
// speedup claim were measured against.
const defaultBatchSize = 4096

// pointO is the process-wide auxiliary point O = 8*G, computed once at
// package initialisation. It is a package-level variable that
// buildOffsetsTable and search read directly; it is not passed to them as a
// parameter, and nothing assigns to it after initialisation.
var pointO = new(edwards25519.Point).MultByCofactor(edwards25519.NewGeneratorPoint())

// searchResult reports the outcome of a search run: its terminal states
// (Found, LimitExhausted, Interrupted) collapsed into one struct, since Go
// prefers an explicit return value over a lingering "state" the caller
// must separately query.
type searchResult struct {
	found       bool
	n           uint64
	attempts    uint64
	interrupted bool
}

// buildOffsetsTable constructs the precomputed offsets table
// 1*O, 2*O, ..., half*O in affine form, along with the per-iteration
// batchOffset = (2*half+1)*O and half*O itself (used once to seed the
// running point so the first batch is centred rather than starting at a
// negative offset). Built once at search startup; never mutated afterwards.
func buildOffsetsTable(half int) (offsets []affine, batchOffset *edwards25519.Point, halfO *edwards25519.Point) {
	offsets = make([]affine, half)

	poi := new(edwards25519.Point).Set(pointO)
	for i := 0; i < half-1; i++ {
		offsets[i].fromP3(poi)
		poi.Add(poi, pointO)
	}
	offsets[half-1].fromP3(poi)
	// poi == half*O here.

	batchOffset = new(edwards25519.Point).Set(pointO)
	batchOffset.Add(batchOffset, poi)
	batchOffset.Add(batchOffset, poi)

	return offsets, batchOffset, poi
}

// search walks P + n*O for n >= skip, testing
// batchSize+1 candidates per outer iteration via the batched generator and
// a single amortised field inversion, until it finds a u-coordinate whose
// base64 prefix matches, exhausts limit (0 = unlimited), or ctx is done.
//
// Coverage and ordering: within one outer iteration, candidates are tested
// in a fixed order that is monotonically decreasing in n (from the centre
// plus half the batch down to the centre minus half the batch); successive
// iterations advance the centre forward by batchSize+1, so the offsets
// tested across the whole run are exactly the contiguous, non-overlapping
// range [skip, skip+limit) with no gaps and no repeats,
// and any n this function returns satisfies
// base64-prefix(Montgomery(P + n*O)) == prefix and n >= skip.
func search(ctx context.Context, p0 *edwards25519.Point, skip, limit uint64, batchSize int, prefix *prefixDescriptor) searchResult {
	if batchSize <= 0 || batchSize%2 != 0 {
		panic("batchSize must be positive and even")
	}
	half := batchSize / 2

	offsets, batchOffset, halfO := buildOffsetsTable(half)

	p := new(edwards25519.Point).Set(p0)
	if skip > 0 {
		skipOffset := new(edwards25519.Point).ScalarMult(scalarFromUint64(skip), pointO)
		p.Add(p, skipOffset)
	}
	p.Add(p, halfO)

	pa := new(affine).fromP3(p)

	ua := make([]field.Element, batchSize+2)
	ub := make([]field.Element, batchSize+2)
	u := make([]field.Element, batchSize+2)

	test := prefix.test()
	baseOffset := skip + uint64(half)

	var attempts uint64
	var candidate [32]byte

	for {
		select {
		case <-ctx.Done():
			return searchResult{interrupted: true, attempts: attempts}
		default:
		}

		toTest := batchSize + 1
		if limit > 0 {
			left := limit - attempts
			if left == 0 {
				return searchResult{attempts: attempts}
			}
			if left < uint64(toTest) {
				toTest = int(left)
			}
		}

		p.Add(p, batchOffset)
		_, _, pZext, _ := p.ExtendedCoordinates()
		pZ := fieldElementFromMontgomeryBytes(pZext.Bytes())

		generateCandidates(pa, offsets, pZ, ua, ub)
		vectorDivision(ua, ub, u)

		// offsetForSlot is monotonically decreasing in j: slot 0 is the
		// batch's highest n, slot batchSize its lowest. A full batch tests
		// every slot; a partial final batch (toTest < batchSize+1) must
		// still cover the low end of the range down to skip+limit-1, so it
		// tests the highest-j (lowest-n) slots, not the lowest-j ones.
		for j := batchSize + 1 - toTest; j <= batchSize; j++ {
			copy(candidate[:], u[j].Bytes())
			attempts++
			if test(candidate[:]) {
				n := uint64(int64(baseOffset) + offsetForSlot(half, j))
				return searchResult{found: true, n: n, attempts: attempts}
			}
		}

		if toTest < batchSize+1 {
			return searchResult{attempts: attempts}
		}

		pa.fromP3zInv(p, &u[batchSize+1])
		baseOffset += uint64(batchSize + 1)
	}
}

// scalarFromUint64 encodes n as an edwards25519 scalar.
func scalarFromUint64(n uint64) *edwards25519.Scalar {
	var buf [64]byte
	for i := range 8 {
		buf[i] = byte(n >> (8 * i))
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		panic(err) // 64 uniform bytes always decode
	}
	return s
}
