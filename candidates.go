package main

import "github.com/AlexanderYastrebov/vanity25519/field"

// generateCandidates fills the per-iteration numerator/denominator vectors
// (ua, ub) for the batched search.
//
// offsets holds batchSize/2 precomputed affine points 1*O, 2*O, ..., (batchSize/2)*O.
// pa is the affine (x, y, xy) form of the batch's centre point.
// pZ is the Z coordinate of the already-advanced running point p, piggybacked
// here so the vector division that follows recovers 1/Z_p for free.
//
// ua and ub must have length batchSize+2; on return:
//
//	slot 0..batchSize/2-1:   u-numerator/denominator of pa + i*O, i = batchSize/2 down to 1
//	slot batchSize/2:        u-numerator/denominator of pa itself
//	slot batchSize/2+1..batchSize: u-numerator/denominator of pa - i*O, i = 1..batchSize/2
//	slot batchSize+1:        (1, Z_p), recovers 1/Z_p via the shared division
//
// Using the twisted-Edwards affine addition formula (independent of d):
//
//	y(A+B) = (xA*yA - xB*yB) / (xA*yB - yA*xB)
//	y(A-B) = (xA*yA + xB*yB) / (xA*yB + yA*xB)
//
// and u = (1+y)/(1-y), so for y = num/den, u = (den+num)/(den-num). Both
// A+B and A-B are extracted from the same pair of multiplications
// (xA*yB, yA*xB), which is the source of this component's ~25x speedup over
// an independent inversion per candidate.
func generateCandidates(pa *affine, offsets []affine, pZ *field.Element, ua, ub []field.Element) {
	half := len(offsets)

	var x1y2, y1x2, num, den field.Element
	for i := range half {
		off := &offsets[i]

		x1y2.Multiply(&pa.X, &off.Y)
		y1x2.Multiply(&pa.Y, &off.X)

		// pa + (i+1)*O
		num.Subtract(&pa.XY, &off.XY)
		den.Subtract(&x1y2, &y1x2)
		slotPlus := half - 1 - i
		ua[slotPlus].Add(&den, &num)
		ub[slotPlus].Subtract(&den, &num)

		// pa - (i+1)*O
		num.Add(&pa.XY, &off.XY)
		den.Add(&x1y2, &y1x2)
		slotMinus := half + 1 + i
		ua[slotMinus].Add(&den, &num)
		ub[slotMinus].Subtract(&den, &num)
	}

	one := new(field.Element).One()
	ua[half].Add(one, &pa.Y)
	ub[half].Subtract(one, &pa.Y)

	ua[half+1+half].One()
	ub[half+1+half].Set(pZ)
}

// offsetForSlot returns the signed offset, relative to the batch's centre
// point pa, that slot j (0 <= j <= batchSize) corresponds to, per the table
// in generateCandidates' doc comment. Slot batchSize+1 carries no offset (it recovers 1/Z_p).
func offsetForSlot(half, j int) int64 {
	switch {
	case j < half:
		return int64(half - j)
	case j == half:
		return 0
	default:
		return -int64(j - half)
	}
}
