package main

import "github.com/AlexanderYastrebov/vanity25519/field"

// vectorDivision computes u[i] = x[i] / y[i] for every i, using exactly one
// field inversion and 4*(n-1)+1 multiplications instead of n independent
// inversions.
//
// Simultaneous field divisions: an extension of Montgomery's trick.
// David G. Harris, https://eprint.iacr.org/2008/199.pdf
//
// Every y[i] must be non-zero; the search driver guarantees this for valid
// curve points and non-trivial offsets.
func vectorDivision(x, y, u []field.Element) {
	n := len(x)

	// Forward pass: py accumulates y[0]*y[1]*...*y[i], u[i] picks up the
	// partial numerator py(before multiplying in y[i]) * x[i].
	py := new(field.Element).Set(&y[0])
	for i := 1; i < n; i++ {
		u[i].Multiply(py, &x[i])
		py.Multiply(py, &y[i])
	}

	pyInv := new(field.Element).Invert(py)

	// Backward pass: pyInv holds 1/(y[0]*y[1]*...*y[i]) at the start of
	// step i, which telescopes u[i] down to exactly x[i]/y[i].
	for i := n - 1; i > 0; i-- {
		u[i].Multiply(pyInv, &u[i])
		pyInv.Multiply(pyInv, &y[i])
	}
	u[0].Multiply(pyInv, &x[0])
}
