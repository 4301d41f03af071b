// SPDX-License-Identifier: MIT
// Package matrix: product and comparison kernels.
//
// Purpose:
//   - MatVec for predicted data d = G·m from a sensitivity matrix.
//   - AllClose for tolerance comparison in tests and tooling.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the neutral accumulator for dot products.
const ZeroSum = 0.0

// Canonical op tags used in wrapped errors.
const (
	opMatVec   = "MatVec"
	opAllClose = "AllClose"
	opToMat    = "ToMat"
)

// matrixErrorf wraps err with the operation tag: "<tag>: <err>".
// Never call it with a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
// MAIN DESCRIPTION:
//   - Matrix-vector product returning a fresh slice of length Rows().
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); ValidateVecLen(x, m.Cols()).
//   - Stage 2: *Dense fast path: each output is floats.Dot over a row slice.
//   - Stage 3: fallback through At for any other Matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, base int
		for i = 0; i < d.r; i++ {
			base = i * d.c
			y[i] = floats.Dot(d.data[base:base+d.c], x)
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// AllClose reports whether |a(i,j) - b(i,j)| <= atol + rtol*|b(i,j)| for every element.
// Negative tolerances are taken by absolute value; NaN/Inf tolerances are rejected.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
