// SPDX-License-Identifier: MIT

// Package matrix: bridge to gonum/mat.

package matrix

import "gonum.org/v1/gonum/mat"

// ToMat copies m into a new gonum *mat.Dense of the same shape.
// The copy is independent: later writes to either side are not shared.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func (m *Dense) ToMat() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToMat, ErrNilMatrix)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromMat copies a gonum matrix into a new Dense with the default numeric policy.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty matrix), ErrNaNInf.
// Complexity: O(r*c).
func FromMat(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromMat", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromMat", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf("FromMat", err)
			}
		}
	}

	return out, nil
}
