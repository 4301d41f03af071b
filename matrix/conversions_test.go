// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/magprism/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToMatFromMat(t *testing.T) {
	m := fill(t, 2, 3,
		1, 2, 3,
		4, 5, 6)

	g, err := m.ToMat()
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// Independent storage.
	g.Set(0, 0, -7)
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	back, err := matrix.FromMat(g.T())
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows())
	v, _ = back.At(2, 1)
	require.Equal(t, 6.0, v)
	v, _ = back.At(0, 0)
	require.Equal(t, -7.0, v)
}

func TestToMatNil(t *testing.T) {
	var m *matrix.Dense
	_, err := m.ToMat()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromMat(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
