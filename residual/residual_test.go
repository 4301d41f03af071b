// SPDX-License-Identifier: MIT

package residual_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magprism/residual"
)

func TestCompute(t *testing.T) {
	// r = {1, 3}: mean 2, population std 1.
	st, err := residual.Compute([]float64{2, 5}, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2, st.Mean, 1e-15)
	assert.InDelta(t, 1, st.Std, 1e-15)
	if diff := cmp.Diff([]float64{-1, 1}, st.Normalized, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Errorf("normalized mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_NormalizedHasZeroMeanUnitStd(t *testing.T) {
	obs := []float64{0.3, -1.2, 4.4, 2.0, 0.0, -0.7, 9.1}
	pred := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}

	st, err := residual.Compute(obs, pred)
	require.NoError(t, err)

	var s, ss float64
	for _, v := range st.Normalized {
		s += v
		ss += v * v
	}
	n := float64(len(obs))
	assert.InDelta(t, 0, s/n, 1e-12)
	assert.InDelta(t, 1, math.Sqrt(ss/n), 1e-12)
}

func TestCompute_Errors(t *testing.T) {
	_, err := residual.Compute(nil, nil)
	require.ErrorIs(t, err, residual.ErrEmpty)

	_, err = residual.Compute([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, residual.ErrLengthMismatch)

	_, err = residual.Compute([]float64{3, 4, 5}, []float64{1, 2, 3})
	require.ErrorIs(t, err, residual.ErrZeroSpread)
}
