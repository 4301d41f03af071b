// SPDX-License-Identifier: MIT

package residual

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds the residual summary.
type Stats struct {
	Normalized []float64 // (r - Mean) / Std
	Mean       float64
	Std        float64 // population standard deviation
}

// Compute returns the residual statistics of observed against predicted.
//
// Errors: ErrEmpty, ErrLengthMismatch, ErrZeroSpread (every residual equal).
// Complexity: O(N).
func Compute(observed, predicted []float64) (Stats, error) {
	if len(observed) != len(predicted) {
		return Stats{}, residualErrorf(opCompute, ErrLengthMismatch)
	}
	if len(observed) == 0 {
		return Stats{}, residualErrorf(opCompute, ErrEmpty)
	}

	r := make([]float64, len(observed))
	floats.SubTo(r, observed, predicted)
	mean, std := stat.PopMeanStdDev(r, nil)
	if std == 0 {
		return Stats{}, residualErrorf(opCompute, ErrZeroSpread)
	}

	norm := make([]float64, len(r))
	for i, v := range r {
		norm[i] = (v - mean) / std
	}

	return Stats{Normalized: norm, Mean: mean, Std: std}, nil
}
