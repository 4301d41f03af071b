// SPDX-License-Identifier: MIT

package supersample

import "gonum.org/v1/gonum/floats"

// BlockMean reshapes vals (length n·q) into n rows of q and returns the mean of
// each row.
//
// Errors: ErrLengthMismatch if len(vals) != n·q; ErrEvenResolution if q <= 0.
// Complexity: O(n·q).
func BlockMean(vals []float64, n, q int) ([]float64, error) {
	if q <= 0 {
		return nil, supersampleErrorf(opBlockMean, ErrEvenResolution)
	}
	if n < 0 || len(vals) != n*q {
		return nil, supersampleErrorf(opBlockMean, ErrLengthMismatch)
	}

	out := make([]float64, n)
	inv := 1.0 / float64(q)
	for i := 0; i < n; i++ {
		out[i] = floats.Sum(vals[i*q:(i+1)*q]) * inv
	}

	return out, nil
}

// Reduce averages one value per sub-point back to one value per centre.
func (g *Grid) Reduce(vals []float64) ([]float64, error) {
	return BlockMean(vals, g.Centers, g.Q)
}

// Average evaluates fn over the ns×ns footprint of every centre and returns the
// per-centre means. With ns = 1 it is exactly fn at the centres.
//
// Errors: those of Point2Grid, those of fn, and ErrLengthMismatch if fn returns
// the wrong number of values.
func Average(x, y, z []float64, area EffectiveArea, ns int, fn BatchFunc) ([]float64, error) {
	g, err := Point2Grid(x, y, z, area, ns)
	if err != nil {
		return nil, err
	}
	vals, err := fn(g.X, g.Y, g.Z)
	if err != nil {
		return nil, err
	}
	if len(vals) != g.Len() {
		return nil, supersampleErrorf(opEvaluate, ErrLengthMismatch)
	}

	return g.Reduce(vals)
}

// Evaluate is the point-or-footprint sampling used by field evaluation and
// Jacobian assembly alike. A nil area samples fn at the centres; otherwise the
// footprint is averaged with FootprintResolution sub-points per axis.
//
// Errors: ErrLengthMismatch for unequal coordinates or a short fn result, plus
// everything Average returns.
func Evaluate(x, y, z []float64, area *EffectiveArea, fn BatchFunc) ([]float64, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, supersampleErrorf(opEvaluate, ErrLengthMismatch)
	}
	if area != nil {
		return Average(x, y, z, *area, FootprintResolution, fn)
	}

	vals, err := fn(x, y, z)
	if err != nil {
		return nil, err
	}
	if len(vals) != len(x) {
		return nil, supersampleErrorf(opEvaluate, ErrLengthMismatch)
	}

	return vals, nil
}
