// SPDX-License-Identifier: MIT

package supersample

// Offsets returns the flattened local offset grid for one sensor: ns² pairs
// (ox[q], oy[q]) with q = r·ns + c, ox = dx·(c − ns/2), oy = dy·(r − ns/2),
// dx = 1e-6·Lx/ns and dy = 1e-6·Ly/ns. The offsets are symmetric about zero.
//
// Errors: ErrNonPositiveArea, ErrEvenResolution.
func Offsets(area EffectiveArea, ns int) (ox, oy []float64, err error) {
	if err = area.Validate(); err != nil {
		return nil, nil, err
	}
	if ns <= 0 || ns%2 == 0 {
		return nil, nil, ErrEvenResolution
	}

	dx := micro * area.Lx / float64(ns)
	dy := micro * area.Ly / float64(ns)
	half := ns / 2
	q := ns * ns

	ox = make([]float64, q)
	oy = make([]float64, q)
	var r, c int
	for r = 0; r < ns; r++ {
		for c = 0; c < ns; c++ {
			ox[r*ns+c] = dx * float64(c-half)
			oy[r*ns+c] = dy * float64(r-half)
		}
	}

	return ox, oy, nil
}

// Point2Grid expands every sensor centre (x[i], y[i][, z[i]]) into ns² sub-points
// covering the effective area. z may be nil; when given it is replicated per
// sub-point without offset.
//
// Implementation:
//   - Stage 1: validate area, lengths and ns (in that order), before allocating.
//   - Stage 2: build the local offset grid once.
//   - Stage 3: write block i = [i·Q, (i+1)·Q) as centre i plus the offsets.
//
// Errors: ErrNonPositiveArea, ErrLengthMismatch, ErrEvenResolution.
// Complexity: O(N·ns²) time and memory.
func Point2Grid(x, y, z []float64, area EffectiveArea, ns int) (*Grid, error) {
	if err := area.Validate(); err != nil {
		return nil, supersampleErrorf(opPoint2Grid, err)
	}
	if len(x) != len(y) || (z != nil && len(z) != len(x)) {
		return nil, supersampleErrorf(opPoint2Grid, ErrLengthMismatch)
	}
	ox, oy, err := Offsets(area, ns)
	if err != nil {
		return nil, supersampleErrorf(opPoint2Grid, err)
	}

	n, q := len(x), ns*ns
	g := &Grid{
		X:       make([]float64, n*q),
		Y:       make([]float64, n*q),
		Centers: n,
		Q:       q,
	}
	if z != nil {
		g.Z = make([]float64, n*q)
	}

	var i, k, base int
	for i = 0; i < n; i++ {
		base = i * q
		for k = 0; k < q; k++ {
			g.X[base+k] = x[i] + ox[k]
			g.Y[base+k] = y[i] + oy[k]
		}
		if z != nil {
			for k = 0; k < q; k++ {
				g.Z[base+k] = z[i]
			}
		}
	}

	return g, nil
}
