// SPDX-License-Identifier: MIT

package plane

import "math"

// Area bounds a regular grid: first axis in [X1, X2], second axis in [Y1, Y2] (metres).
type Area struct {
	X1, X2, Y1, Y2 float64
}

// Regular returns the nx·ny points of a regular grid over area, flattened with
// the first axis varying slowest: point k = i·ny + j sits at (u_i, v_j).
// Both endpoints are included; an axis with one point sits at its lower bound.
//
// Errors: ErrBadShape for nx<1, ny<1, or X1>X2 / Y1>Y2.
// Complexity: O(nx·ny).
func Regular(area Area, nx, ny int) (u, v []float64, err error) {
	if nx < 1 || ny < 1 || area.X1 > area.X2 || area.Y1 > area.Y2 {
		return nil, nil, planeErrorf(opRegular, ErrBadShape)
	}

	us := linspace(area.X1, area.X2, nx)
	vs := linspace(area.Y1, area.Y2, ny)
	u = make([]float64, nx*ny)
	v = make([]float64, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			u[i*ny+j] = us[i]
			v[i*ny+j] = vs[j]
		}
	}

	return u, v, nil
}

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Rotate turns the point set (u, v) by theta degrees counter-clockwise:
// u' = cosθ·u − sinθ·v, v' = sinθ·u + cosθ·v. Inputs are not modified.
// u and v must have equal length.
func Rotate(u, v []float64, theta float64) (ru, rv []float64) {
	s, c := math.Sincos(theta * math.Pi / 180)
	ru = make([]float64, len(u))
	rv = make([]float64, len(u))
	for i := range u {
		ru[i] = c*u[i] - s*v[i]
		rv[i] = s*u[i] + c*v[i]
	}
	return ru, rv
}
