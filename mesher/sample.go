// SPDX-License-Identifier: MIT

package mesher

// Sample builds the interpretation model: p equal prisms of size lx×ly×lz laid
// side by side along the x-axis, the whole array centred at the origin.
//
// Prism i spans x ∈ [a+i·lx, a+(i+1)·lx] with a = -p·lx/2, y ∈ [-ly/2, ly/2] and
// z ∈ [-lz/2, lz/2]. When mags is nil the prisms carry no magnetization (geometry
// only, as needed by the Jacobian builder); otherwise len(mags) must equal p.
//
// Errors: ErrBadSize for p<=0, non-positive sizes, or len(mags) != p.
// Complexity: O(p).
func Sample(lx, ly, lz float64, p int, mags []Magnetization) ([]Prism, error) {
	if p <= 0 {
		return nil, mesherErrorf(methodSample, ErrBadSize, "p=%d", p)
	}
	if lx <= 0 || ly <= 0 || lz <= 0 {
		return nil, mesherErrorf(methodSample, ErrBadSize, "sizes (%g,%g,%g)", lx, ly, lz)
	}
	if mags != nil && len(mags) != p {
		return nil, mesherErrorf(methodSample, ErrBadSize, "len(mags)=%d, want %d", len(mags), p)
	}

	a := -0.5 * float64(p) * lx
	model := make([]Prism, p)
	for i := 0; i < p; i++ {
		model[i] = Prism{
			X1: a + float64(i)*lx, X2: a + float64(i+1)*lx,
			Y1: -0.5 * ly, Y2: 0.5 * ly,
			Z1: -0.5 * lz, Z2: 0.5 * lz,
		}
		if mags != nil {
			v := mags[i].Vec()
			model[i].Magnetization = &v
		}
	}

	return model, nil
}
