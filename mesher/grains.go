// SPDX-License-Identifier: MIT

package mesher

import "math/rand"

// GrainSpec configures RandomGrains.
//
// Fields:
//   - Prisms, Lx, Ly, Lz: the sample the grains live in (same meaning as in Sample).
//   - Count:              number of grains.
//   - Declination, Inclination: mean direction in degrees.
//   - Std:                standard deviation (degrees) of both angles.
//   - Intensity:          magnetization intensity of every grain (A/m).
//   - Radius:             grain radius (m).
type GrainSpec struct {
	Prisms      int
	Lx, Ly, Lz  float64
	Count       int
	Declination float64
	Inclination float64
	Std         float64
	Intensity   float64
	Radius      float64
}

// RandomGrains scatters spec.Count magnetized spheres uniformly inside the sample,
// keeping each sphere fully inside by shrinking the bounds by the radius.
// Directions are drawn as Normal(mean, Std) for declination and inclination.
//
// Draw order is fixed (all x, all y, all z, all declinations, all inclinations),
// so a given seed reproduces the same grains.
//
// Errors:
//   - ErrNeedRand if rng is nil.
//   - ErrBadSize for non-positive counts/sizes, negative Std, or a radius that
//     does not fit inside the sample.
//
// Complexity: O(Count).
func RandomGrains(rng *rand.Rand, spec GrainSpec) ([]Sphere, error) {
	if rng == nil {
		return nil, mesherErrorf(methodRandomGrains, ErrNeedRand, "nil rng")
	}
	if spec.Prisms <= 0 || spec.Count <= 0 {
		return nil, mesherErrorf(methodRandomGrains, ErrBadSize, "prisms=%d count=%d", spec.Prisms, spec.Count)
	}
	if spec.Lx <= 0 || spec.Ly <= 0 || spec.Lz <= 0 || spec.Radius <= 0 || spec.Std < 0 {
		return nil, mesherErrorf(methodRandomGrains, ErrBadSize, "sizes (%g,%g,%g) radius=%g std=%g",
			spec.Lx, spec.Ly, spec.Lz, spec.Radius, spec.Std)
	}

	l := float64(spec.Prisms) * spec.Lx
	r := spec.Radius
	if 2*r >= l || 2*r >= spec.Ly || 2*r >= spec.Lz {
		return nil, mesherErrorf(methodRandomGrains, ErrBadSize, "radius %g does not fit", r)
	}

	n := spec.Count
	xs := uniform(rng, n, -0.5*l+r, 0.5*l-r)
	ys := uniform(rng, n, -0.5*spec.Ly+r, 0.5*spec.Ly-r)
	zs := uniform(rng, n, -0.5*spec.Lz+r, 0.5*spec.Lz-r)
	decs := normal(rng, n, spec.Declination, spec.Std)
	incs := normal(rng, n, spec.Inclination, spec.Std)

	grains := make([]Sphere, n)
	for i := 0; i < n; i++ {
		v := Ang2Vec(spec.Intensity, incs[i], decs[i])
		grains[i] = Sphere{X: xs[i], Y: ys[i], Z: zs[i], Radius: r, Magnetization: &v}
	}

	return grains, nil
}

// uniform draws n samples from U[lo, hi).
func uniform(rng *rand.Rand, n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*rng.Float64()
	}
	return out
}

// normal draws n samples from N(mean, std²).
func normal(rng *rand.Rand, n int, mean, std float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + std*rng.NormFloat64()
	}
	return out
}
