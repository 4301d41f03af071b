// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/magprism/mesher"

// PrismField returns field f (nT) of the magnetized prisms at every point.
// Prisms with a nil Magnetization contribute nothing.
//
// Errors: ErrUnknownField, ErrLengthMismatch.
// Complexity: O(len(x)·len(prisms)).
func PrismField(f Field, x, y, z []float64, prisms []mesher.Prism) ([]float64, error) {
	if !f.valid() {
		return nil, kernelErrorf(opPrismField, ErrUnknownField)
	}
	if err := validatePoints(x, y, z); err != nil {
		return nil, kernelErrorf(opPrismField, err)
	}

	comps := f.Components()
	out := make([]float64, len(x))
	for i := range prisms {
		p := &prisms[i]
		if p.Magnetization == nil {
			continue
		}
		m := [3]float64{p.Magnetization.X, p.Magnetization.Y, p.Magnetization.Z}
		for n := range x {
			out[n] += m[0]*prismKernelAt(comps[0], p, x[n], y[n], z[n]) +
				m[1]*prismKernelAt(comps[1], p, x[n], y[n], z[n]) +
				m[2]*prismKernelAt(comps[2], p, x[n], y[n], z[n])
		}
	}
	scaleToNT(out)

	return out, nil
}

// SphereField returns field f (nT) of the magnetized spheres at every point.
//
// Errors: ErrUnknownField, ErrLengthMismatch.
func SphereField(f Field, x, y, z []float64, spheres []mesher.Sphere) ([]float64, error) {
	if !f.valid() {
		return nil, kernelErrorf(opSphereField, ErrUnknownField)
	}
	if err := validatePoints(x, y, z); err != nil {
		return nil, kernelErrorf(opSphereField, err)
	}

	comps := f.Components()
	out := make([]float64, len(x))
	for i := range spheres {
		s := &spheres[i]
		if s.Magnetization == nil {
			continue
		}
		m := [3]float64{s.Magnetization.X, s.Magnetization.Y, s.Magnetization.Z}
		for n := range x {
			out[n] += m[0]*sphereKernelAt(comps[0], s, x[n], y[n], z[n]) +
				m[1]*sphereKernelAt(comps[1], s, x[n], y[n], z[n]) +
				m[2]*sphereKernelAt(comps[2], s, x[n], y[n], z[n])
		}
	}
	scaleToNT(out)

	return out, nil
}

// scaleToNT converts accumulated kernel·magnetization sums into nanotesla.
func scaleToNT(v []float64) {
	for i := range v {
		v[i] *= CM * T2NT
	}
}
