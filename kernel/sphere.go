// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/magprism/mesher"
)

// SphereKernel evaluates component c of the point-dipole kernel of s at every
// point: V·(3·d_a·d_b − δ_ab·r²)/r⁵ with V the sphere volume and d = centre − point.
// The kernel is singular at the centre itself.
//
// Errors: ErrUnknownComponent, ErrLengthMismatch.
func SphereKernel(c Component, x, y, z []float64, s mesher.Sphere) ([]float64, error) {
	if !c.valid() {
		return nil, kernelErrorf(opSphereKernel, ErrUnknownComponent)
	}
	if err := validatePoints(x, y, z); err != nil {
		return nil, kernelErrorf(opSphereKernel, err)
	}

	out := make([]float64, len(x))
	for n := range x {
		out[n] = sphereKernelAt(c, &s, x[n], y[n], z[n])
	}

	return out, nil
}

func sphereKernelAt(c Component, s *mesher.Sphere, xp, yp, zp float64) float64 {
	dx, dy, dz := s.X-xp, s.Y-yp, s.Z-zp
	r2 := dx*dx + dy*dy + dz*dz
	r5 := r2 * r2 * math.Sqrt(r2)
	vol := 4.0 * math.Pi * s.Radius * s.Radius * s.Radius / 3.0

	switch c {
	case XX:
		return vol * (3*dx*dx - r2) / r5
	case XY:
		return vol * 3 * dx * dy / r5
	case XZ:
		return vol * 3 * dx * dz / r5
	case YY:
		return vol * (3*dy*dy - r2) / r5
	case YZ:
		return vol * 3 * dy * dz / r5
	default: // ZZ
		return vol * (3*dz*dz - r2) / r5
	}
}
