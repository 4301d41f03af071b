// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/katalvlaran/magprism/mesher"
)

// logGuard is the magnitude below which log arguments are treated as zero.
const logGuard = 1e-10

// PrismKernel evaluates component c of the prism kernel at every point.
//
// Inputs:
//   - c:       kernel component (XX..ZZ).
//   - x, y, z: observation coordinates in metres, equal lengths.
//   - p:       prism geometry; magnetization is ignored.
//
// Returns a fresh slice with len(x) values (geometric units, 1/volume·volume).
//
// Errors: ErrUnknownComponent, ErrLengthMismatch.
// Complexity: O(len(x)).
func PrismKernel(c Component, x, y, z []float64, p mesher.Prism) ([]float64, error) {
	if !c.valid() {
		return nil, kernelErrorf(opPrismKernel, ErrUnknownComponent)
	}
	if err := validatePoints(x, y, z); err != nil {
		return nil, kernelErrorf(opPrismKernel, err)
	}

	out := make([]float64, len(x))
	for n := range x {
		out[n] = prismKernelAt(c, &p, x[n], y[n], z[n])
	}

	return out, nil
}

// prismKernelAt sums the corner terms of component c at one observation point.
func prismKernelAt(c Component, p *mesher.Prism, xp, yp, zp float64) float64 {
	dx := [2]float64{p.X2 - xp, p.X1 - xp}
	dy := [2]float64{p.Y2 - yp, p.Y1 - yp}
	dz := [2]float64{p.Z2 - zp, p.Z1 - zp}

	var res, r, v float64
	var i, j, k int
	for k = 0; k < 2; k++ {
		for j = 0; j < 2; j++ {
			for i = 0; i < 2; i++ {
				r = math.Sqrt(dx[i]*dx[i] + dy[j]*dy[j] + dz[k]*dz[k])
				switch c {
				case XX:
					v = -safeAtan2(dz[k]*dy[j], dx[i]*r)
				case XY:
					v = safeLog(dz[k] + r)
				case XZ:
					v = safeLog(dy[j] + r)
				case YY:
					v = -safeAtan2(dz[k]*dx[i], dy[j]*r)
				case YZ:
					v = safeLog(dx[i] + r)
				case ZZ:
					v = -safeAtan2(dx[i]*dy[j], dz[k]*r)
				}
				if (i+j+k)%2 == 1 {
					res -= v
				} else {
					res += v
				}
			}
		}
	}

	return res
}

// safeAtan2 is atan(y/x) on the principal branch, with 0 when y is 0.
func safeAtan2(y, x float64) float64 {
	if y == 0 {
		return 0
	}
	res := math.Atan2(y, x)
	if x < 0 {
		if y > 0 {
			res -= math.Pi
		} else {
			res += math.Pi
		}
	}
	return res
}

// safeLog returns log(x), or 0 when |x| is below logGuard.
func safeLog(x float64) float64 {
	if math.Abs(x) < logGuard {
		return 0
	}
	return math.Log(x)
}
