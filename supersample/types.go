// SPDX-License-Identifier: MIT

package supersample

// FootprintResolution is the number of sub-points per axis used whenever a
// sensor footprint is averaged (49 sub-points per sensor).
const FootprintResolution = 7

// micro converts micrometres to metres.
const micro = 1e-6

// EffectiveArea is the rectangular aperture of a sensor: side lengths Lx and Ly
// in micrometres along the x and y axes.
type EffectiveArea struct {
	Lx, Ly float64
}

// Validate returns ErrNonPositiveArea unless both sides are strictly positive.
func (a EffectiveArea) Validate() error {
	if !(a.Lx > 0) || !(a.Ly > 0) {
		return ErrNonPositiveArea
	}
	return nil
}

// Grid holds the flattened sub-points of N sensor centres.
// Z is nil when the grid was built without z coordinates.
type Grid struct {
	X, Y, Z []float64
	Centers int // N
	Q       int // sub-points per centre (ns²)
}

// Len returns the number of sub-points, N·Q.
func (g *Grid) Len() int { return g.Centers * g.Q }

// BatchFunc evaluates a quantity at a batch of points and returns one value per
// point. Implementations must not retain or mutate the coordinate slices.
type BatchFunc func(x, y, z []float64) ([]float64, error)
