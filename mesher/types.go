// SPDX-License-Identifier: MIT

package mesher

// Vector is a Cartesian magnetization vector in A/m.
type Vector struct {
	X, Y, Z float64
}

// Magnetization describes a magnetization by its intensity (A/m),
// inclination and declination (degrees).
type Magnetization struct {
	Intensity   float64
	Inclination float64
	Declination float64
}

// Prism is a right rectangular prism bounded by [X1,X2]×[Y1,Y2]×[Z1,Z2] (metres).
// A nil Magnetization marks a purely geometric prism: field evaluation skips it,
// while the Jacobian builder still uses its bounds.
type Prism struct {
	X1, X2        float64
	Y1, Y2        float64
	Z1, Z2        float64
	Magnetization *Vector
}

// Center returns the geometric centre of the prism.
func (p Prism) Center() (x, y, z float64) {
	return 0.5 * (p.X1 + p.X2), 0.5 * (p.Y1 + p.Y2), 0.5 * (p.Z1 + p.Z2)
}

// Volume returns the prism volume in cubic metres.
func (p Prism) Volume() float64 {
	return (p.X2 - p.X1) * (p.Y2 - p.Y1) * (p.Z2 - p.Z1)
}

// Sphere is a uniformly magnetized sphere centred at (X, Y, Z) with the given Radius.
type Sphere struct {
	X, Y, Z       float64
	Radius        float64
	Magnetization *Vector
}
