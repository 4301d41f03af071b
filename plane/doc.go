// SPDX-License-Identifier: MIT

// Package plane defines the four canonical observation planes around a cubic
// sample and generates sensor coordinates on them.
//
// Planes (Alpha):
//
//	PlaneZNeg (0): z = -voo, grid over (x, y), senses Bz
//	PlaneYPos (1): y = +voo, grid over (x, z), senses By
//	PlaneZPos (2): z = +voo, grid over (x, y), senses Bz
//	PlaneYNeg (3): y = -voo, grid over (x, z), senses By
//
// with voo = h·1e-6 + L/2 (h in micrometres, L in metres).
//
// The plane → field mapping is a lookup table; Alpha.Field and Alpha.Columns
// are the single source of truth shared by forward evaluation and the Jacobian.
//
// CoordPlane lays a regular nx×ny grid on the chosen plane and rotates the two
// in-plane axes by theta degrees about the plane normal.
package plane
