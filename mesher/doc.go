// SPDX-License-Identifier: MIT

// Package mesher builds the source geometries consumed by the field kernels.
//
// What:
//
//   - Prism: a rectangular box with an optional uniform magnetization vector.
//   - Sphere: a point-dipole grain with radius and magnetization.
//   - Sample: a 1D array of P equal prisms along the x-axis, centred at the origin.
//   - RandomGrains: n magnetized spheres scattered inside the sample, drawn from an
//     explicit *rand.Rand so runs are reproducible without global state.
//   - Dircos / Ang2Vec / Vec2Ang / ParametersSph: conversions between Cartesian
//     magnetization vectors and (intensity, inclination, declination) triples.
//
// Units:
//
//   - Coordinates and sizes are in metres, angles in degrees, intensities in A/m.
//
// Errors:
//
//   - ErrBadSize:  non-positive counts or sizes, mismatched lengths.
//   - ErrNeedRand: a stochastic builder received a nil RNG.
package mesher
