// SPDX-License-Identifier: MIT

// Package sensitivity assembles the Jacobian of the forward field with respect
// to the magnetization vectors of a one-dimensional prism array.
//
// For P prisms and N sensors the result is N×3P. The block of prism i occupies
// columns 3i, 3i+1 and 3i+2 and holds the three kernel components that multiply
// (Mx, My, Mz) in the plane's field component:
//
//	planes z-, z+ (Bz): xz, yz, zz
//	planes y+, y- (By): xy, yy, yz
//
// The matrix is expressed in nT per A/m, so G·m reproduces forward.Field for
// the same model, sensors and sampling mode.
package sensitivity
