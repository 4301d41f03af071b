// SPDX-License-Identifier: MIT

// Package kernel evaluates the magnetic field of rectangular prisms and
// point-dipole spheres, and the second-derivative kernels it is built from.
//
// What:
//
//   - PrismKernel / SphereKernel: one of the six second derivatives (xx, xy, xz,
//     yy, yz, zz) of the volume integral of 1/r over the source, evaluated at
//     every observation point. These are the columns of a magnetization Jacobian.
//   - PrismField / SphereField: the vertical (Bz) or in-plane (By) induction in
//     nanotesla, summed over all magnetized sources.
//
// Conventions:
//
//   - Coordinates in metres, magnetization in A/m, fields in nT.
//   - Offsets are taken as source minus observation point.
//   - Bz = CM·T2NT·(xz·Mx + yz·My + zz·Mz); By = CM·T2NT·(xy·Mx + yy·My + yz·Mz).
//     Field.Components returns exactly these triples, so Jacobian columns and
//     forward fields share one definition.
//
// Prism kernels follow the closed-form corner sums of Nagy et al. (2000):
// eight corners, sign (-1)^(i+j+k), with guarded atan/log terms so that points on
// an edge or face plane stay finite.
//
// Errors:
//
//   - ErrUnknownComponent / ErrUnknownField: enum value out of range.
//   - ErrLengthMismatch: x, y, z of different lengths.
package kernel
