// SPDX-License-Identifier: MIT

// Package forward evaluates the magnetic induction of a prism array at a set
// of sensor positions.
//
// The field component follows the scanning plane: planes z- and z+ measure the
// vertical component Bz, planes y+ and y- the in-plane component By. Values are
// in nanotesla.
//
// Two sampling modes are supported:
//
//   - point sampling (default): the kernel is evaluated at each sensor centre;
//   - footprint averaging (WithEffectiveArea): each sensor value is the mean over
//     a 7×7 grid spanning the sensor's active area.
//
// Optional magnetic grains (WithGrains) add the dipole field of small spheres,
// sampled the same way, on top of the prism field.
//
// Sensors are split into contiguous chunks evaluated concurrently
// (WithWorkers, default GOMAXPROCS). The result does not depend on the worker count.
package forward
