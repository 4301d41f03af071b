// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major container used for sensitivity
// (Jacobian) matrices, with safe accessors and the few kernels the forward
// model needs.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set, whole-column
//     Col/SetCol for column-block assembly, in-place Scale, and Clone.
//   - MatVec: y = A·x, e.g. predicted data from a Jacobian and a magnetization vector.
//   - AllClose: tolerance comparison of two matrices.
//   - ToMat: a copy into gonum's *mat.Dense for downstream solvers.
//
// Numeric policy: by default Set and SetCol reject NaN and ±Inf so that a
// degenerate kernel value can never slip silently into a Jacobian.
//
// Concurrency: distinct columns may be written by distinct goroutines through
// SetCol; the storage is not otherwise synchronized.
package matrix
