// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with context via %w);
// callers and tests match them with errors.Is. Nothing panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// ERROR PRIORITY: nil -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
