// SPDX-License-Identifier: MIT

package sensitivity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPrisms indicates a non-positive prism count.
	ErrNoPrisms = errors.New("sensitivity: number of prisms must be > 0")

	// ErrDimensionMismatch indicates len(model) != p.
	ErrDimensionMismatch = errors.New("sensitivity: model length differs from prism count")

	// ErrLengthMismatch indicates sensor coordinate slices of different lengths.
	ErrLengthMismatch = errors.New("sensitivity: x, y and z must have the same length")

	// ErrNoSensors indicates an empty sensor set (a Jacobian needs at least one row).
	ErrNoSensors = errors.New("sensitivity: no sensors")
)

const opJacobian = "Jacobian"

func sensitivityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
