// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownComponent indicates a Component outside XX..ZZ.
	ErrUnknownComponent = errors.New("kernel: unknown kernel component")

	// ErrUnknownField indicates a Field outside Bz..By.
	ErrUnknownField = errors.New("kernel: unknown field component")

	// ErrLengthMismatch indicates coordinate slices of different lengths.
	ErrLengthMismatch = errors.New("kernel: x, y and z must have the same length")
)

const (
	opPrismKernel  = "PrismKernel"
	opSphereKernel = "SphereKernel"
	opPrismField   = "PrismField"
	opSphereField  = "SphereField"
)

func kernelErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validatePoints checks that the three coordinate slices are parallel.
func validatePoints(x, y, z []float64) error {
	if len(x) != len(y) || len(x) != len(z) {
		return ErrLengthMismatch
	}
	return nil
}
