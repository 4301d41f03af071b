// SPDX-License-Identifier: MIT

package supersample

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveArea indicates an effective area side length <= 0.
	ErrNonPositiveArea = errors.New("supersample: effective area must be positive")

	// ErrLengthMismatch indicates coordinate or value slices of inconsistent length.
	ErrLengthMismatch = errors.New("supersample: inconsistent number of elements")

	// ErrEvenResolution indicates a resolution that is not a positive odd integer.
	ErrEvenResolution = errors.New("supersample: ns must be a positive odd integer")
)

const (
	opPoint2Grid = "Point2Grid"
	opBlockMean  = "BlockMean"
	opEvaluate   = "Evaluate"
)

func supersampleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
