// SPDX-License-Identifier: MIT

package residual

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates no data.
	ErrEmpty = errors.New("residual: empty data")

	// ErrLengthMismatch indicates observed and predicted of different lengths.
	ErrLengthMismatch = errors.New("residual: observed and predicted lengths differ")

	// ErrZeroSpread indicates a zero standard deviation, so residuals cannot be normalized.
	ErrZeroSpread = errors.New("residual: zero spread")
)

const opCompute = "Compute"

func residualErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
