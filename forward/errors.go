// SPDX-License-Identifier: MIT

package forward

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates sensor coordinate slices of different lengths.
var ErrLengthMismatch = errors.New("forward: x, y and z must have the same length")

const opField = "Field"

func forwardErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
