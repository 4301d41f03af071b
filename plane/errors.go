// SPDX-License-Identifier: MIT

package plane

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlane indicates an Alpha outside {0,1,2,3}.
	ErrInvalidPlane = errors.New("plane: alpha must be equal to 0, 1, 2 or 3")

	// ErrBadShape indicates a non-positive grid shape or an inverted area.
	ErrBadShape = errors.New("plane: invalid grid shape or area")

	// ErrBadGeometry indicates a negative stand-off or sample size.
	ErrBadGeometry = errors.New("plane: stand-off and sample size must be non-negative")
)

const (
	opRegular    = "Regular"
	opCoordPlane = "CoordPlane"
)

func planeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
