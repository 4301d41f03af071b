// SPDX-License-Identifier: MIT

package mesher

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a non-positive count or size, or mismatched input lengths.
	ErrBadSize = errors.New("mesher: invalid size/length")

	// ErrNeedRand indicates that a stochastic builder was called without an RNG.
	ErrNeedRand = errors.New("mesher: rng is required")
)

// Method tags used as error context prefixes.
const (
	methodSample        = "Sample"
	methodRandomGrains  = "RandomGrains"
	methodParametersSph = "ParametersSph"
)

// mesherErrorf wraps err with the builder name, preserving the sentinel for errors.Is.
func mesherErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
