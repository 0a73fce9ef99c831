// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice operations. Match them with errors.Is.
var (
	// ErrBadSize indicates a negative grid dimension.
	ErrBadSize = errors.New("lattice: dimension must be ≥ 0")
	// ErrInvalidProbability indicates an occupation probability outside [0,1].
	ErrInvalidProbability = errors.New("lattice: probability out of range")
	// ErrNeedRandSource indicates Build was called without a random source.
	ErrNeedRandSource = errors.New("lattice: random source is required")
	// ErrEmptyGrid indicates a picture without rows, or with empty rows.
	ErrEmptyGrid = errors.New("lattice: input grid must have at least one row and one column")
	// ErrNonRectangular indicates a picture that is not N×N.
	ErrNonRectangular = errors.New("lattice: rows must be square")
	// ErrOutOfRange indicates coordinates outside the interior 1..N.
	ErrOutOfRange = errors.New("lattice: coordinates out of range")
)

// latticeErrorf prefixes err with the calling method, keeping the sentinel
// reachable through errors.Is.
func latticeErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
