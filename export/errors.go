// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrMalformed indicates a raw grid file that does not parse as integers.
	ErrMalformed = errors.New("export: malformed raw grid")
	// ErrEmptyImage indicates an attempt to encode a 0×0 image.
	ErrEmptyImage = errors.New("export: nothing to draw on an empty lattice")
	// ErrBadScale indicates a PNG scale factor below 1.
	ErrBadScale = errors.New("export: scale must be ≥ 1")
)
