// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrNotConverged indicates a round cap was reached before a quiescent round.
	ErrNotConverged = errors.New("cluster: labels did not converge")
	// ErrLabelMismatch indicates labels that disagree with 4-connectivity.
	ErrLabelMismatch = errors.New("cluster: labels do not match components")
)
