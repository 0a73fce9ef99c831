// SPDX-License-Identifier: MIT

package lattice

import "math"

// Probability bounds accepted by Build.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Build allocates an n×n grid and fills it randomly: each interior cell, in
// scan order (x outer, y inner), takes one draw from the configured Source.
// A draw below rho makes the cell Wall; otherwise the cell receives the next
// label, counting up from 1. Build returns the grid and K, the number of
// non-wall cells, so labels are exactly 1..K and pairwise distinct.
//
// rho = 0 leaves every cell open; rho = 1 walls every cell, since draws lie
// in [0,1).
//
// Errors: ErrBadSize, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n²) time and memory, n² draws.
func Build(n int, rho float64, opts ...Option) (*Grid, int, error) {
	if n < 0 {
		return nil, 0, latticeErrorf("Build", ErrBadSize, "got %d", n)
	}
	if err := validateProbability("Build", rho); err != nil {
		return nil, 0, err
	}
	cfg := newBuildConfig(opts...)
	if cfg.src == nil {
		return nil, 0, latticeErrorf("Build", ErrNeedRandSource, "use WithSeed or WithSource")
	}

	g, err := NewGrid(n)
	if err != nil {
		return nil, 0, err
	}
	open := 0
	for x := 1; x <= n; x++ {
		base := x * g.stride
		for y := 1; y <= n; y++ {
			if cfg.src.Float64() < rho {
				g.cells[base+y] = Wall
				continue
			}
			open++
			g.cells[base+y] = open
		}
	}

	return g, open, nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return latticeErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
