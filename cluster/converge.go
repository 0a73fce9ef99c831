// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/percolate/lattice"
)

// Option configures Converge.
type Option func(*convergeOptions)

type convergeOptions struct {
	onRound   func(round, changes int)
	maxRounds int // 0 means unbounded
}

// WithOnRound registers a hook invoked after every round with the 1-based
// round number and the number of cells that changed in it.
func WithOnRound(fn func(round, changes int)) Option {
	return func(o *convergeOptions) {
		o.onRound = fn
	}
}

// WithMaxRounds stops Converge after n rounds even if labels are still moving.
// n ≤ 0 removes the cap.
func WithMaxRounds(n int) Option {
	return func(o *convergeOptions) {
		o.maxRounds = n
	}
}

// Relax performs one round: every non-wall cell, visited x outer and y inner,
// becomes the maximum of itself and its four neighbours, written in place.
// Returns the number of cells whose value increased.
// Values never decrease, and Wall cells are left alone.
// Complexity: O(N²).
func Relax(g *lattice.Grid) int {
	n, s := g.Size(), g.Stride()
	c := g.Cells()
	changes := 0
	for x := 1; x <= n; x++ {
		for i := x*s + 1; i <= x*s+n; i++ {
			old := c[i]
			if old == lattice.Wall {
				continue
			}
			best := old
			if c[i-s] > best {
				best = c[i-s]
			}
			if c[i+s] > best {
				best = c[i+s]
			}
			if c[i-1] > best {
				best = c[i-1]
			}
			if c[i+1] > best {
				best = c[i+1]
			}
			if best != old {
				c[i] = best
				changes++
			}
		}
	}

	return changes
}

// Converge repeats Relax until a round reports zero changes and returns the
// number of rounds executed, the quiescent one included. A grid that is
// already a fixpoint (for example all walls) therefore takes exactly 1 round.
//
// Termination is guaranteed without a cap: each change strictly raises a cell
// towards the finite maximum label of its component.
func Converge(g *lattice.Grid, opts ...Option) int {
	rounds, _ := converge(g, opts...)

	return rounds
}

// ConvergeChecked is Converge with an error when WithMaxRounds cut it short.
func ConvergeChecked(g *lattice.Grid, opts ...Option) (int, error) {
	rounds, settled := converge(g, opts...)
	if !settled {
		return rounds, fmt.Errorf("Converge: stopped after %d rounds: %w", rounds, ErrNotConverged)
	}

	return rounds, nil
}

func converge(g *lattice.Grid, opts ...Option) (int, bool) {
	var o convergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	for round := 1; ; round++ {
		changes := Relax(g)
		if o.onRound != nil {
			o.onRound(round, changes)
		}
		if changes == 0 {
			return round, true
		}
		if o.maxRounds > 0 && round >= o.maxRounds {
			return round, false
		}
	}
}
