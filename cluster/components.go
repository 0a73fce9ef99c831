// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/percolate/lattice"
)

// Cell is an interior coordinate.
type Cell struct {
	X, Y int
}

// Components finds every maximal 4-connected region of non-wall cells by
// breadth-first search, ignoring labels entirely. Components are returned in
// order of their first cell in scan order; cells inside a component are in
// BFS order.
// Time: O(N²). Memory: O(N²) for visited flags and output.
func Components(g *lattice.Grid) [][]Cell {
	n, s := g.Size(), g.Stride()
	c := g.Cells()
	seen := make([]bool, len(c))
	offsets := lattice.NeighbourOffsets()
	var comps [][]Cell

	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			i0 := x*s + y
			if c[i0] == lattice.Wall || seen[i0] {
				continue
			}
			queue := []Cell{{x, y}}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					vi := vx*s + vy
					// border cells are Wall, so no bounds check is needed
					if c[vi] == lattice.Wall || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, Cell{vx, vy})
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Verify checks a converged grid against Components: every component must
// carry a single label and no two components may share one.
// Returns an error wrapping ErrLabelMismatch on the first violation.
func Verify(g *lattice.Grid) error {
	owner := make(map[int]int)
	for idx, comp := range Components(g) {
		label := g.At(comp[0].X, comp[0].Y)
		for _, cell := range comp[1:] {
			if v := g.At(cell.X, cell.Y); v != label {
				return fmt.Errorf("Verify: component at (%d,%d) holds labels %d and %d: %w",
					comp[0].X, comp[0].Y, label, v, ErrLabelMismatch)
			}
		}
		if prev, dup := owner[label]; dup {
			return fmt.Errorf("Verify: label %d used by components %d and %d: %w",
				label, prev, idx, ErrLabelMismatch)
		}
		owner[label] = idx
	}

	return nil
}
