// SPDX-License-Identifier: MIT

package cluster

import "github.com/katalvlaran/percolate/lattice"

// Percolates reports a cluster spanning the top edge (y = N) to the bottom
// edge (y = 1) of a converged grid. Top cells are tried left to right; for
// each open one the bottom edge is scanned left to right for the same label.
// The first label found is returned, or 0 when no top cluster reaches the
// bottom. Only one spanning cluster is ever reported, even if several exist.
// Complexity: O(N²) worst case, read-only.
func Percolates(g *lattice.Grid) int {
	n := g.Size()
	for top := 1; top <= n; top++ {
		label := g.At(top, n)
		if label == lattice.Wall {
			continue
		}
		for bottom := 1; bottom <= n; bottom++ {
			if g.At(bottom, 1) == label {
				return label
			}
		}
	}

	return 0
}
