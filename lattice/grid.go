// SPDX-License-Identifier: MIT

package lattice

// Wall marks an occupied, non-traversable cell. It is also the value of every
// border cell. Labels are always ≥ 1, so Wall never wins a max relaxation.
const Wall = 0

// Grid is an N×N lattice bordered by Wall cells on every side.
// cells holds (N+2)² values in x-major order: index = x*(N+2) + y.
type Grid struct {
	n      int
	stride int
	cells  []int
}

// NewGrid allocates an n×n grid whose cells (interior and border) are all Wall.
// Returns ErrBadSize if n < 0. n == 0 is a valid, empty lattice.
// Complexity: O(n²) time and memory.
func NewGrid(n int) (*Grid, error) {
	if n < 0 {
		return nil, latticeErrorf("NewGrid", ErrBadSize, "got %d", n)
	}
	stride := n + 2

	return &Grid{n: n, stride: stride, cells: make([]int, stride*stride)}, nil
}

// Size returns the logical dimension N.
func (g *Grid) Size() int { return g.n }

// Stride returns N+2, the distance between consecutive x in Cells.
func (g *Grid) Stride() int { return g.stride }

// Cells exposes the backing slice, border included, for tight loops in the
// cluster package. Callers must keep the border at Wall.
func (g *Grid) Cells() []int { return g.cells }

// Index maps (x,y), border included, to the offset in Cells.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return x*g.stride + y
}

// InBounds reports whether (x,y) addresses an interior cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 1 && x <= g.n && y >= 1 && y <= g.n
}

// At returns the value at (x,y). Border coordinates (0 or N+1) are allowed and
// always yield Wall; anything further out panics like a slice index would.
func (g *Grid) At(x, y int) int {
	return g.cells[g.Index(x, y)]
}

// Set stores v at the interior cell (x,y).
// Returns ErrOutOfRange for border or outside coordinates, so the sentinel
// frame can never be overwritten.
func (g *Grid) Set(x, y, v int) error {
	if !g.InBounds(x, y) {
		return latticeErrorf("Set", ErrOutOfRange, "(%d,%d) not in 1..%d", x, y, g.n)
	}
	g.cells[g.Index(x, y)] = v

	return nil
}

// CountOpen returns the number of interior cells that are not Wall.
// Complexity: O(N²).
func (g *Grid) CountOpen() int {
	open := 0
	for x := 1; x <= g.n; x++ {
		row := g.cells[x*g.stride+1 : x*g.stride+g.n+1]
		for _, v := range row {
			if v != Wall {
				open++
			}
		}
	}

	return open
}

// Density returns the fraction of interior cells that are Wall.
// An empty lattice has density 0.
func (g *Grid) Density() float64 {
	total := g.n * g.n
	if total == 0 {
		return 0
	}

	return 1 - float64(g.CountOpen())/float64(total)
}

// MaxLabel returns the largest value held by any interior cell (Wall if none).
func (g *Grid) MaxLabel() int {
	best := Wall
	for _, v := range g.cells {
		if v > best {
			best = v
		}
	}

	return best
}

// Clone returns a deep copy of g.
// Complexity: O(N²) time and memory.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)

	return &Grid{n: g.n, stride: g.stride, cells: cells}
}

// Equal reports whether g and o have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.n != o.n {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// neighbourOffsets lists the 4-neighbourhood as (dx,dy) pairs in the order
// the relaxation visits them: x-1, x+1, y-1, y+1.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighbourOffsets returns the 4-connectivity offsets.
func NeighbourOffsets() [4][2]int { return neighbourOffsets }
