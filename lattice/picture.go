// SPDX-License-Identifier: MIT

package lattice

// FromRows builds a grid from a picture: rows[0] is the top line (y = N) and
// rows[k][x-1] is the cell (x, N-k). Values are copied verbatim, so 0 is Wall
// and anything else is a label.
// Returns ErrEmptyGrid if rows is empty or a row is empty, and
// ErrNonRectangular unless every row has len(rows) entries.
// Complexity: O(N²) time and memory.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(n)
	if err != nil {
		return nil, err
	}
	for k, row := range rows {
		y := n - k
		for i, v := range row {
			g.cells[g.Index(i+1, y)] = v
		}
	}

	return g, nil
}

// Rows renders the interior as a picture in the FromRows layout.
// FromRows(g.Rows()) reproduces g for any N ≥ 1.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for k := range rows {
		y := g.n - k
		row := make([]int, g.n)
		for x := 1; x <= g.n; x++ {
			row[x-1] = g.At(x, y)
		}
		rows[k] = row
	}

	return rows
}
