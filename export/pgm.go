// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/lattice"
)

// pgmMagic is the plain (ASCII) graymap header token.
const pgmMagic = "P2"

// Level returns the quantized level of a cell value: the cluster rank when
// it is below limit, limit otherwise. Walls are always limit.
func Level(v int, r *cluster.Ranking, limit int) int {
	if v == lattice.Wall {
		return limit
	}
	pos, ok := r.RankOf(v)
	if !ok || pos >= limit {
		return limit
	}

	return pos
}

// ClusterLevels maps every interior cell of a converged grid to its level,
// top line (y = N) first. limit is the number of clusters shown and should
// come from Ranking.DisplayLimit.
// Complexity: O(N²).
func ClusterLevels(g *lattice.Grid, r *cluster.Ranking, limit int) [][]int {
	rows := g.Rows()
	for _, row := range rows {
		for i, v := range row {
			row[i] = Level(v, r, limit)
		}
	}

	return rows
}

// WritePGM writes the cluster levels of g as a plain graymap. The maximum
// gray value is max(limit, 1), so an image with no clusters is still valid.
func WritePGM(w io.Writer, g *lattice.Grid, r *cluster.Ranking, limit int) error {
	maxVal := limit
	if maxVal < 1 {
		maxVal = 1
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", pgmMagic, g.Size(), g.Size(), maxVal); err != nil {
		return err
	}
	if err := writePlane(bw, ClusterLevels(g, r, limit)); err != nil {
		return err
	}

	return bw.Flush()
}

// WritePGMFile creates (or truncates) path and writes the graymap to it.
func WritePGMFile(path string, g *lattice.Grid, r *cluster.Ranking, limit int) error {
	return writeFile(path, func(w io.Writer) error { return WritePGM(w, g, r, limit) })
}
