// SPDX-License-Identifier: MIT

package cluster

import (
	"sort"

	"github.com/katalvlaran/percolate/lattice"
)

// noRank marks labels that were absorbed during convergence.
const noRank = -1

// Cluster is one label and the number of cells carrying it.
type Cluster struct {
	ID   int // surviving label, ≥ 1
	Size int // number of cells
}

// Ranking is the size order of the clusters of a converged grid.
// Clusters holds only non-empty clusters, largest first.
type Ranking struct {
	Clusters []Cluster
	MaxSize  int   // size of the largest cluster, 0 if there is none
	rank     []int // label -> position in Clusters, noRank if absorbed
}

// Rank tallies the clusters of a converged grid.
//
// Stage 1 (Prepare): one record {ID: label, Size: 0} for every label 1..L,
// where L is the largest label in the grid.
// Stage 2 (Count): one pass over the interior, incrementing the record of
// every non-wall cell.
// Stage 3 (Sort): SortClusters over all records; records of absorbed labels
// have size 0 and fall to the end.
// Stage 4 (Finalize): keep the non-empty prefix and map each label to its
// position in it.
//
// Complexity: O(N² + L log L) time, O(L) memory.
func Rank(g *lattice.Grid) *Ranking {
	maxLabel := g.MaxLabel()
	records := make([]Cluster, maxLabel)
	for i := range records {
		records[i] = Cluster{ID: i + 1}
	}

	n := g.Size()
	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			if v := g.At(x, y); v > lattice.Wall {
				records[v-1].Size++
			}
		}
	}

	SortClusters(records)

	count := 0
	for count < len(records) && records[count].Size > 0 {
		count++
	}

	rank := make([]int, maxLabel+1)
	for i := range rank {
		rank[i] = noRank
	}
	for pos, c := range records[:count] {
		rank[c.ID] = pos
	}

	r := &Ranking{Clusters: records[:count:count], rank: rank}
	if count > 0 {
		r.MaxSize = records[0].Size
	}

	return r
}

// SortClusters orders cs by Size descending, breaking ties by ID descending.
func SortClusters(cs []Cluster) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Size != cs[j].Size {
			return cs[i].Size > cs[j].Size
		}
		return cs[i].ID > cs[j].ID
	})
}

// Count returns the number of non-empty clusters.
func (r *Ranking) Count() int { return len(r.Clusters) }

// RankOf returns the 0-based size position of label. ok is false for Wall,
// for labels that were absorbed into another cluster, and for unknown labels.
func (r *Ranking) RankOf(label int) (pos int, ok bool) {
	if label <= lattice.Wall || label >= len(r.rank) {
		return 0, false
	}
	pos = r.rank[label]
	if pos == noRank {
		return 0, false
	}

	return pos, true
}

// DisplayLimit clamps a requested number of clusters to show to Count.
// requested ≤ 0 means "all clusters".
func (r *Ranking) DisplayLimit(requested int) int {
	if requested <= 0 || requested > r.Count() {
		return r.Count()
	}

	return requested
}
