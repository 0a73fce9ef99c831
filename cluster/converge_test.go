package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/lattice"
)

func mustRows(t *testing.T, rows [][]int) *lattice.Grid {
	t.Helper()
	g, err := lattice.FromRows(rows)
	require.NoError(t, err)
	return g
}

func mustBuild(t testing.TB, n int, rho float64, seed int64) *lattice.Grid {
	t.Helper()
	g, _, err := lattice.Build(n, rho, lattice.WithSeed(seed))
	require.NoError(t, err)
	return g
}

func TestConverge_TwoColumns(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0, 4},
		{2, 0, 5},
		{3, 0, 6},
	})
	rounds := cluster.Converge(g)

	assert.Equal(t, 2, rounds)
	assert.Equal(t, [][]int{
		{3, 0, 6},
		{3, 0, 6},
		{3, 0, 6},
	}, g.Rows())
}

// Labels travel in the scan direction within a round but need a new round
// for every step against it.
func TestConverge_InPlaceOrder(t *testing.T) {
	// single column, largest label at the top (y = 3)
	col := mustRows(t, [][]int{
		{3, 0, 0},
		{2, 0, 0},
		{1, 0, 0},
	})
	var log [][2]int
	rounds := cluster.Converge(col, cluster.WithOnRound(func(round, changes int) {
		log = append(log, [2]int{round, changes})
	}))
	assert.Equal(t, 3, rounds)
	assert.Equal(t, [][2]int{{1, 2}, {2, 1}, {3, 0}}, log)

	// largest label at the bottom: one sweep carries it all the way up
	col = mustRows(t, [][]int{
		{1, 0, 0},
		{2, 0, 0},
		{3, 0, 0},
	})
	assert.Equal(t, 2, cluster.Converge(col))
	assert.Equal(t, 3, col.At(1, 3))
}

func TestConverge_Fixpoint(t *testing.T) {
	g := mustBuild(t, 50, 0.4, 1564)
	cluster.Converge(g)
	snapshot := g.Clone()

	assert.Equal(t, 0, cluster.Relax(g))
	assert.Equal(t, 1, cluster.Converge(g))
	assert.True(t, snapshot.Equal(g))
}

func TestRelax_Monotone(t *testing.T) {
	g := mustBuild(t, 40, 0.35, 99)
	for round := 0; round < 5; round++ {
		before := g.Clone()
		cluster.Relax(g)
		for x := 1; x <= g.Size(); x++ {
			for y := 1; y <= g.Size(); y++ {
				require.GreaterOrEqual(t, g.At(x, y), before.At(x, y), "(%d,%d) round %d", x, y, round)
				if before.At(x, y) == lattice.Wall {
					require.Equal(t, lattice.Wall, g.At(x, y))
				}
			}
		}
	}
}

func TestConverge_Degenerate(t *testing.T) {
	empty, err := lattice.NewGrid(0)
	require.NoError(t, err)
	assert.Equal(t, 1, cluster.Converge(empty))

	walls := mustBuild(t, 10, 1, 3)
	var changes []int
	rounds := cluster.Converge(walls, cluster.WithOnRound(func(_, c int) { changes = append(changes, c) }))
	assert.Equal(t, 1, rounds)
	assert.Equal(t, []int{0}, changes)
}

func TestConvergeChecked_Cap(t *testing.T) {
	col := mustRows(t, [][]int{
		{3, 0, 0},
		{2, 0, 0},
		{1, 0, 0},
	})
	rounds, err := cluster.ConvergeChecked(col, cluster.WithMaxRounds(1))
	assert.ErrorIs(t, err, cluster.ErrNotConverged)
	assert.Equal(t, 1, rounds)

	rounds, err = cluster.ConvergeChecked(col, cluster.WithMaxRounds(10))
	assert.NoError(t, err)
	assert.Equal(t, 2, rounds, "resumes from the partially relaxed state")
}

func TestConverge_DeterministicAcrossRuns(t *testing.T) {
	a := mustBuild(t, 60, 0.4, 2024)
	b := mustBuild(t, 60, 0.4, 2024)
	ra := cluster.Converge(a)
	rb := cluster.Converge(b)
	assert.Equal(t, ra, rb)
	assert.True(t, a.Equal(b))
}
