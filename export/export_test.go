package export_test

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/export"
	"github.com/katalvlaran/percolate/lattice"
)

// converged returns the 4×4 example lattice after label propagation:
//
//	4 4 0 7
//	0 4 0 7
//	9 0 0 7
//	9 9 0 0
func converged(t *testing.T) (*lattice.Grid, *cluster.Ranking) {
	t.Helper()
	g, err := lattice.FromRows([][]int{
		{1, 2, 0, 3},
		{0, 4, 0, 5},
		{6, 0, 0, 7},
		{8, 9, 0, 0},
	})
	require.NoError(t, err)
	cluster.Converge(g)
	return g, cluster.Rank(g)
}

func TestWriteRaw_Format(t *testing.T) {
	g, err := lattice.FromRows([][]int{
		{3, 0},
		{3, 1234},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteRaw(&buf, g))
	assert.Equal(t, "    3    0\n    3 1234\n", buf.String())
}

func TestRaw_RoundTrip(t *testing.T) {
	g, _, err := lattice.Build(30, 0.4, lattice.WithSeed(1564))
	require.NoError(t, err)
	cluster.Converge(g)

	var buf bytes.Buffer
	require.NoError(t, export.WriteRaw(&buf, g))
	back, err := export.ReadRaw(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestRaw_RoundTripFile(t *testing.T) {
	g, _ := converged(t)
	path := filepath.Join(t.TempDir(), "map.dat")
	require.NoError(t, export.WriteRawFile(path, g))

	back, err := export.ReadRawFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Rows(), back.Rows())
}

func TestReadRaw_Edges(t *testing.T) {
	g, err := export.ReadRaw(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Size())

	_, err = export.ReadRaw(strings.NewReader("    1    x\n    2    3\n"))
	assert.ErrorIs(t, err, export.ErrMalformed)

	_, err = export.ReadRaw(strings.NewReader("    1    2\n    3\n"))
	assert.ErrorIs(t, err, lattice.ErrNonRectangular)

	_, err = export.ReadRawFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClusterLevels(t *testing.T) {
	g, r := converged(t)
	require.Equal(t, []cluster.Cluster{{ID: 9, Size: 3}, {ID: 7, Size: 3}, {ID: 4, Size: 3}}, r.Clusters)

	assert.Equal(t, [][]int{
		{2, 2, 2, 1},
		{2, 2, 2, 1},
		{0, 2, 2, 1},
		{0, 0, 2, 2},
	}, export.ClusterLevels(g, r, 2))

	all := r.DisplayLimit(0)
	assert.Equal(t, [][]int{
		{2, 2, 3, 1},
		{3, 2, 3, 1},
		{0, 3, 3, 1},
		{0, 0, 3, 3},
	}, export.ClusterLevels(g, r, all))
}

func TestWritePGM(t *testing.T) {
	g, r := converged(t)
	var buf bytes.Buffer
	require.NoError(t, export.WritePGM(&buf, g, r, 2))

	want := "P2\n4 4\n2\n" +
		"    2    2    2    1\n" +
		"    2    2    2    1\n" +
		"    0    2    2    1\n" +
		"    0    0    2    2\n"
	assert.Equal(t, want, buf.String())
}

func TestWritePGM_NoClusters(t *testing.T) {
	g, _, err := lattice.Build(2, 1, lattice.WithSeed(1))
	require.NoError(t, err)
	r := cluster.Rank(g)
	limit := r.DisplayLimit(0)
	require.Equal(t, 0, limit)

	var buf bytes.Buffer
	require.NoError(t, export.WritePGM(&buf, g, r, limit))
	assert.Equal(t, "P2\n2 2\n1\n    0    0\n    0    0\n", buf.String())

	empty, _ := lattice.NewGrid(0)
	buf.Reset()
	require.NoError(t, export.WritePGM(&buf, empty, cluster.Rank(empty), 0))
	assert.Equal(t, "P2\n0 0\n1\n", buf.String())
}

func TestWritePGMFile(t *testing.T) {
	g, r := converged(t)
	path := filepath.Join(t.TempDir(), "map.pgm")
	require.NoError(t, export.WritePGMFile(path, g, r, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P2\n4 4\n3\n"))

	err = export.WritePGMFile(filepath.Join(t.TempDir(), "no", "such", "dir.pgm"), g, r, 3)
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, []color.RGBA{export.Background}, export.Palette(0))
	assert.Equal(t, []color.RGBA{export.Background}, export.Palette(-3))

	pal := export.Palette(4)
	require.Len(t, pal, 5)
	assert.Equal(t, export.Background, pal[4])
	seen := make(map[color.RGBA]bool)
	for _, c := range pal {
		assert.Equal(t, uint8(0xff), c.A)
		assert.False(t, seen[c], "duplicate colour %v", c)
		seen[c] = true
	}
}

func TestWritePNG(t *testing.T) {
	g, r := converged(t)
	limit := r.DisplayLimit(0)
	path := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, export.WritePNG(path, g, r, limit, 3))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	pal := export.Palette(limit)
	at := func(x, y int) color.RGBA {
		return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	}
	// top-left cell is label 4 (rank 2), bottom-left is label 9 (rank 0)
	// sample block centres: each cell is a 3×3 block
	assert.Equal(t, pal[2], at(1, 1))
	assert.Equal(t, pal[2], at(4, 1))
	assert.Equal(t, pal[0], at(1, 10))
	assert.Equal(t, pal[1], at(10, 1))
	assert.Equal(t, export.Background, at(7, 1), "wall")
}

func TestWritePNG_Errors(t *testing.T) {
	g, r := converged(t)
	dir := t.TempDir()
	assert.ErrorIs(t, export.WritePNG(filepath.Join(dir, "a.png"), g, r, 1, 0), export.ErrBadScale)

	empty, _ := lattice.NewGrid(0)
	assert.ErrorIs(t, export.WritePNG(filepath.Join(dir, "b.png"), empty, cluster.Rank(empty), 0, 1), export.ErrEmptyImage)
}
