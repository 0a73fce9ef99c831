// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/lattice"
)

// ClusterImage draws the cluster levels of g as an N×N image, one pixel per
// cell, coloured from Palette(limit), top line first.
func ClusterImage(g *lattice.Grid, r *cluster.Ranking, limit int) *image.RGBA {
	n := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	pal := Palette(limit)
	for row, levels := range ClusterLevels(g, r, limit) {
		for col, lv := range levels {
			img.SetRGBA(col, row, pal[lv])
		}
	}

	return img
}

// WritePNG renders ClusterImage, enlarges it scale times with nearest-neighbour
// sampling so cells stay sharp, and saves it as PNG at path.
// Returns ErrBadScale for scale < 1 and ErrEmptyImage for an N = 0 grid.
func WritePNG(path string, g *lattice.Grid, r *cluster.Ranking, limit, scale int) error {
	if scale < 1 {
		return fmt.Errorf("WritePNG: got %d: %w", scale, ErrBadScale)
	}
	if g.Size() == 0 {
		return fmt.Errorf("WritePNG: %w", ErrEmptyImage)
	}

	var img image.Image = ClusterImage(g, r, limit)
	if scale > 1 {
		side := g.Size() * scale
		img = transform.Resize(img, side, side, transform.NearestNeighbor)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}

	return nil
}
