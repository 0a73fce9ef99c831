// SPDX-License-Identifier: MIT

package export

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette saturation and value; hue is spread evenly around the wheel.
const (
	paletteSaturation = 0.75
	paletteValue      = 0.95
)

// Background is the colour of level M: walls and undisplayed clusters.
var Background = color.RGBA{A: 0xff}

// Palette returns limit+1 colours: one distinct hue per displayed rank
// (rank 0 first) followed by Background for level limit.
func Palette(limit int) []color.RGBA {
	if limit < 0 {
		limit = 0
	}
	out := make([]color.RGBA, limit+1)
	for i := 0; i < limit; i++ {
		hue := 360 * float64(i) / float64(limit)
		r, g, b := colorful.Hsv(hue, paletteSaturation, paletteValue).Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	out[limit] = Background

	return out
}
