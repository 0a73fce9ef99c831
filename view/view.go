// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/export"
	"github.com/katalvlaran/percolate/lattice"
)

// cellWidth is the number of terminal columns per lattice cell; two columns
// make a cell roughly square in most fonts.
const cellWidth = 2

// View is a read-only snapshot of a finished run.
type View struct {
	Grid        *lattice.Grid
	Ranking     *cluster.Ranking
	Limit       int // clusters shown in colour
	Percolating int // label reported by cluster.Percolates, 0 if none
}

// Status is the text of the line drawn under the lattice.
func (v *View) Status() string {
	perc := "no"
	if v.Percolating != 0 {
		perc = fmt.Sprintf("cluster %d", v.Percolating)
	}

	return fmt.Sprintf("N=%d clusters=%d shown=%d largest=%d percolates=%s  [q] quit",
		v.Grid.Size(), v.Ranking.Count(), v.Limit, v.Ranking.MaxSize, perc)
}

// Draw paints the lattice from the top-left corner, clipped to the screen,
// followed by the status line. It does not call Show.
func (v *View) Draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()

	pal := export.Palette(v.Limit)
	styles := make([]tcell.Style, len(pal))
	for i, c := range pal {
		styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}

	levels := export.ClusterLevels(v.Grid, v.Ranking, v.Limit)
	for row, line := range levels {
		if row >= h {
			break
		}
		for col, lv := range line {
			x := col * cellWidth
			if x >= w {
				break
			}
			for dx := 0; dx < cellWidth && x+dx < w; dx++ {
				screen.SetContent(x+dx, row, ' ', nil, styles[lv])
			}
		}
	}

	if row := len(levels); row < h {
		for i, ch := range []rune(v.Status()) {
			if i >= w {
				break
			}
			screen.SetContent(i, row, ch, nil, tcell.StyleDefault)
		}
	}
}

// Run draws the view and blocks handling events until the user presses q,
// Esc or Ctrl-C, or the screen is finalized. Resizes trigger a redraw.
func (v *View) Run(screen tcell.Screen) {
	v.Draw(screen)
	screen.Show()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			v.Draw(screen)
			screen.Show()
		case *tcell.EventKey:
			if isQuit(ev) {
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}
