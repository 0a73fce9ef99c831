// SPDX-License-Identifier: MIT

// Package view previews a labelled lattice in the terminal with tcell.
// Each cell is drawn as a two-column block in its cluster colour, using the
// same palette and levels as the PNG export, with a status line underneath.
package view
