// SPDX-License-Identifier: MIT

// Package export serializes a finished lattice.Grid.
//
// Formats:
//
//   - Raw (.dat): one text line per y from N down to 1, each cell printed as
//     " %4d". Lossless; ReadRaw parses it back.
//   - PGM (.pgm): plain "P2" graymap of the cluster levels: width and height
//     N, maximum value max(M,1), then the level plane in the raw layout.
//   - PNG: the same level plane drawn with Palette colours and optionally
//     upscaled, written through bild/imgio.
//
// Levels:
//
// For a display limit M, a cell's level is its cluster rank when that rank
// is below M, and M otherwise. Walls also map to M, so walls and every
// cluster beyond the first M share the last level.
package export
