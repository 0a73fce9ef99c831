// SPDX-License-Identifier: MIT

// Package lattice holds the bordered square grid used by the percolation
// pipeline and the random builder that populates it.
//
// What:
//
//   - Grid is an N×N lattice padded with one sentinel cell on every side, so
//     neighbour lookups at the edge never need bounds checks.
//   - Every interior cell is either Wall (occupied) or a positive label.
//   - Build marks each interior cell as Wall with probability rho and gives
//     the remaining cells the labels 1..K in scan order.
//
// Coordinates:
//
//   - Cells are addressed (x, y) with 1 ≤ x, y ≤ N; 0 and N+1 are border.
//   - Storage is x-major: the scan order is x outer, y inner.
//   - Pictures (FromRows, Rows, and every text export) list y = N first, so
//     y grows upward and x grows to the right.
//
// Determinism:
//
//   - Build consumes exactly N×N draws from its Source, in scan order.
//     WithSeed(s) therefore reproduces the same grid for the same (N, rho, s).
//
// Errors:
//
//   - ErrBadSize: negative dimension.
//   - ErrInvalidProbability: rho outside [0,1] or NaN.
//   - ErrNeedRandSource: Build called without WithSeed/WithSource.
//   - ErrEmptyGrid, ErrNonRectangular: malformed picture passed to FromRows.
//   - ErrOutOfRange: Set outside the interior.
package lattice
