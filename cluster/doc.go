// SPDX-License-Identifier: MIT

// Package cluster labels connected regions of a lattice.Grid, tests it for
// percolation and ranks the resulting clusters by size.
//
// What:
//
//   - Relax / Converge: max-label propagation over the 4-neighbourhood until
//     a full round changes nothing. Each component ends up carrying the largest
//     label originally assigned inside it.
//   - Percolates: looks for a label present on both the top (y = N) and the
//     bottom (y = 1) edge.
//   - Rank: tallies cluster sizes, sorts by size then id (both descending) and
//     maps every surviving label to its 0-based position.
//   - Components / Verify: breadth-first components, used to cross-check the
//     labelling produced by Converge.
//
// Update order:
//
// A round visits cells x outer, y inner and writes results back in place, so
// a cell may already see neighbours updated earlier in the same round. Round
// counts and final labels depend on this order and are reproducible.
//
// Complexity:
//
//   - Relax:      O(N²) per round.
//   - Converge:   O(R×N²), R bounded by the longest path inside a cluster.
//   - Percolates: O(N²) worst case.
//   - Rank:       O(N² + L log L), L = largest label.
//   - Components: O(N²).
//
// Errors:
//
//   - ErrNotConverged: ConvergeChecked hit its round cap.
//   - ErrLabelMismatch: Verify found a component with two labels, or two
//     components sharing one.
package cluster
