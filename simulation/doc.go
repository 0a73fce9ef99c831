// SPDX-License-Identifier: MIT

// Package simulation runs one percolation experiment end to end:
//
//	Build → Converge → Percolates → raw dump → Rank → PGM (→ PNG)
//
// Config is an immutable value; Run takes it together with a *slog.Logger and
// reports progress (density, per-round changes, percolation verdict, cluster
// summary, files written) as structured log records. The finished state is
// returned in a Result for further inspection or display.
package simulation
