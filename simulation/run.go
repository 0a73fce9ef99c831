// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/export"
	"github.com/katalvlaran/percolate/lattice"
)

// Result is the state left by a run.
type Result struct {
	Grid        *lattice.Grid    // converged lattice
	Empty       int              // K, non-wall cells
	Rounds      int              // relaxation rounds, the quiescent one included
	Percolating int              // spanning cluster label, 0 if none
	Ranking     *cluster.Ranking // clusters by size
	Displayed   int              // clusters shown in the images
}

// Run executes the pipeline described by cfg. A nil logger discards output.
// Stages run strictly one after another; the first failing stage aborts the
// run and its error is returned.
func Run(cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Info("parameters",
		"rho", cfg.Rho, "size", cfg.Size, "seed", cfg.Seed,
		"data", cfg.DataFile, "perc", cfg.PercFile, "max_clusters", cfg.MaxClusters)

	g, empty, err := lattice.Build(cfg.Size, cfg.Rho, lattice.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("build lattice: %w", err)
	}
	logger.Info("lattice filled", "rho", cfg.Rho, "actual_density", g.Density(), "empty_cells", empty)

	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	rounds := cluster.Converge(g, cluster.WithOnRound(func(round, changes int) {
		if debug {
			logger.Debug("relaxation round", "round", round, "changes", changes)
		}
	}))
	logger.Info("labels converged", "rounds", rounds)

	res := &Result{Grid: g, Empty: empty, Rounds: rounds}

	res.Percolating = cluster.Percolates(g)
	if res.Percolating != 0 {
		logger.Info("cluster percolates", "cluster", res.Percolating)
	} else {
		logger.Info("cluster does not percolate")
	}

	if cfg.DataFile != "" {
		logger.Info("writing raw grid", "path", cfg.DataFile)
		if err := export.WriteRawFile(cfg.DataFile, g); err != nil {
			return nil, err
		}
	}

	res.Ranking = cluster.Rank(g)
	res.Displayed = res.Ranking.DisplayLimit(cfg.MaxClusters)
	logger.Info("clusters ranked", "clusters", res.Ranking.Count(), "max_size", res.Ranking.MaxSize)
	logDisplay(logger, res.Displayed, res.Ranking.Count())

	if cfg.PercFile != "" {
		logger.Info("writing cluster image", "path", cfg.PercFile, "format", "pgm")
		if err := export.WritePGMFile(cfg.PercFile, g, res.Ranking, res.Displayed); err != nil {
			return nil, err
		}
	}

	if cfg.PNGFile != "" {
		if g.Size() == 0 {
			logger.Warn("skipping png export for an empty lattice", "path", cfg.PNGFile)
		} else {
			logger.Info("writing cluster image", "path", cfg.PNGFile, "format", "png", "scale", cfg.PNGScale)
			if err := export.WritePNG(cfg.PNGFile, g, res.Ranking, res.Displayed, cfg.PNGScale); err != nil {
				return nil, err
			}
		}
	}

	if cfg.Verify {
		if err := cluster.Verify(g); err != nil {
			return nil, err
		}
		logger.Info("labels verified against components")
	}

	return res, nil
}

func logDisplay(logger *slog.Logger, shown, total int) {
	switch {
	case shown == 1:
		logger.Info("displaying the largest cluster only")
	case shown == total:
		logger.Info("displaying all clusters", "clusters", total)
	default:
		logger.Info("displaying the largest clusters", "clusters", shown)
	}
}
