// SPDX-License-Identifier: MIT

package simulation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates a Config that violates its documented ranges.
var ErrInvalidConfig = errors.New("simulation: invalid config")

// Defaults used by DefaultConfig.
const (
	DefaultSize     = 20
	DefaultSeed     = 1564
	DefaultRho      = 0.4
	DefaultDataFile = "map.dat"
	DefaultPercFile = "map.pgm"
	DefaultPNGScale = 8
)

// Config describes a single run. Empty file names disable that output.
type Config struct {
	Size        int     // lattice dimension N, ≥ 0
	Rho         float64 // probability of a cell being a wall, in [0,1]
	Seed        int64   // random seed
	MaxClusters int     // clusters to show in the images; ≤ 0 shows all
	DataFile    string  // raw grid dump
	PercFile    string  // PGM cluster image
	PNGFile     string  // optional colour PNG
	PNGScale    int     // PNG pixels per cell, ≥ 1
	Verify      bool    // cross-check labels against BFS components
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Size:     DefaultSize,
		Rho:      DefaultRho,
		Seed:     DefaultSeed,
		DataFile: DefaultDataFile,
		PercFile: DefaultPercFile,
		PNGScale: DefaultPNGScale,
	}
}

// Validate checks the ranges documented on Config.
func (c Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("size must be ≥ 0, got %d: %w", c.Size, ErrInvalidConfig)
	}
	if math.IsNaN(c.Rho) || c.Rho < 0 || c.Rho > 1 {
		return fmt.Errorf("rho must be in [0,1], got %v: %w", c.Rho, ErrInvalidConfig)
	}
	if c.PNGFile != "" && c.PNGScale < 1 {
		return fmt.Errorf("png scale must be ≥ 1, got %d: %w", c.PNGScale, ErrInvalidConfig)
	}

	return nil
}
