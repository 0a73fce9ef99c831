// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/simulation"
	"github.com/katalvlaran/percolate/view"
)

// Flag names double as viper keys and, upper-cased, as environment suffixes.
const (
	flagGrid        = "grid"
	flagSeed        = "seed"
	flagRho         = "rho"
	flagMaxClusters = "max-clusters"
	flagData        = "data"
	flagPerc        = "perc"
	flagPNG         = "png"
	flagScale       = "scale"
	flagView        = "view"
	flagVerify      = "verify"
	flagLogLevel    = "log-level"
	flagConfig      = "config"

	envPrefix = "PERCOLATE"
)

// newRootCmd builds the percolate command. Logs go to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "percolate",
		Short:         "Simulate site percolation on a square lattice",
		Args:          cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(logOut, v.GetString(flagLogLevel))
			if err != nil {
				return err
			}
			res, err := simulation.Run(configFrom(v), logger)
			if err != nil {
				logger.Error("run failed", "err", err)
				return err
			}
			if v.GetBool(flagView) {
				return show(res)
			}
			return nil
		},
	}

	def := simulation.DefaultConfig()
	f := cmd.Flags()
	f.IntP(flagGrid, "g", def.Size, "lattice dimension N")
	f.Int64P(flagSeed, "s", def.Seed, "random seed")
	f.Float64P(flagRho, "r", def.Rho, "probability that a cell is a wall")
	f.IntP(flagMaxClusters, "m", def.MaxClusters, "clusters to show in the images (≤ 0 shows all)")
	f.StringP(flagData, "d", def.DataFile, "raw grid output file (empty to skip)")
	f.StringP(flagPerc, "p", def.PercFile, "PGM cluster image output file (empty to skip)")
	f.String(flagPNG, "", "colour PNG output file (empty to skip)")
	f.Int(flagScale, def.PNGScale, "PNG pixels per cell")
	f.Bool(flagView, false, "preview the clusters in the terminal after the run")
	f.Bool(flagVerify, false, "cross-check labels against breadth-first components")
	f.String(flagLogLevel, "info", "log level: debug, info, warn or error")
	f.String(flagConfig, "", "optional config file (yaml, toml or json)")

	return cmd
}

// loadConfig layers flags over environment over config file over defaults.
func loadConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return nil
}

// configFrom converts resolved viper values into a simulation.Config.
func configFrom(v *viper.Viper) simulation.Config {
	return simulation.Config{
		Size:        v.GetInt(flagGrid),
		Rho:         v.GetFloat64(flagRho),
		Seed:        v.GetInt64(flagSeed),
		MaxClusters: v.GetInt(flagMaxClusters),
		DataFile:    v.GetString(flagData),
		PercFile:    v.GetString(flagPerc),
		PNGFile:     v.GetString(flagPNG),
		PNGScale:    v.GetInt(flagScale),
		Verify:      v.GetBool(flagVerify),
	}
}

// newLogger returns a tint-coloured slog logger at the named level.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.TimeOnly,
	})), nil
}

// show opens the terminal and runs the interactive preview.
func show(res *simulation.Result) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	v := &view.View{
		Grid:        res.Grid,
		Ranking:     res.Ranking,
		Limit:       res.Displayed,
		Percolating: res.Percolating,
	}
	v.Run(screen)

	return nil
}
