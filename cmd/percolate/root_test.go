package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	cmd := newRootCmd(&logs)
	cmd.SetArgs(args)
	cmd.SetOut(&logs)
	cmd.SetErr(&logs)
	err := cmd.Execute()
	return logs.String(), err
}

func TestRoot_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	dat := filepath.Join(dir, "out.dat")
	pgm := filepath.Join(dir, "out.pgm")
	png := filepath.Join(dir, "out.png")

	logs, err := execute(t, "-g", "12", "-s", "7", "-r", "0.35", "-m", "3",
		"-d", dat, "-p", pgm, "--png", png, "--scale", "2", "--verify")
	require.NoError(t, err)
	assert.Contains(t, logs, "labels converged")

	g, err := export.ReadRawFile(dat)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Size())

	data, err := os.ReadFile(pgm)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P2\n12 12\n"))

	_, err = os.Stat(png)
	assert.NoError(t, err)
}

func TestRoot_EnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	dat := filepath.Join(dir, "env.dat")
	cfgPath := filepath.Join(dir, "percolate.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("grid: 4\nrho: 0.5\nperc: \"\"\n"), 0o644))

	t.Setenv("PERCOLATE_DATA", dat)
	t.Setenv("PERCOLATE_GRID", "6")

	_, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)

	g, err := export.ReadRawFile(dat)
	require.NoError(t, err)
	assert.Equal(t, 6, g.Size(), "environment overrides the config file")
}

func TestRoot_FlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	dat := filepath.Join(dir, "flag.dat")
	t.Setenv("PERCOLATE_GRID", "6")

	_, err := execute(t, "-g", "3", "-d", dat, "-p", "")
	require.NoError(t, err)

	g, err := export.ReadRawFile(dat)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "-r", "1.5", "-d", filepath.Join(dir, "a.dat"), "-p", "")
	assert.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "-d", "", "-p", "")
	assert.Error(t, err)

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "stray")
	assert.Error(t, err)
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
