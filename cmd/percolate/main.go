// SPDX-License-Identifier: MIT

// Command percolate runs one site-percolation experiment on a square lattice
// and writes the labelled grid and its cluster image.
//
// Usage:
//
//	percolate [-g size] [-s seed] [-r rho] [-m max-clusters] [-d map.dat] [-p map.pgm]
//	          [--png map.png] [--scale 8] [--view] [--verify]
//	          [--log-level info] [--config percolate.yaml]
//
// Every flag may also be set through a PERCOLATE_<FLAG> environment variable
// (dashes become underscores) or a key of the same name in the config file.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
