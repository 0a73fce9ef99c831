// SPDX-License-Identifier: MIT

package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/percolate/lattice"
)

// cellFormat is the fixed-width field shared by the raw and PGM writers.
const cellFormat = " %4d"

// maxLineBytes bounds a single raw line: 5 bytes per cell on a 10⁶-wide grid.
const maxLineBytes = 5 << 20

// WriteRaw dumps every interior value of g, top line (y = N) first.
// The grid is written as it currently is, labels or not.
func WriteRaw(w io.Writer, g *lattice.Grid) error {
	return writePlane(w, g.Rows())
}

// writePlane prints a top-first picture with cellFormat fields.
func writePlane(w io.Writer, rows [][]int) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, v := range row {
			if _, err := fmt.Fprintf(bw, cellFormat, v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadRaw parses the output of WriteRaw back into a grid.
// Blank input yields an empty (N = 0) grid. Non-integer tokens produce
// ErrMalformed; a non-square picture produces lattice.ErrNonRectangular.
func ReadRaw(r io.Reader) (*lattice.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]int
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ReadRaw: line %d field %d %q: %w", line, i+1, f, ErrMalformed)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadRaw: %w", err)
	}
	if len(rows) == 0 {
		return lattice.NewGrid(0)
	}
	g, err := lattice.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ReadRaw: %w", err)
	}

	return g, nil
}

// WriteRawFile creates (or truncates) path and writes g to it with WriteRaw.
func WriteRawFile(path string, g *lattice.Grid) error {
	return writeFile(path, func(w io.Writer) error { return WriteRaw(w, g) })
}

// ReadRawFile opens path and parses it with ReadRaw.
func ReadRawFile(path string) (*lattice.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRaw(f)
}

// writeFile runs write against a freshly created file and reports the first
// error among create, write and close.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	if err = write(f); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return nil
}
