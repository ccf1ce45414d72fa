// Package series loads smoothed harmonic time series tables.
//
// A table has one row per time sample and the columns
// [time, dc, h1, ..., hN]. Tables are immutable once loaded.
package series

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is a loaded time series. The zero value is not usable; obtain tables
// from Load, Read or New.
type Table struct {
	path string
	data *mat.Dense
}

// New builds a table from rows. All rows must have the same non-zero width.
// The rows are copied.
func New(rows [][]float64) (*Table, error) {
	if len(rows) == 0 {
		return nil, &ShapeError{}
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &ShapeError{Line: 1, Got: 0, Want: 1}
	}
	backing := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, &ShapeError{Line: i + 1, Got: len(r), Want: cols}
		}
		backing = append(backing, r...)
	}
	return &Table{data: mat.NewDense(len(rows), cols, backing)}, nil
}

// Load reads the table stored at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	return read(f, path)
}

// Read parses a whitespace-delimited numeric table from r.
func Read(r io.Reader) (*Table, error) {
	return read(r, "")
}

func read(r io.Reader, path string) (*Table, error) {
	var (
		backing []float64
		cols    int
		rows    int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo := rows + 1
		fields := strings.Fields(sc.Text())
		if rows == 0 {
			cols = len(fields)
			if cols == 0 {
				return nil, &ShapeError{Path: path, Line: lineNo, Got: 0, Want: 1}
			}
		}
		if len(fields) != cols {
			return nil, &ShapeError{Path: path, Line: lineNo, Got: len(fields), Want: cols}
		}
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &ParseError{Path: path, Line: lineNo, Column: i + 1, Token: tok, Err: err}
			}
			backing = append(backing, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name(path), err)
	}
	if rows == 0 {
		return nil, &ShapeError{Path: path}
	}

	return &Table{path: path, data: mat.NewDense(rows, cols, backing)}, nil
}

// Path returns the file the table was loaded from, or "" for in-memory tables.
func (t *Table) Path() string { return t.path }

// Rows returns the number of time samples.
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols returns the number of columns including time and dc.
func (t *Table) Cols() int {
	_, c := t.data.Dims()
	return c
}

// Harmonics returns the number of harmonic columns after time and dc.
// It is negative for tables narrower than two columns.
func (t *Table) Harmonics() int { return t.Cols() - 2 }

// Column returns a copy of column j.
func (t *Table) Column(j int) []float64 {
	return mat.Col(nil, j, t.data)
}

// Time returns a copy of the time column.
func (t *Table) Time() []float64 { return t.Column(0) }

// Harmonic returns a copy of harmonic index i, where 0 is dc.
func (t *Table) Harmonic(i int) []float64 { return t.Column(i + 1) }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.data.At(i, j) }
