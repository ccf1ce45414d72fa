package testutil

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-harmcompare/series"
)

// Envelope generates a deterministic smoothed harmonic amplitude: a Gaussian
// bump whose height falls off with the harmonic index. Index 0 is a slow
// ramp standing in for the dc component.
func Envelope(harmonic, length int) []float64 {
	out := make([]float64, length)
	if harmonic == 0 {
		for i := range out {
			out[i] = 1 + float64(i)/float64(length)
		}
		return out
	}
	center := float64(length) / 2
	width := float64(length) / 6
	height := 1 / float64(harmonic)
	for i := range out {
		x := (float64(i) - center) / width
		out[i] = height * math.Exp(-x*x/2)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Rows prepends a time column (0, 1, 2, ...) to the given columns and returns
// the table rows.
func Rows(columns ...[]float64) [][]float64 {
	if len(columns) == 0 {
		return nil
	}
	rows := make([][]float64, len(columns[0]))
	for i := range rows {
		row := make([]float64, 0, len(columns)+1)
		row = append(row, float64(i))
		for _, c := range columns {
			row = append(row, c[i])
		}
		rows[i] = row
	}
	return rows
}

// Table builds a series table from rows and fails t on error.
func Table(t testing.TB, rows [][]float64) *series.Table {
	t.Helper()
	tbl, err := series.New(rows)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

// WriteRows writes rows in the whitespace-delimited series format to
// dir/name and returns the path.
func WriteRows(t testing.TB, dir, name string, rows [][]float64) string {
	t.Helper()
	var b strings.Builder
	for _, r := range rows {
		for j, v := range r {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	return WriteFile(t, dir, name, b.String())
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
