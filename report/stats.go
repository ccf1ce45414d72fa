package report

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ColumnStats summarizes one harmonic column.
type ColumnStats struct {
	Energy float64 // sum of squares
	RMS    float64
	Peak   float64 // max(|max|, |min|)
}

// Summarize computes ColumnStats for x. Empty input yields zero stats.
func Summarize(x []float64) ColumnStats {
	if len(x) == 0 {
		return ColumnStats{}
	}
	energy := floats.Dot(x, x)
	return ColumnStats{
		Energy: energy,
		RMS:    math.Sqrt(energy / float64(len(x))),
		Peak:   math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x))),
	}
}
