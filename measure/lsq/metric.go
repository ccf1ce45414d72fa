package lsq

import (
	"math"
	"strconv"
	"strings"
)

// Metric is the reported result: either ScalarMetric or PerHarmonicMetrics.
// String renders the single output line read by the fitting driver.
type Metric interface {
	String() string
	metric()
}

// ScalarMetric is the weighted sum over all harmonics.
type ScalarMetric float64

func (ScalarMetric) metric() {}

func (m ScalarMetric) String() string { return FormatFloat(float64(m)) }

// PerHarmonicMetrics holds the weighted value of each harmonic, dc first.
type PerHarmonicMetrics []float64

func (PerHarmonicMetrics) metric() {}

func (m PerHarmonicMetrics) String() string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = FormatFloat(v)
	}
	return strings.Join(parts, ",")
}

// FormatFloat renders v in shortest round-trip form. Integral values keep a
// trailing ".0"; magnitudes below 1e-4 or from 1e16 up use exponent form.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
