package lsq

import "github.com/cwbudde/algo-harmcompare/series"

// HarmonicMismatch holds the configured harmonic count next to the counts
// derived from each table's width.
type HarmonicMismatch struct {
	Expected     int
	Experimental int
	Simulated    int
}

// CheckHarmonics compares the configured harmonic count with both tables.
// ok is false when either table disagrees; this is not an error by itself.
func CheckHarmonics(expected int, exp, sim *series.Table) (m HarmonicMismatch, ok bool) {
	m = HarmonicMismatch{
		Expected:     expected,
		Experimental: exp.Harmonics(),
		Simulated:    sim.Harmonics(),
	}
	return m, m.Experimental == expected && m.Simulated == expected
}

func checkRange(expected int, name string, t *series.Table) error {
	if t.Harmonics() < expected {
		return &HarmonicRangeError{Table: name, Configured: expected, Available: t.Harmonics()}
	}
	return nil
}
