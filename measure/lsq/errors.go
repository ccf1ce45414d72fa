package lsq

import (
	"errors"
	"fmt"
)

var (
	// ErrAlignment is wrapped by AlignmentError.
	ErrAlignment = errors.New("lsq: series are not aligned")
	// ErrHarmonicRange is wrapped by HarmonicRangeError.
	ErrHarmonicRange = errors.New("lsq: harmonic index out of range")
)

// AlignmentError reports compared columns of different length.
// Harmonic is -1 when the comparison was not tied to a harmonic index.
type AlignmentError struct {
	Harmonic int
	Basis    int
	Other    int
}

func (e *AlignmentError) Error() string {
	if e.Harmonic < 0 {
		return fmt.Sprintf("lsq: basis has %d samples, other has %d", e.Basis, e.Other)
	}
	return fmt.Sprintf("lsq: harmonic %d: experimental has %d samples, simulated has %d",
		e.Harmonic, e.Basis, e.Other)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// HarmonicRangeError reports a table with fewer harmonic columns than the
// settings ask to compare.
type HarmonicRangeError struct {
	Table      string
	Configured int
	Available  int
}

func (e *HarmonicRangeError) Error() string {
	return fmt.Sprintf("lsq: %s table has %d harmonics, settings require %d",
		e.Table, e.Available, e.Configured)
}

func (e *HarmonicRangeError) Unwrap() error { return ErrHarmonicRange }
