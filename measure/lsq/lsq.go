package lsq

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-harmcompare/series"
	"github.com/cwbudde/algo-harmcompare/settings"
)

// Table names used in errors and log fields.
const (
	TableExperimental = "experimental"
	TableSimulated    = "simulated"
)

// RelativeLeastSquares returns Σ(basis-other)² / Σ basis².
// It returns 0 when the basis has zero energy and an AlignmentError when the
// slices differ in length.
func RelativeLeastSquares(basis, other []float64) (float64, error) {
	if len(basis) != len(other) {
		return 0, &AlignmentError{Harmonic: -1, Basis: len(basis), Other: len(other)}
	}
	if len(basis) == 0 {
		return 0, nil
	}

	sq := make([]float64, len(basis))
	vecmath.MulBlock(sq, basis, basis)
	energy := floats.Sum(sq)
	if energy == 0 {
		return 0, nil
	}

	floats.SubTo(sq, basis, other)
	vecmath.MulBlock(sq, sq, sq)

	return floats.Sum(sq) / energy, nil
}

// Result holds one comparison. Raw and Values are ordered dc, h1..hN.
type Result struct {
	Raw    []float64 // unweighted LS_j
	Values []float64 // LS_j * w_j
	Total  float64   // Σ Values
}

// Engine computes the metric for a fixed configuration.
type Engine struct {
	harmonics  int
	weights    []float64
	single     bool
	useWeights bool
	logger     zerolog.Logger
}

// NewEngine creates an engine from s. Weights missing from s count as 1.
func NewEngine(s settings.Settings, opts ...Option) *Engine {
	cfg := applyOptions(opts...)

	n := s.NumberHarmonics + 1
	if n < 1 {
		n = 1
	}
	weights := make([]float64, n)
	for i := copy(weights, s.HarmonicWeights()); i < n; i++ {
		weights[i] = 1
	}

	return &Engine{
		harmonics:  n - 1,
		weights:    weights,
		single:     s.UseSingleMetric,
		useWeights: s.UseWeights,
		logger:     cfg.logger,
	}
}

// Harmonics returns the configured number of harmonics, dc excluded.
func (e *Engine) Harmonics() int { return e.harmonics }

// Compute compares sim against exp, using exp as the normalization basis.
// A harmonic count mismatch is logged and tolerated as long as both tables
// have enough columns.
func (e *Engine) Compute(exp, sim *series.Table) (Result, error) {
	if m, ok := CheckHarmonics(e.harmonics, exp, sim); !ok {
		e.logger.Warn().
			Int("settings_n_harm", m.Expected).
			Int("experimental_n_harm", m.Experimental).
			Int("simulation_n_harm", m.Simulated).
			Msg("inconsistent number of harmonics (excluding dc)")
	}
	if err := checkRange(e.harmonics, TableExperimental, exp); err != nil {
		return Result{}, err
	}
	if err := checkRange(e.harmonics, TableSimulated, sim); err != nil {
		return Result{}, err
	}
	if !e.useWeights {
		e.logger.Debug().Msg("use_weights is 0, configured weights are still applied")
	}

	n := e.harmonics + 1
	res := Result{
		Raw:    make([]float64, n),
		Values: make([]float64, n),
	}
	for j := range n {
		ls, err := RelativeLeastSquares(exp.Harmonic(j), sim.Harmonic(j))
		if err != nil {
			var aerr *AlignmentError
			if errors.As(err, &aerr) {
				aerr.Harmonic = j
			}
			return Result{}, err
		}
		res.Raw[j] = ls
	}

	vecmath.MulBlock(res.Values, res.Raw, e.weights)
	res.Total = floats.Sum(res.Values)

	e.logger.Debug().
		Floats64("ls", res.Raw).
		Floats64("weighted", res.Values).
		Float64("total", res.Total).
		Msg("metric computed")

	return res, nil
}

// Select picks the reported metric for the configured mode.
func (e *Engine) Select(r Result) Metric {
	if e.single {
		return ScalarMetric(r.Total)
	}
	out := make(PerHarmonicMetrics, len(r.Values))
	copy(out, r.Values)
	return out
}

// Evaluate runs Compute and Select.
func (e *Engine) Evaluate(exp, sim *series.Table) (Metric, Result, error) {
	res, err := e.Compute(exp, sim)
	if err != nil {
		return nil, Result{}, err
	}
	return e.Select(res), res, nil
}
