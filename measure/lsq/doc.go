// Package lsq compares experimental and simulated harmonic time series with a
// relative least squares metric.
//
// For every harmonic index j (0 is dc) the relative error is
//
//	LS_j = Σ (exp_j[k] - sim_j[k])² / Σ exp_j[k]²
//
// with LS_j = 0 when the experimental column has zero energy. Each LS_j is
// multiplied by its weight; the weighted values are reported either one per
// harmonic or summed into a single scalar S = Σ w_j LS_j.
package lsq
