// Command harmcompare compares smoothed experimental and simulated harmonic
// data and prints the relative least squares metric.
//
// Usage:
//
//	harmcompare [flags]
//
// The settings file decides whether a single weighted metric or one value per
// harmonic (dc first, comma separated) is printed. Exactly one line is written
// to stdout on success; warnings and errors go to stderr.
//
// Examples:
//
//	harmcompare
//	harmcompare --settings run/Settings.inp --exp run/ExpSmoothed.txt --sim run/Smoothed.txt
//	harmcompare --workbook compare.xlsx --log-level debug
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-harmcompare/internal/config"
	"github.com/cwbudde/algo-harmcompare/internal/logging"
	"github.com/cwbudde/algo-harmcompare/measure/lsq"
	"github.com/cwbudde/algo-harmcompare/report"
	"github.com/cwbudde/algo-harmcompare/series"
	"github.com/cwbudde/algo-harmcompare/settings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := config.Load(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	logger, err := logging.New(stderr, opts.LogLevel, logging.Format(opts.LogFormat))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	line, err := compare(opts, logger)
	if err != nil {
		logger.Error().Err(err).Msg("comparison failed")
		return 1
	}

	if _, err := fmt.Fprintln(stdout, line); err != nil {
		logger.Error().Err(err).Msg("write result")
		return 1
	}
	return 0
}

// compare runs the pipeline and returns the output line. Nothing is written
// to stdout here so that a failure never leaves partial output.
func compare(opts config.Options, logger zerolog.Logger) (string, error) {
	s, err := settings.Load(opts.Settings)
	if err != nil {
		return "", err
	}
	logger.Debug().
		Str("simulation_output", s.SimulationOutput).
		Int("number_harmonics", s.NumberHarmonics).
		Float64("frequency_bandwidth", s.FrequencyBandwidth).
		Bool("single_metric", s.UseSingleMetric).
		Msg("settings loaded")

	exp, err := series.Load(opts.Experimental)
	if err != nil {
		return "", err
	}
	sim, err := series.Load(opts.Simulated)
	if err != nil {
		return "", err
	}
	logger.Debug().
		Int("exp_rows", exp.Rows()).Int("exp_cols", exp.Cols()).
		Int("sim_rows", sim.Rows()).Int("sim_cols", sim.Cols()).
		Msg("series loaded")

	metric, res, err := lsq.NewEngine(s, lsq.WithLogger(logger)).Evaluate(exp, sim)
	if err != nil {
		return "", err
	}

	if opts.Workbook != "" {
		if err := report.WriteWorkbook(opts.Workbook, exp, sim, res); err != nil {
			return "", err
		}
		logger.Info().Str("path", opts.Workbook).Msg("workbook written")
	}

	return metric.String(), nil
}
