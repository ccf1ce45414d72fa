// Package config resolves the command's run options from flags, environment
// variables and defaults.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. HARMCOMPARE_LOG_LEVEL.
const EnvPrefix = "HARMCOMPARE"

// Default file names shared with the harmonic splitter.
const (
	DefaultSettings     = "Settings.inp"
	DefaultExperimental = "ExpSmoothed.txt"
	DefaultSimulated    = "Smoothed.txt"
)

// Options are the resolved run options.
type Options struct {
	Settings     string `mapstructure:"settings" validate:"required"`
	Experimental string `mapstructure:"exp" validate:"required"`
	Simulated    string `mapstructure:"sim" validate:"required"`
	Workbook     string `mapstructure:"workbook"`
	LogLevel     string `mapstructure:"log-level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat    string `mapstructure:"log-format" validate:"oneof=console json"`
}

// NewFlagSet declares the command line flags.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("settings", DefaultSettings, "settings file")
	fs.String("exp", DefaultExperimental, "smoothed experimental data")
	fs.String("sim", DefaultSimulated, "smoothed simulated data")
	fs.String("workbook", "", "write a diagnostic .xlsx workbook to this path")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console, json)")
	return fs
}

// Load parses args and merges them with HARMCOMPARE_* environment variables.
// Flags given on the command line win over the environment. pflag.ErrHelp is
// returned unwrapped when -h is requested.
func Load(args []string, stderr io.Writer) (Options, error) {
	fs := NewFlagSet("harmcompare")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Options{}, fmt.Errorf("bind flags: %w", err)
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	opts.LogLevel = strings.ToLower(opts.LogLevel)
	opts.LogFormat = strings.ToLower(opts.LogFormat)

	if err := validator.New().Struct(opts); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}
