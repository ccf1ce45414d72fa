// Package settings parses the positional settings file shared by the harmonic
// splitter and the comparison tool.
//
// The file has six logical lines:
//
//	1. simulation output path token
//	2. number of harmonics (int, dc excluded)
//	3. frequency bandwidth (float, used by the splitter only)
//	4. single metric flag (0 or 1)
//	5. use weights flag (0 or 1)
//	6. comma separated weights, one per harmonic index including dc
//
// Lines 1-5 are read from their first whitespace-delimited token; anything
// after it is treated as a comment.
package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names as reported in ConfigError.
const (
	FieldSimulationOutput   = "simulation_output"
	FieldNumberHarmonics    = "number_harmonics"
	FieldFrequencyBandwidth = "frequency_bandwidth"
	FieldUseSingleMetric    = "use_single_metric"
	FieldUseWeights         = "use_weights"
	FieldWeights            = "weights"
)

var fieldLines = map[string]int{
	FieldSimulationOutput:   1,
	FieldNumberHarmonics:    2,
	FieldFrequencyBandwidth: 3,
	FieldUseSingleMetric:    4,
	FieldUseWeights:         5,
	FieldWeights:            6,
}

var (
	errMissing     = errors.New("missing value")
	errFewWeights  = errors.New("fewer weights than harmonic indices")
	errInvalidFlag = errors.New("flag must be 0 or 1")
)

// Settings is the immutable run configuration. Weights always holds at least
// NumberHarmonics+1 values; use HarmonicWeights for the slice the metric uses.
type Settings struct {
	SimulationOutput   string
	NumberHarmonics    int
	FrequencyBandwidth float64
	UseSingleMetric    bool
	UseWeights         bool
	Weights            []float64
}

// HarmonicWeights returns a copy of the first NumberHarmonics+1 weights,
// ordered dc, h1..hN.
func (s Settings) HarmonicWeights() []float64 {
	n := s.NumberHarmonics + 1
	if n > len(s.Weights) {
		n = len(s.Weights)
	}
	out := make([]float64, n)
	copy(out, s.Weights[:n])
	return out
}

// raw mirrors the file before flags are converted; validator tags carry the
// scalar constraints.
type raw struct {
	SimulationOutput   string `validate:"required"`
	NumberHarmonics    int    `validate:"gte=0"`
	FrequencyBandwidth float64
	UseSingleMetric    int       `validate:"oneof=0 1"`
	UseWeights         int       `validate:"oneof=0 1"`
	Weights            []float64 `validate:"min=1"`
}

var structFields = map[string]string{
	"SimulationOutput":   FieldSimulationOutput,
	"NumberHarmonics":    FieldNumberHarmonics,
	"FrequencyBandwidth": FieldFrequencyBandwidth,
	"UseSingleMetric":    FieldUseSingleMetric,
	"UseWeights":         FieldUseWeights,
	"Weights":            FieldWeights,
}

var validate = validator.New()

// Load reads settings from path.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses settings from r.
func Read(r io.Reader) (Settings, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() && len(lines) < len(fieldLines) {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	var (
		rs  raw
		err error
	)
	if rs.SimulationOutput, err = firstToken(lines, FieldSimulationOutput); err != nil {
		return Settings{}, err
	}
	if rs.NumberHarmonics, err = intField(lines, FieldNumberHarmonics); err != nil {
		return Settings{}, err
	}
	tok, err := firstToken(lines, FieldFrequencyBandwidth)
	if err != nil {
		return Settings{}, err
	}
	if rs.FrequencyBandwidth, err = strconv.ParseFloat(tok, 64); err != nil {
		return Settings{}, fieldError(FieldFrequencyBandwidth, err)
	}
	if rs.UseSingleMetric, err = intField(lines, FieldUseSingleMetric); err != nil {
		return Settings{}, err
	}
	if rs.UseWeights, err = intField(lines, FieldUseWeights); err != nil {
		return Settings{}, err
	}
	if rs.Weights, err = parseWeights(lines); err != nil {
		return Settings{}, err
	}

	if err := validate.Struct(rs); err != nil {
		return Settings{}, translate(err)
	}
	if len(rs.Weights) < rs.NumberHarmonics+1 {
		return Settings{}, fieldError(FieldWeights,
			fmt.Errorf("%w: got %d, need %d", errFewWeights, len(rs.Weights), rs.NumberHarmonics+1))
	}

	return Settings{
		SimulationOutput:   rs.SimulationOutput,
		NumberHarmonics:    rs.NumberHarmonics,
		FrequencyBandwidth: rs.FrequencyBandwidth,
		UseSingleMetric:    rs.UseSingleMetric == 1,
		UseWeights:         rs.UseWeights == 1,
		Weights:            rs.Weights,
	}, nil
}

func fieldError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Line: fieldLines[field], Err: err}
}

func line(lines []string, field string) (string, error) {
	i := fieldLines[field] - 1
	if i >= len(lines) {
		return "", fieldError(field, errMissing)
	}
	return strings.TrimSpace(lines[i]), nil
}

func firstToken(lines []string, field string) (string, error) {
	l, err := line(lines, field)
	if err != nil {
		return "", err
	}
	toks := strings.Fields(l)
	if len(toks) == 0 {
		return "", fieldError(field, errMissing)
	}
	return toks[0], nil
}

func intField(lines []string, field string) (int, error) {
	tok, err := firstToken(lines, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fieldError(field, err)
	}
	return v, nil
}

// parseWeights splits line 6 on commas. Blank fields are skipped so a
// trailing comma is harmless.
func parseWeights(lines []string) ([]float64, error) {
	l, err := line(lines, FieldWeights)
	if err != nil {
		return nil, err
	}
	var out []float64
	for i, part := range strings.Split(l, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fieldError(FieldWeights, fmt.Errorf("weight %d: %w", i, err))
		}
		out = append(out, w)
	}
	return out, nil
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigError{Field: "settings", Err: err}
	}
	fe := verrs[0]
	field := structFields[fe.StructField()]
	switch fe.Tag() {
	case "required", "min":
		return fieldError(field, errMissing)
	case "oneof":
		return fieldError(field, fmt.Errorf("%w: %v", errInvalidFlag, fe.Value()))
	default:
		return fieldError(field, fmt.Errorf("failed %s=%s constraint: %v", fe.Tag(), fe.Param(), fe.Value()))
	}
}
