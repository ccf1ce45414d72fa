package lsq

import "github.com/rs/zerolog"

type engineConfig struct {
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithLogger sets the logger used for consistency warnings and debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *engineConfig) {
		cfg.logger = l
	}
}

func applyOptions(opts ...Option) engineConfig {
	cfg := engineConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
