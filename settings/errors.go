package settings

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel wrapped by every ConfigError.
var ErrConfig = errors.New("invalid settings")

// ConfigError reports a missing or malformed settings field.
// Line is 1-based; it is 0 when the error is not tied to a line.
type ConfigError struct {
	Field string
	Line  int
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("settings line %d (%s): %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("settings %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}
