package config

import (
	"fmt"
	"slices"

	"github.com/thoreinstein/skillcheck/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not 1.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidColor indicates an unrecognized color mode.
	ErrInvalidColor = errors.New("invalid color mode")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

var (
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
	logFormats = []string{"text", "json"}
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{Field: "version", Value: cfg.Version, Err: ErrUnsupportedVersion})
	}
	if !slices.Contains(colorModes, cfg.Color) {
		errs = append(errs, &FieldError{Field: "color", Value: cfg.Color, Err: ErrInvalidColor})
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		errs = append(errs, &FieldError{Field: "log_format", Value: cfg.LogFormat, Err: ErrInvalidLogFormat})
	}

	return errs
}

// FieldError represents an invalid value for a configuration field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
