package configloader

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/gofill/pkg/config"
	"github.com/yaklabco/gofill/pkg/fillrange"
)

// ValidationError describes one bad setting.
type ValidationError struct {
	// Field is the YAML path of the setting, e.g. "regex.prefix".
	Field string

	// Value is the rejected value.
	Value any

	Message string

	// FilePath is the file the setting came from, when known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return strings.Join(lo.Compact([]string{e.FilePath, e.Field, e.Message}), ": ")
}

// ValidationResult collects the findings for one configuration.
type ValidationResult struct {
	// Errors prevent the configuration from loading.
	Errors []ValidationError

	// Warnings are reported and otherwise ignored.
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns errors then warnings, each prefixed with its kind.
func (r *ValidationResult) AllMessages() []string {
	prefixed := func(kind string) func(ValidationError, int) string {
		return func(e ValidationError, _ int) string { return kind + ": " + e.Error() }
	}
	return append(lo.Map(r.Errors, prefixed("error")), lo.Map(r.Warnings, prefixed("warning"))...)
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg. A nil configuration is valid.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.fail("format", cfg.Format,
			"invalid format %q; must be one of: text, table, json, yaml, summary", cfg.Format)
	}
	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Width != nil && *cfg.Width < 0 {
		result.fail("width", *cfg.Width, "width must be >= 0")
	}

	text, err := cfg.StepText()
	if err == nil {
		_, err = fillrange.ParseStep(text)
	}
	if err != nil {
		result.fail("step", cfg.Step, "%s", err)
	}

	// The pattern builder only honors "^" and group markers.
	if prefix := lo.FromPtr(cfg.Regex.Prefix); prefix != "" && prefix != "^" && !strings.HasPrefix(prefix, "?") {
		result.warn("regex.prefix", prefix,
			"prefix %q has no effect; use \"^\" or a group marker starting with \"?\"", prefix)
	}

	return result
}

// ValidateWithFile is Validate with every finding attributed to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
