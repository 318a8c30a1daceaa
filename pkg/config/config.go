// Package config defines core configuration types for gofill.
// These types are plain data structures; discovery and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

// DefaultMaxLength is the default limit on members materialized per range.
const DefaultMaxLength uint64 = 100_000

// OutputFormat specifies the output format for expansions.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return true
	default:
		return false
	}
}

// RegexConfig holds options that only affect pattern output.
type RegexConfig struct {
	// Wrap groups multi-branch patterns in (?:...).
	Wrap *bool `yaml:"wrap,omitempty"`

	// Capture groups patterns in (...).
	Capture *bool `yaml:"capture,omitempty"`

	// StrictZeros requires the full padded width.
	StrictZeros *bool `yaml:"strict_zeros,omitempty"`

	// Shorthand emits \d instead of [0-9].
	Shorthand *bool `yaml:"shorthand,omitempty"`

	// Prefix is spliced into the opening delimiter ("^" or "?!").
	Prefix *string `yaml:"prefix,omitempty"`
}

// Config is the root configuration structure for gofill.
// Pointer fields distinguish "unset" from the zero value so that higher
// precedence sources can turn options off.
type Config struct {
	// StrictRanges reports invalid bounds as errors instead of empty output.
	StrictRanges *bool `yaml:"strict_ranges,omitempty"`

	// Stringify emits numeric members as strings in structured output.
	Stringify *bool `yaml:"stringify,omitempty"`

	// Width forces zero padding to at least this many digits.
	Width *int `yaml:"width,omitempty"`

	// Step is the default step: a number or marker text such as ">".
	Step any `yaml:"step,omitempty"`

	// MaxLength rejects ranges with more members. 0 disables the limit.
	MaxLength *uint64 `yaml:"max_length,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty"`

	// Separator is written between members in text output.
	Separator *string `yaml:"separator,omitempty"`

	// Jobs specifies the number of parallel workers for batch runs (0 = auto).
	Jobs int `yaml:"jobs,omitempty"`

	// Regex holds pattern options.
	Regex RegexConfig `yaml:"regex,omitempty"`

	// CLI-level options (not persisted to config files).

	// ToRegex produces patterns instead of sequences.
	ToRegex bool `yaml:"-"`

	// Seed makes random mode deterministic when non-zero.
	Seed uint64 `yaml:"-"`
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	return &Config{
		StrictRanges: Ptr(false),
		Stringify:    Ptr(false),
		Width:        Ptr(0),
		MaxLength:    Ptr(DefaultMaxLength),
		Format:       FormatText,
		Separator:    Ptr("\n"),
		Regex: RegexConfig{
			Wrap:        Ptr(false),
			Capture:     Ptr(false),
			StrictZeros: Ptr(false),
			Shorthand:   Ptr(false),
			Prefix:      Ptr(""),
		},
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// StepText returns the configured step as text. Numbers from YAML or the
// environment are converted; an unset step yields "".
func (c *Config) StepText() (string, error) {
	if c == nil || c.Step == nil {
		return "", nil
	}
	text, err := cast.ToStringE(c.Step)
	if err != nil {
		return "", fmt.Errorf("step: %w", err)
	}
	return text, nil
}

// EffectiveMaxLength returns the member limit, 0 meaning unlimited.
func (c *Config) EffectiveMaxLength() uint64 {
	if c == nil || c.MaxLength == nil {
		return DefaultMaxLength
	}
	return *c.MaxLength
}

// EffectiveSeparator returns the text separator, defaulting to a newline.
func (c *Config) EffectiveSeparator() string {
	if c == nil || c.Separator == nil {
		return "\n"
	}
	return *c.Separator
}

// FillOptions converts the configuration into expansion options.
func (c *Config) FillOptions() (fillrange.Options, error) {
	if c == nil {
		return fillrange.Options{}, nil
	}

	stepText, err := c.StepText()
	if err != nil {
		return fillrange.Options{}, err
	}
	step, err := fillrange.ParseStep(stepText)
	if err != nil {
		return fillrange.Options{}, err
	}

	return fillrange.Options{
		Step:         step,
		StrictRanges: value(c.StrictRanges),
		Stringify:    value(c.Stringify),
		ToRegex:      c.ToRegex,
		Wrap:         value(c.Regex.Wrap),
		Capture:      value(c.Regex.Capture),
		StrictZeros:  value(c.Regex.StrictZeros),
		Shorthand:    value(c.Regex.Shorthand),
		RegexPrefix:  value(c.Regex.Prefix),
		Width:        value(c.Width),
	}, nil
}
