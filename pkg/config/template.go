package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every option with its default value.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return []byte(fullTemplate), nil
	}
	return []byte(minimalTemplate), nil
}

const minimalTemplate = `# gofill configuration
# See: https://github.com/yaklabco/gofill

# Report invalid bounds as errors instead of empty output
# strict_ranges: false

# Default step: a number, or a number with a marker (+ > ? |)
# step: 1

# Reject ranges with more members than this (0 = unlimited)
# max_length: 100000

# Output format: text, table, json, yaml, or summary
# format: text

# Pattern options
# regex:
#   wrap: false
#   capture: false
#   strict_zeros: false
`

const fullTemplate = `# gofill configuration - Full Template
# See: https://github.com/yaklabco/gofill
#
# This template lists every option with its default value.

# Report invalid bounds as errors instead of empty output
strict_ranges: false

# Emit numeric members as strings in json and yaml output
stringify: false

# Zero-pad numeric members to at least this many digits (0 = infer)
width: 0

# Default step. Markers: + repeat, > join, ? random, | regex
step: 1

# Reject ranges with more members than this (0 = unlimited)
max_length: 100000

# Output format: text, table, json, yaml, or summary
format: text

# Separator between members in text output
separator: "\n"

# Number of parallel workers for batch runs (0 = auto)
jobs: 0

# Pattern options
regex:
  # Group multi-branch patterns in (?:...)
  wrap: false
  # Group patterns in a capturing group
  capture: false
  # Require the full padded width
  strict_zeros: false
  # Use \d instead of [0-9]
  shorthand: false
  # Spliced into the opening delimiter, for example "^" or "?!"
  prefix: ""
`

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	yamlBytes, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(yamlBytes, &doc); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# gofill configuration
# See: https://github.com/yaklabco/gofill`
}
