package configloader

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cast"

	"github.com/yaklabco/gofill/pkg/config"
)

// envVarPrefix is the prefix for all gofill environment variables.
const envVarPrefix = "GOFILL_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeUint
)

type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"STRICT_RANGES":      {"strict_ranges", envTypeBool, "Report invalid bounds as errors: true or false"},
	"STRINGIFY":          {"stringify", envTypeBool, "Emit numeric members as strings: true or false"},
	"WIDTH":              {"width", envTypeInt, "Minimum zero-padded width"},
	"STEP":               {"step", envTypeString, "Default step, optionally with a marker"},
	"MAX_LENGTH":         {"max_length", envTypeUint, "Maximum members per range (0 = unlimited)"},
	"FORMAT":             {"format", envTypeString, "Output format: text, table, json, yaml, or summary"},
	"SEPARATOR":          {"separator", envTypeString, "Separator between members in text output"},
	"JOBS":               {"jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	"REGEX_WRAP":         {"regex.wrap", envTypeBool, "Group multi-branch patterns: true or false"},
	"REGEX_CAPTURE":      {"regex.capture", envTypeBool, "Use a capturing group: true or false"},
	"REGEX_STRICT_ZEROS": {"regex.strict_zeros", envTypeBool, "Require the full padded width: true or false"},
	"REGEX_SHORTHAND":    {"regex.shorthand", envTypeBool, "Use \\d instead of [0-9]: true or false"},
	"REGEX_PREFIX":       {"regex.prefix", envTypeString, "Prefix for the opening delimiter"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOFILL_ (e.g., GOFILL_STRICT_RANGES).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := os.LookupEnv(envVar)
		if !ok || (value == "" && mapping.typ != envTypeString) {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := cast.ToIntE(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeUint:
		u, err := cast.ToUint64E(value)
		if err != nil {
			return fmt.Errorf("invalid non-negative integer for %s: %q", envVar, value)
		}
		cfg.MaxLength = config.Ptr(u)
		return nil
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "step":
		if value != "" {
			cfg.Step = value
		}
	case "format":
		if value != "" {
			cfg.Format = config.OutputFormat(value)
		}
	case "separator":
		cfg.Separator = config.Ptr(value)
	case "regex.prefix":
		cfg.Regex.Prefix = config.Ptr(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	var target **bool
	switch field {
	case "strict_ranges":
		target = &cfg.StrictRanges
	case "stringify":
		target = &cfg.Stringify
	case "regex.wrap":
		target = &cfg.Regex.Wrap
	case "regex.capture":
		target = &cfg.Regex.Capture
	case "regex.strict_zeros":
		target = &cfg.Regex.StrictZeros
	case "regex.shorthand":
		target = &cfg.Regex.Shorthand
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	*target = config.Ptr(value)
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "width":
		cfg.Width = config.Ptr(value)
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}

// EnvVarNames returns the supported environment variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		names = append(names, envVarPrefix+suffix)
	}
	sort.Strings(names)
	return names
}
