package configloader

import "github.com/yaklabco/gofill/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Pointer fields: override wins whenever it is non-nil, so false and 0 can
//     be set explicitly
//   - Other scalars: override wins if non-zero
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base.Clone()

	mergePtr(&result.StrictRanges, override.StrictRanges)
	mergePtr(&result.Stringify, override.Stringify)
	mergePtr(&result.Width, override.Width)
	mergePtr(&result.MaxLength, override.MaxLength)
	mergePtr(&result.Separator, override.Separator)

	if override.Step != nil {
		result.Step = override.Step
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	result.Regex = mergeRegex(result.Regex, override.Regex)

	// CLI-only fields only ever arrive through the CLI layer.
	if override.ToRegex {
		result.ToRegex = true
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}

	return &result
}

// mergeRegex merges pattern options field by field.
func mergeRegex(base, override config.RegexConfig) config.RegexConfig {
	result := base
	mergePtr(&result.Wrap, override.Wrap)
	mergePtr(&result.Capture, override.Capture)
	mergePtr(&result.StrictZeros, override.StrictZeros)
	mergePtr(&result.Shorthand, override.Shorthand)
	mergePtr(&result.Prefix, override.Prefix)
	return result
}

func mergePtr[T any](dst **T, src *T) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
