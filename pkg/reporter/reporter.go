// Package reporter renders expansion results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gofill/pkg/runner"
)

// Reporter formats and writes expansion results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of failed ranges and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	defaults := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = defaults.Writer
	}
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = defaults.ErrorWriter
	}
	if opts.Separator == "" {
		opts.Separator = defaults.Separator
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatYAML:
		return NewYAMLReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func failures(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.RangesFailed
}
