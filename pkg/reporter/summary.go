package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gofill/internal/ui/pretty"
	"github.com/yaklabco/gofill/pkg/runner"
)

// SummaryReporter writes only the aggregate statistics line.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	stats := runner.Stats{}
	if result != nil {
		stats = result.Stats
	}
	if _, err := fmt.Fprint(r.opts.Writer, r.styles.FormatSummaryOneLine(stats)); err != nil {
		return 0, fmt.Errorf("write summary: %w", err)
	}
	return failures(result), nil
}
