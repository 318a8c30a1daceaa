package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gofill/internal/ui/pretty"
	"github.com/yaklabco/gofill/pkg/runner"
)

// TextReporter writes members one per line, or joined by a separator.
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	errStyles *pretty.Styles
	bw        *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, outcome := range result.Outcomes {
		if outcome.Error != nil {
			r.writeError(outcome)
			continue
		}
		r.writeOutcome(outcome)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.opts.ErrorWriter, r.errStyles.FormatSummaryOneLine(result.Stats))
	}

	return failures(result), nil
}

func (r *TextReporter) writeOutcome(outcome runner.Outcome) {
	if r.opts.ShowDescriptor {
		fmt.Fprintln(r.bw, r.styles.Descriptor.Render(outcome.Descriptor.String()))
	}

	if outcome.Result.IsPattern() {
		fmt.Fprintln(r.bw, r.styles.Pattern.Render(outcome.Result.Pattern))
		return
	}

	values := outcome.Result.Strings()
	if len(values) == 0 {
		return
	}
	for i, v := range values {
		if i > 0 {
			fmt.Fprint(r.bw, r.opts.Separator)
		}
		fmt.Fprint(r.bw, r.styles.Value.Render(v))
	}
	fmt.Fprintln(r.bw)
}

func (r *TextReporter) writeError(outcome runner.Outcome) {
	where := outcome.Descriptor.String()
	if loc := outcome.Descriptor.Location(); loc != "" {
		where = loc + ": " + where
	}
	fmt.Fprintf(r.opts.ErrorWriter, "%s: %s\n",
		r.errStyles.Descriptor.Render(where),
		r.errStyles.Error.Render(fmt.Sprintf("error: %v", outcome.Error)),
	)
}
