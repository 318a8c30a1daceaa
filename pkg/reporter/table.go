package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gofill/internal/ui/pretty"
	"github.com/yaklabco/gofill/pkg/runner"
)

// TableReporter lays out members in terminal-width columns.
type TableReporter struct {
	opts      Options
	styles    *pretty.Styles
	formatter *pretty.TableFormatter
	bw        *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))

	return &TableReporter{
		opts:      opts,
		styles:    styles,
		formatter: pretty.NewTableFormatter(styles, pretty.TerminalWidth(opts.Writer)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Outcomes) == 0 {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(runner.Stats{}))
		return 0, nil
	}

	fmt.Fprint(r.bw, r.formatter.FormatTable(result))

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failures(result), nil
}
