package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/yaklabco/gofill/pkg/fillrange"
	"github.com/yaklabco/gofill/pkg/runner"
)

// outputVersion is the schema version of structured output.
const outputVersion = "1.0.0"

// Output is the top-level structure of JSON and YAML output.
type Output struct {
	Version string        `json:"version" yaml:"version"`
	Ranges  []RangeOutput `json:"ranges" yaml:"ranges"`
	Summary SummaryOutput `json:"summary" yaml:"summary"`
}

// RangeOutput is one expanded descriptor.
type RangeOutput struct {
	Range   string            `json:"range" yaml:"range"`
	Source  string            `json:"source,omitempty" yaml:"source,omitempty"`
	Line    int               `json:"line,omitempty" yaml:"line,omitempty"`
	Values  []fillrange.Value `json:"values,omitempty" yaml:"values,omitempty"`
	Pattern string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Error   string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// SummaryOutput contains aggregate statistics.
type SummaryOutput struct {
	Ranges   int `json:"ranges" yaml:"ranges"`
	Expanded int `json:"expanded" yaml:"expanded"`
	Failed   int `json:"failed" yaml:"failed"`
	Empty    int `json:"empty" yaml:"empty"`
	Values   int `json:"values" yaml:"values"`
	Patterns int `json:"patterns" yaml:"patterns"`
}

// BuildOutput converts a runner result to its structured form.
func BuildOutput(result *runner.Result) *Output {
	output := &Output{
		Version: outputVersion,
		Ranges:  []RangeOutput{},
	}
	if result == nil {
		return output
	}

	output.Ranges = lo.Map(result.Outcomes, func(outcome runner.Outcome, _ int) RangeOutput {
		out := RangeOutput{
			Range:  outcome.Descriptor.String(),
			Source: outcome.Descriptor.Source,
			Line:   outcome.Descriptor.Line,
		}
		switch {
		case outcome.Error != nil:
			out.Error = outcome.Error.Error()
		case outcome.Result.IsPattern():
			out.Pattern = outcome.Result.Pattern
		default:
			out.Values = outcome.Result.Sequence
		}
		return out
	})

	stats := result.Stats
	output.Summary = SummaryOutput{
		Ranges:   stats.RangesDiscovered,
		Expanded: stats.RangesExpanded,
		Failed:   stats.RangesFailed,
		Empty:    stats.RangesEmpty,
		Values:   stats.Values,
		Patterns: stats.Patterns,
	}
	return output
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(BuildOutput(result)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return failures(result), nil
}
