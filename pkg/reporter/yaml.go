package reporter

import (
	"bufio"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gofill/pkg/runner"
)

// yamlIndent matches the indentation of generated config files.
const yamlIndent = 2

// YAMLReporter formats results as YAML.
type YAMLReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewYAMLReporter creates a new YAML reporter.
func NewYAMLReporter(opts Options) *YAMLReporter {
	return &YAMLReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *YAMLReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := yaml.NewEncoder(r.bw)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(BuildOutput(result)); err != nil {
		return 0, fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return 0, fmt.Errorf("encode YAML: %w", err)
	}

	return failures(result), nil
}
