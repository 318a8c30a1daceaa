package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofill/internal/logging"
	"github.com/yaklabco/gofill/pkg/fsutil"
	"github.com/yaklabco/gofill/pkg/reporter"
	"github.com/yaklabco/gofill/pkg/runner"
)

// ErrExpandFailed is returned when a single range cannot be expanded.
var ErrExpandFailed = errors.New("expand failed")

type expandFlags struct {
	rangeFlags
	format    string
	separator string
	output    string
}

func newExpandCommand() *cobra.Command {
	flags := &expandFlags{}

	cmd := &cobra.Command{
		Use:   "expand START [END] [STEP]",
		Short: "Expand a single range",
		Long:  expandLongDescription,
		Args:  usageArgs(cobra.RangeArgs(1, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, args, flags)
		},
	}

	addRangeFlags(cmd, &flags.rangeFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, yaml, summary")
	cmd.Flags().StringVarP(&flags.separator, "separator", "s", "", `separator between members in text output (default "\n")`)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

const expandLongDescription = `Expand a range of numbers or letters.

The step may carry a marker that changes the output:
  +   repeat START END times
  >   join the members into one string
  ?   random string of END characters from the classes in START (a A 0 ! *)
  |   optimized regular expression

Examples:
  gofill expand 1 5                 # 1 2 3 4 5
  gofill expand 01 10 3             # 01 04 07 10
  gofill expand a e                 # a b c d e
  gofill expand 10 1 3              # 10 7 4 1
  gofill expand -- -3 3             # -3 -2 -1 0 1 2 3 (-- before negative bounds)
  gofill expand 1 1000 --regex      # [1-9]|[1-9][0-9]{1,2}|1000
  gofill expand 1 100 '|'           # (?:[1-9]|[1-9][0-9]|100)
  gofill expand 1 5 '>'             # 12345`

func runExpand(cmd *cobra.Command, args []string, flags *expandFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := flags.cliConfig(cmd)
	if cmd.Flags().Changed("separator") {
		cliCfg.Separator = &flags.separator
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	opts, err := fillOptions(cfg)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, flags.format, cfg)
	if err != nil {
		return err
	}

	desc := runner.Descriptor{Start: args[0]}
	if len(args) > 1 {
		desc.End = args[1]
	}
	if len(args) > 2 {
		desc.Step = args[2]
	}

	logger.Debug("expanding range",
		logging.FieldStart, desc.Start,
		logging.FieldEnd, desc.End,
		logging.FieldStep, desc.Step,
		logging.FieldMode, expandMode(opts.ToRegex),
		logging.FieldFormat, format,
		logging.FieldMaxLength, cfg.EffectiveMaxLength(),
	)

	res, err := runner.Expand(desc, opts, cfg.EffectiveMaxLength())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExpandFailed, desc, err)
	}

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if flags.output != "" {
		out = &buf
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      out,
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       outputColor(cmd, flags.output),
		Separator:   cfg.EffectiveSeparator(),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, runner.Single(desc, res)); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if flags.output == "" {
		return nil
	}
	if err := fsutil.WriteAtomic(ctx, flags.output, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("wrote output", logging.FieldOutput, flags.output, logging.FieldCount, res.Len())
	return nil
}

func expandMode(toRegex bool) string {
	if toRegex {
		return "regex"
	}
	return "sequence"
}

// outputColor disables styling when output goes to a file.
func outputColor(cmd *cobra.Command, output string) string {
	if output != "" {
		return "never"
	}
	return colorMode(cmd)
}
