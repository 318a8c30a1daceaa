package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofill/internal/logging"
	"github.com/yaklabco/gofill/pkg/reporter"
	"github.com/yaklabco/gofill/pkg/runner"
)

// ErrBatchFailed is returned when one or more ranges in a batch failed.
var ErrBatchFailed = errors.New("one or more ranges failed")

type batchFlags struct {
	rangeFlags
	format     string
	separator  string
	jobs       int
	failFast   bool
	showRange  bool
	summary    bool
	compact    bool
	extensions []string
}

func newBatchCommand() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Expand range descriptors read from files or stdin",
		Long:  batchLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, flags)
		},
	}

	addRangeFlags(cmd, &flags.rangeFlags)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, table, json, yaml, summary")
	cmd.Flags().StringVarP(&flags.separator, "separator", "s", "", `separator between members in text output (default "\n")`)
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop after the first failing range")
	cmd.Flags().BoolVar(&flags.showRange, "show-range", false, "print each range before its members")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary line to stderr")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact json output")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "file extensions read from directories (default .ranges,.txt)")

	return cmd
}

const batchLongDescription = `Expand range descriptors, one per line, read from files, directories or stdin.

A descriptor is START..END or START..END..STEP, optionally in braces.
Blank lines and lines starting with # are ignored. With no paths, or with
"-", descriptors are read from stdin. Directories are searched for files
with the configured extensions.

Examples:
  gofill batch ranges.txt
  echo '{1..10..3}' | gofill batch
  gofill batch --regex --format json testdata/
  gofill batch --jobs 4 --fail-fast a.ranges b.ranges`

func runBatch(cmd *cobra.Command, args []string, flags *batchFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := flags.cliConfig(cmd)
	cliCfg.Jobs = flags.jobs
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

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Extensions: flags.extensions,
		Stdin:      cmd.InOrStdin(),
		Jobs:       cfg.Jobs,
		FailFast:   flags.failFast,
		MaxLength:  cfg.EffectiveMaxLength(),
		Fill:       opts,
	}

	logger.Debug("starting batch run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldFormat, format,
	)

	result, runErr := runner.New().Run(ctx, runOpts)
	if result == nil {
		return fmt.Errorf("batch run failed: %w", runErr)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:         cmd.OutOrStdout(),
		ErrorWriter:    cmd.ErrOrStderr(),
		Format:         format,
		Color:          colorMode(cmd),
		Separator:      cfg.EffectiveSeparator(),
		ShowDescriptor: flags.showRange,
		ShowSummary:    flags.summary,
		Compact:        flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("batch run complete",
		logging.FieldExpanded, result.Stats.RangesExpanded,
		logging.FieldFailed, failed,
	)

	if runErr != nil && ctx.Err() != nil {
		return runErr
	}
	if failed > 0 || runErr != nil {
		return ErrBatchFailed
	}
	return nil
}
