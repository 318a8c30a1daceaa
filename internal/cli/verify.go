package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gofill/internal/logging"
	"github.com/yaklabco/gofill/internal/ui/pretty"
	"github.com/yaklabco/gofill/pkg/config"
	"github.com/yaklabco/gofill/pkg/fillrange"
	"github.com/yaklabco/gofill/pkg/verify"
)

// ErrVerifyFailed is returned when a pattern does not match exactly the
// members of its range.
var ErrVerifyFailed = errors.New("pattern verification failed")

type verifyFlags struct {
	rangeFlags
	margin int
	inputs []string
	format string
}

func newVerifyCommand() *cobra.Command {
	flags := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify START END [STEP]",
		Short: "Check a generated pattern against its range",
		Long: `Build the regular expression for a range and check it by brute force.

Every member of the range must match, and no value within --margin of
either end that is not a member may match. Padded ranges are also checked
in unpadded form. With --input, only the given strings are tested.

Examples:
  gofill verify 1 1000
  gofill verify 001 250 --strict-zeros
  gofill verify 0 100 7 --margin 50
  gofill verify -- -50 50           # -- before negative bounds
  gofill verify 1 12 --input 0 --input 13 --input 07`,
		Args: usageArgs(cobra.RangeArgs(2, 3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args, flags)
		},
	}

	addPatternFlags(cmd, &flags.rangeFlags)
	cmd.Flags().IntVar(&flags.margin, "margin", verify.DefaultMargin, "values checked beyond each end of the range")
	cmd.Flags().StringArrayVarP(&flags.inputs, "input", "i", nil, "test these strings instead of the range window")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, yaml")

	return cmd
}

func runVerify(cmd *cobra.Command, args []string, flags *verifyFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := flags.cliConfig(cmd)
	cliCfg.StrictRanges = config.Ptr(true)
	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	opts, err := fillOptions(cfg)
	if err != nil {
		return err
	}

	step := opts.Step
	if len(args) > 2 {
		step, err = fillrange.ParseStep(args[2])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
	}
	start, end := fillrange.Str(args[0]), fillrange.Str(args[1])

	if len(flags.inputs) > 0 {
		return runVerifyInputs(cmd, start, end, step, opts, flags)
	}

	report, err := verify.Range(ctx, start, end, step, opts, flags.margin)
	if err != nil {
		return fmt.Errorf("verify %s..%s: %w", args[0], args[1], err)
	}

	logger.Debug("verification complete",
		logging.FieldPattern, report.Pattern,
		logging.FieldMismatches, len(report.Mismatches),
	)

	if err := writeReport(cmd, flags.format, report); err != nil {
		return err
	}
	if !report.OK() {
		return ErrVerifyFailed
	}
	return nil
}

func runVerifyInputs(
	cmd *cobra.Command,
	start, end fillrange.Bound,
	step fillrange.Step,
	opts fillrange.Options,
	flags *verifyFlags,
) error {
	opts.ToRegex = true
	opts.RegexPrefix = ""
	res, err := fillrange.ExpandStep(start, end, step, opts)
	if err != nil {
		return fmt.Errorf("build pattern: %w", err)
	}
	if !res.IsPattern() {
		return verify.ErrUnsupportedMode
	}

	matches, err := verify.Match(res.Pattern, flags.inputs)
	if err != nil {
		return err
	}

	type inputMatch struct {
		Input   string `json:"input" yaml:"input"`
		Matched bool   `json:"matched" yaml:"matched"`
	}
	out := struct {
		Pattern string       `json:"pattern" yaml:"pattern"`
		Inputs  []inputMatch `json:"inputs" yaml:"inputs"`
	}{Pattern: res.Pattern}
	for i, input := range flags.inputs {
		out.Inputs = append(out.Inputs, inputMatch{input, matches[i]})
	}

	switch flags.format {
	case "json", "yaml", "yml":
		return encodeStructured(cmd.OutOrStdout(), flags.format, out)
	}

	w := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), w))
	fmt.Fprintln(w, styles.Pattern.Render(res.Pattern))
	for _, m := range out.Inputs {
		fmt.Fprint(w, styles.FormatVerdict(m.Input, m.Matched))
	}
	return nil
}

func writeReport(cmd *cobra.Command, format string, report *verify.Report) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json", "yaml", "yml":
		return encodeStructured(w, format, report)
	case "", "text":
	default:
		return fmt.Errorf("%w: unknown format %q; valid formats: text, json, yaml", ErrInvalidUsage, format)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), w))
	fmt.Fprint(w, styles.FormatReport(report))
	return nil
}

func encodeStructured(w io.Writer, format string, v any) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}
