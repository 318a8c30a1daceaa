package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gofill/internal/configloader"
	"github.com/yaklabco/gofill/internal/logging"
	"github.com/yaklabco/gofill/pkg/config"
	"github.com/yaklabco/gofill/pkg/fillrange"
	"github.com/yaklabco/gofill/pkg/reporter"
)

// rangeFlags are the expansion flags shared by expand, batch and verify.
type rangeFlags struct {
	regex       bool
	wrap        bool
	capture     bool
	strictZeros bool
	shorthand   bool
	prefix      string
	strict      bool
	stringify   bool
	width       int
	step        string
	seed        uint64
	maxLength   uint64
}

func addPatternFlags(cmd *cobra.Command, flags *rangeFlags) {
	cmd.Flags().BoolVar(&flags.wrap, "wrap", false, "group multi-branch patterns in (?:...)")
	cmd.Flags().BoolVar(&flags.capture, "capture", false, "group the pattern in a capturing group")
	cmd.Flags().BoolVar(&flags.strictZeros, "strict-zeros", false, "require the full padded width in patterns")
	cmd.Flags().BoolVar(&flags.shorthand, "shorthand", false, `use \d instead of [0-9]`)
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", `spliced into the opening delimiter: "^" or "?!"`)
	cmd.Flags().IntVar(&flags.width, "width", 0, "zero-pad numbers to at least this many digits")
}

func addRangeFlags(cmd *cobra.Command, flags *rangeFlags) {
	addPatternFlags(cmd, flags)
	cmd.Flags().BoolVarP(&flags.regex, "regex", "r", false, "output a regular expression instead of a sequence")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "report invalid ranges as errors instead of empty output")
	cmd.Flags().BoolVar(&flags.stringify, "stringify", false, "emit numbers as strings in json and yaml output")
	cmd.Flags().StringVar(&flags.step, "step", "", "default step, optionally with a marker (+ > ? |)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for random mode (0 = nondeterministic)")
	cmd.Flags().Uint64Var(&flags.maxLength, "max-length", config.DefaultMaxLength,
		"reject ranges with more members (0 = unlimited)")
}

// cliConfig returns a configuration holding only the flags set on the
// command line, so unset flags do not mask config files.
func (f *rangeFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{ToRegex: f.regex, Seed: f.seed}
	changed := cmd.Flags().Changed

	setIf := func(name string, apply func()) {
		if changed(name) {
			apply()
		}
	}
	setIf("strict", func() { cfg.StrictRanges = config.Ptr(f.strict) })
	setIf("stringify", func() { cfg.Stringify = config.Ptr(f.stringify) })
	setIf("width", func() { cfg.Width = config.Ptr(f.width) })
	setIf("step", func() { cfg.Step = f.step })
	setIf("max-length", func() { cfg.MaxLength = config.Ptr(f.maxLength) })
	setIf("wrap", func() { cfg.Regex.Wrap = config.Ptr(f.wrap) })
	setIf("capture", func() { cfg.Regex.Capture = config.Ptr(f.capture) })
	setIf("strict-zeros", func() { cfg.Regex.StrictZeros = config.Ptr(f.strictZeros) })
	setIf("shorthand", func() { cfg.Regex.Shorthand = config.Ptr(f.shorthand) })
	setIf("prefix", func() { cfg.Regex.Prefix = config.Ptr(f.prefix) })

	return cfg
}

// loadConfig merges cliCfg over the discovered configuration files.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// fillOptions converts cfg to expansion options, seeding random mode when
// a seed was given.
func fillOptions(cfg *config.Config) (fillrange.Options, error) {
	opts, err := cfg.FillOptions()
	if err != nil {
		return fillrange.Options{}, errors.Join(ErrConfig, err)
	}
	if cfg.Seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	return opts, nil
}

// outputFormat resolves the format flag, falling back to the configuration.
func outputFormat(cmd *cobra.Command, flag string, cfg *config.Config) (reporter.Format, error) {
	text := string(cfg.Format)
	if cmd.Flags().Changed("format") {
		text = flag
	}
	format, err := reporter.ParseFormat(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	return format, nil
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
