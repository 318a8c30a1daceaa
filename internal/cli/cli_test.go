package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/gofill/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "gofill" {
		t.Errorf("expected Use to be 'gofill', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"expand", "batch", "verify", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := map[string][]string{
		"expand": {"regex", "wrap", "capture", "strict-zeros", "strict", "stringify", "shorthand",
			"prefix", "width", "step", "seed", "format", "separator", "output", "max-length"},
		"batch":  {"jobs", "fail-fast", "format", "regex", "show-range", "summary", "ext"},
		"verify": {"margin", "input", "strict-zeros", "capture", "format"},
		"init":   {"force", "full", "format", "output"},
	}

	for name, flags := range tests {
		cmd := cli.NewRootCommand(testInfo())
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Fatalf("%s command not found: %v", name, err)
		}
		for _, flag := range flags {
			if subCmd.Flags().Lookup(flag) == nil {
				t.Errorf("expected %s flag --%s to exist", name, flag)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	for _, flag := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected global flag --%s to exist", flag)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"usage", fmt.Errorf("%w: accepts 1 arg", cli.ErrInvalidUsage), cli.ExitInvalidUsage},
		{"config", errors.Join(cli.ErrConfig, errors.New("bad")), cli.ExitConfigError},
		{"batch", cli.ErrBatchFailed, cli.ExitFailure},
		{"verify", cli.ErrVerifyFailed, cli.ExitFailure},
		{"other", errors.New("boom"), cli.ExitFailure},
	}

	for _, tt := range tests {
		if got := cli.ExitCode(tt.err); got != tt.want {
			t.Errorf("%s: ExitCode() = %d, want %d", tt.name, got, tt.want)
		}
	}

	if !cli.Reported(cli.ErrBatchFailed) || cli.Reported(cli.ErrExpandFailed) {
		t.Error("Reported() misclassified errors")
	}
}
