package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofill/internal/cli"
)

type execResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) execResult {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	// Flags go right after the command name so a "--" in args still ends
	// flag parsing.
	full := []string{"--color", "never"}
	if len(args) > 0 {
		full = append([]string{args[0]}, append(full, args[1:]...)...)
	}
	cmd.SetArgs(full)

	err := cmd.Execute()
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestIntegration_Expand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"numbers", []string{"expand", "1", "5"}, "1\n2\n3\n4\n5\n"},
		{"padded step", []string{"expand", "01", "10", "3", "-s", ","}, "01,04,07,10\n"},
		{"letters", []string{"expand", "a", "e", "2", "-s", " "}, "a c e\n"},
		{"descending", []string{"expand", "10", "1", "3", "-s", ","}, "10,7,4,1\n"},
		{"single bound", []string{"expand", "7"}, "7\n"},
		{"step flag", []string{"expand", "0", "10", "--step", "5", "-s", ","}, "0,5,10\n"},
		{"regex flag", []string{"expand", "1", "1000", "--regex"}, "[1-9]|[1-9][0-9]{1,2}|1000\n"},
		{"regex marker", []string{"expand", "1", "100", "|"}, "(?:[1-9]|[1-9][0-9]|100)\n"},
		{"capture", []string{"expand", "2", "8", "--regex", "--capture"}, "([2-8])\n"},
		{"join", []string{"expand", "1", "5", ">"}, "12345\n"},
		{"repeat", []string{"expand", "ab", "3", "+"}, "ab\nab\nab\n"},
		{"width", []string{"expand", "8", "10", "--width", "3", "-s", ","}, "008,009,010\n"},
		{"negative bounds", []string{"expand", "-s", ",", "--", "-3", "3"}, "-3,-2,-1,0,1,2,3\n"},
		{"negative regex", []string{"expand", "--regex", "--", "-10", "10"}, "-[1-9]|-?10|[0-9]\n"},
		{"invalid without strict", []string{"expand", "1", "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, "", tt.args...)
			require.NoError(t, res.err, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestIntegration_ExpandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no args", []string{"expand"}, cli.ExitInvalidUsage},
		{"too many args", []string{"expand", "1", "2", "3", "4"}, cli.ExitInvalidUsage},
		{"negative bound without separator", []string{"expand", "-3", "3"}, cli.ExitInvalidUsage},
		{"unknown flag", []string{"expand", "1", "2", "--bogus"}, cli.ExitInvalidUsage},
		{"unknown format", []string{"expand", "1", "2", "--format", "sarif"}, cli.ExitInvalidUsage},
		{"strict incompatible", []string{"expand", "1", "x", "--strict"}, cli.ExitFailure},
		{"invalid step", []string{"expand", "1", "5", "x"}, cli.ExitFailure},
		{"too long", []string{"expand", "1", "100", "--max-length", "10"}, cli.ExitFailure},
		{"missing config", []string{"expand", "1", "2", "--config", "/nonexistent/gofill.yml"}, cli.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := execute(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(res.err), res.err.Error())
		})
	}
}

func TestIntegration_ExpandJSON(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "expand", "1", "3", "--format", "json")
	require.NoError(t, res.err)

	var decoded struct {
		Ranges []struct {
			Range  string `json:"range"`
			Values []any  `json:"values"`
		} `json:"ranges"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
	require.Len(t, decoded.Ranges, 1)
	assert.Equal(t, "{1..3}", decoded.Ranges[0].Range)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, decoded.Ranges[0].Values)

	res = execute(t, "", "expand", "1", "3", "--format", "json", "--stringify")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"1"`)
}

func TestIntegration_ExpandOutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "members.txt")
	res := execute(t, "", "expand", "a", "c", "--output", out)
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", string(content))
}

func TestIntegration_ExpandRandomSeed(t *testing.T) {
	t.Parallel()

	first := execute(t, "", "expand", "a0", "12", "?", "--seed", "42")
	second := execute(t, "", "expand", "a0", "12", "?", "--seed", "42")
	require.NoError(t, first.err)
	require.NoError(t, second.err)

	value := strings.TrimSuffix(first.stdout, "\n")
	assert.Len(t, value, 12)
	assert.Equal(t, first.stdout, second.stdout)
	for _, r := range value {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'), "unexpected %q", r)
	}
}

func TestIntegration_ExpandConfigFile(t *testing.T) {
	t.Parallel()

	cfgFile := filepath.Join(t.TempDir(), "gofill.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("separator: \",\"\nregex:\n  wrap: true\n"), 0o644))

	res := execute(t, "", "expand", "1", "3", "--config", cfgFile)
	require.NoError(t, res.err)
	assert.Equal(t, "1,2,3\n", res.stdout)

	res = execute(t, "", "expand", "2", "10", "--regex", "--config", cfgFile)
	require.NoError(t, res.err)
	assert.Equal(t, "(?:[2-9]|10)\n", res.stdout)

	// Flags set on the command line win over the file.
	res = execute(t, "", "expand", "2", "10", "--regex", "--wrap=false", "--config", cfgFile)
	require.NoError(t, res.err)
	assert.Equal(t, "[2-9]|10\n", res.stdout)
}

func TestIntegration_Batch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "list.ranges")
	require.NoError(t, os.WriteFile(file, []byte("# numbers\n{1..3}\n\na..c..2\n"), 0o644))

	res := execute(t, "", "batch", "-s", ",", file)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "1,2,3\na,c\n", res.stdout)

	res = execute(t, "", "batch", "--regex", "--show-range", file)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "{1..3}\n[1-3]\n{a..c..2}\na|c\n", res.stdout)
}

func TestIntegration_BatchStdin(t *testing.T) {
	t.Parallel()

	res := execute(t, "1..2\n{5..4}\n", "batch", "-s", " ", "--summary")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "1 2\n5 4\n", res.stdout)
	assert.Contains(t, res.stderr, "2 ranges expanded")
}

func TestIntegration_BatchFailures(t *testing.T) {
	t.Parallel()

	res := execute(t, "1..3\n1..x\n", "batch", "--strict")
	require.ErrorIs(t, res.err, cli.ErrBatchFailed)
	assert.True(t, cli.Reported(res.err))
	assert.Equal(t, "1\n2\n3\n", res.stdout)
	assert.Contains(t, res.stderr, "{1..x}")

	res = execute(t, "{1..2\n", "batch")
	require.Error(t, res.err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(res.err))
}

func TestIntegration_Verify(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "verify", "1", "1000")
	require.NoError(t, res.err, res.stdout)
	assert.Contains(t, res.stdout, "[1-9]|[1-9][0-9]{1,2}|1000")
	assert.Contains(t, res.stdout, "1000 members")
	assert.Contains(t, res.stdout, "0 mismatches")

	res = execute(t, "", "verify", "001", "120", "--strict-zeros", "--format", "json")
	require.NoError(t, res.err, res.stdout)
	var report struct {
		Pattern string `json:"pattern"`
		Members int    `json:"members"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report))
	assert.Equal(t, 120, report.Members)

	res = execute(t, "", "verify", "0", "60", "7", "--margin", "20")
	require.NoError(t, res.err, res.stdout)

	res = execute(t, "", "verify", "--", "-50", "50")
	require.NoError(t, res.err, res.stdout)
	assert.Contains(t, res.stdout, "101 members")
}

func TestIntegration_VerifyInputs(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "verify", "1", "12", "-i", "0", "-i", "7", "-i", "12", "-i", "13")
	require.NoError(t, res.err)
	assert.Equal(t, strings.Join([]string{
		"[1-9]|1[0-2]",
		`  "0"  no match`,
		`  "7"  match`,
		`  "12"  match`,
		`  "13"  no match`,
	}, "\n")+"\n", res.stdout)

	res = execute(t, "", "verify", "1")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(res.err))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gofill.yml")

	res := execute(t, "", "init", "--output", path)
	require.NoError(t, res.err, res.stderr)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gofill configuration")

	res = execute(t, "", "init", "--output", path)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "already exists")

	res = execute(t, "", "init", "--output", path, "--force", "--full")
	require.NoError(t, res.err, res.stderr)
	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, string(content), string(backup))

	// The generated file loads as a configuration.
	res = execute(t, "", "expand", "1", "2", "--config", path)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "1\n2\n", res.stdout)
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "test-version")
	assert.Contains(t, res.stdout, "test-commit")
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	res := execute(t, "", "expand", "--help")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Usage:")
	assert.Contains(t, res.stdout, "--strict-zeros")
	assert.Contains(t, res.stdout, "Global Flags:")
}
