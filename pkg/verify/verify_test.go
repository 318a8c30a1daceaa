package verify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofill/pkg/fillrange"
	"github.com/yaklabco/gofill/pkg/verify"
)

func mustStep(t *testing.T, text string) fillrange.Step {
	t.Helper()
	step, err := fillrange.ParseStep(text)
	require.NoError(t, err)
	return step
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start, end fillrange.Bound
		step       string
		opts       fillrange.Options
	}{
		{"single digits", fillrange.Num(2), fillrange.Num(8), "", fillrange.Options{}},
		{"across widths", fillrange.Num(1), fillrange.Num(1000), "", fillrange.Options{}},
		{"negative to positive", fillrange.Num(-10), fillrange.Num(10), "", fillrange.Options{}},
		{"descending", fillrange.Num(100), fillrange.Num(7), "", fillrange.Options{}},
		{"padded relaxed", fillrange.Str("001"), fillrange.Str("100"), "", fillrange.Options{}},
		{"padded strict", fillrange.Str("001"), fillrange.Str("100"), "", fillrange.Options{StrictZeros: true}},
		{"negative padded", fillrange.Str("-02"), fillrange.Str("-100"), "", fillrange.Options{}},
		{"stepped", fillrange.Num(0), fillrange.Num(50), "7", fillrange.Options{}},
		{"regex marker", fillrange.Num(5), fillrange.Num(500), "|", fillrange.Options{}},
		{"capture", fillrange.Num(1), fillrange.Num(99), "", fillrange.Options{Capture: true}},
		{"shorthand", fillrange.Num(10), fillrange.Num(999), "", fillrange.Options{Shorthand: true}},
		{"letters", fillrange.Str("a"), fillrange.Str("k"), "", fillrange.Options{}},
		{"stepped letters", fillrange.Str("A"), fillrange.Str("Z"), "3", fillrange.Options{}},
		{"prefix ignored", fillrange.Num(1), fillrange.Num(30), "", fillrange.Options{RegexPrefix: "?!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report, err := verify.Range(context.Background(), tt.start, tt.end, mustStep(t, tt.step), tt.opts, verify.DefaultMargin)
			require.NoError(t, err)
			assert.True(t, report.OK(), "pattern %q mismatches: %+v", report.Pattern, report.Mismatches)
			assert.Positive(t, report.Members)
			assert.GreaterOrEqual(t, report.Checked, report.Members)
		})
	}
}

func TestRangeErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid endpoints", func(t *testing.T) {
		t.Parallel()
		_, err := verify.Range(context.Background(), fillrange.Str("1"), fillrange.Str("x"), fillrange.Step{}, fillrange.Options{}, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, fillrange.ErrIncompatibleEndpoints)
	})

	t.Run("join step", func(t *testing.T) {
		t.Parallel()
		_, err := verify.Range(context.Background(), fillrange.Num(1), fillrange.Num(3), mustStep(t, ">"), fillrange.Options{}, 1)
		assert.ErrorIs(t, err, verify.ErrUnsupportedMode)
	})

	t.Run("window too large", func(t *testing.T) {
		t.Parallel()
		_, err := verify.Range(context.Background(), fillrange.Num(0), fillrange.Num(1<<40), fillrange.Step{}, fillrange.Options{}, 0)
		assert.ErrorIs(t, err, verify.ErrWindowTooLarge)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := verify.Range(ctx, fillrange.Num(1), fillrange.Num(5), fillrange.Step{}, fillrange.Options{}, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	got, err := verify.Match(`[1-9]|1[0-2]`, []string{"1", "12", "13", "0", "a1"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false, false}, got)

	_, err = verify.Match(`[1-`, []string{"1"})
	require.Error(t, err)
}

func TestReportOK(t *testing.T) {
	t.Parallel()

	var nilReport *verify.Report
	assert.False(t, nilReport.OK())
	assert.True(t, (&verify.Report{}).OK())
	assert.False(t, (&verify.Report{Mismatches: []verify.Mismatch{{Input: "1"}}}).OK())
}
