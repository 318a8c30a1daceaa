package fillrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

func TestParseStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		size uint64
		mode fillrange.Mode
	}{
		{"2", 2, fillrange.ModeSequence},
		{"-2", 2, fillrange.ModeSequence},
		{"03", 3, fillrange.ModeSequence},
		{"0", 1, fillrange.ModeSequence},
		{"+", 1, fillrange.ModeRepeat},
		{">", 1, fillrange.ModeJoin},
		{"2>", 2, fillrange.ModeJoin},
		{">5", 5, fillrange.ModeJoin},
		{"?", 1, fillrange.ModeRandom},
		{"|", 1, fillrange.ModeRegex},
		{"~", 1, fillrange.ModeRegex},
		{"~|", 1, fillrange.ModeRegex},
		{"|5", 5, fillrange.ModeRegex},
		{"0|", 1, fillrange.ModeRegex},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			step, err := fillrange.ParseStep(tt.text)
			require.NoError(t, err)
			assert.True(t, step.IsSet())
			assert.Equal(t, tt.size, step.Size())
			assert.Equal(t, tt.mode, step.Mode())
		})
	}
}

func TestParseStep_Empty(t *testing.T) {
	t.Parallel()

	step, err := fillrange.ParseStep("")
	require.NoError(t, err)
	assert.False(t, step.IsSet())
	assert.Equal(t, uint64(1), step.Size())
	assert.Empty(t, step.String())
}

func TestParseStep_Invalid(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"z", "a", "0a", "ff", "2f", "f2", "1.5", "+|", "2|3", "--1"} {
		_, err := fillrange.ParseStep(text)

		var stepErr *fillrange.StepError
		require.ErrorAs(t, err, &stepErr, "step %q", text)
		assert.Equal(t, text, stepErr.Step)
		assert.ErrorIs(t, err, fillrange.ErrInvalidStep)
	}
}

func TestStep_String(t *testing.T) {
	t.Parallel()

	for text, want := range map[string]string{"2": "2", ">5": "5>", "~": "|", "+": "+"} {
		step, err := fillrange.ParseStep(text)
		require.NoError(t, err)
		assert.Equal(t, want, step.String())
	}

	assert.Equal(t, "-4", fillrange.StepBy(-4).String())
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sequence", fillrange.ModeSequence.String())
	assert.Equal(t, "regex", fillrange.ModeRegex.String())
	assert.Equal(t, "unknown", fillrange.Mode(99).String())
}
