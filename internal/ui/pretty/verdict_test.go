package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gofill/internal/ui/pretty"
	"github.com/yaklabco/gofill/pkg/verify"
)

func TestFormatReport_OK(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatReport(&verify.Report{Pattern: "[1-9]|1[0-2]", Members: 12, Checked: 32})

	assert.Equal(t, "[1-9]|1[0-2]\n12 members, 32 inputs checked, 0 mismatches\n", result)
}

func TestFormatReport_Mismatches(t *testing.T) {
	styles := pretty.NewStyles(false)

	report := &verify.Report{
		Pattern: "[1-9]",
		Members: 1,
		Checked: 1,
		Mismatches: []verify.Mismatch{
			{Input: "10", Expected: true},
			{Input: "0", Expected: false, Matched: true},
		},
	}
	result := styles.FormatReport(report)

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], `"10"`)
	assert.Contains(t, lines[1], "expected match")
	assert.Contains(t, lines[2], "expected reject")
	assert.Equal(t, "1 member, 1 input checked, 2 mismatches", lines[3])
}

func TestFormatVerdict(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "  \"07\"  match\n", styles.FormatVerdict("07", true))
	assert.Equal(t, "  \"13\"  no match\n", styles.FormatVerdict("13", false))
}
