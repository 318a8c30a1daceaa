package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gofill/pkg/runner"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 ranges expanded (9 values, 1 pattern), 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.RangesDiscovered == 0 {
		return s.Dim.Render("No ranges to expand") + "\n"
	}

	var details []string
	if stats.Values > 0 {
		details = append(details, plural(stats.Values, "value", "values"))
	}
	if stats.Patterns > 0 {
		details = append(details, plural(stats.Patterns, "pattern", "patterns"))
	}
	if stats.RangesEmpty > 0 {
		details = append(details, s.Warning.Render(fmt.Sprintf("%d empty", stats.RangesEmpty)))
	}

	msg := plural(stats.RangesExpanded, "range", "ranges") + " expanded"
	if stats.RangesFailed == 0 {
		msg = s.Success.Render(msg)
	}
	if len(details) > 0 {
		msg += s.Dim.Render(" (") + strings.Join(details, ", ") + s.Dim.Render(")")
	}
	if stats.RangesFailed > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.RangesFailed))
	}
	return msg + "\n"
}
