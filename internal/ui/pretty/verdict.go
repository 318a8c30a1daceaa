package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gofill/pkg/verify"
)

// FormatMismatch formats one input the pattern got wrong.
func (s *Styles) FormatMismatch(m verify.Mismatch) string {
	want := "reject"
	if m.Expected {
		want = "match"
	}
	return fmt.Sprintf("  %s  %s\n",
		s.Value.Render(strconv.Quote(m.Input)),
		s.Failure.Render("expected "+want),
	)
}

// FormatVerdict formats the result of matching a single input.
func (s *Styles) FormatVerdict(input string, matched bool) string {
	verdict := s.Failure.Render("no match")
	if matched {
		verdict = s.Success.Render("match")
	}
	return fmt.Sprintf("  %s  %s\n", s.Value.Render(strconv.Quote(input)), verdict)
}

// FormatReport formats a verification report: the pattern, each mismatch,
// and a closing count line.
func (s *Styles) FormatReport(report *verify.Report) string {
	var builder strings.Builder

	builder.WriteString(s.Pattern.Render(report.Pattern) + "\n")
	for _, m := range report.Mismatches {
		builder.WriteString(s.FormatMismatch(m))
	}

	summary := fmt.Sprintf("%s, %s checked, %s",
		plural(report.Members, "member", "members"),
		plural(report.Checked, "input", "inputs"),
		plural(len(report.Mismatches), "mismatch", "mismatches"),
	)
	if report.OK() {
		builder.WriteString(s.Success.Render(summary) + "\n")
	} else {
		builder.WriteString(s.Error.Render(summary) + "\n")
	}
	return builder.String()
}
