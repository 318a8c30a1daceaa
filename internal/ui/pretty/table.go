package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gofill/pkg/runner"
)

const (
	columnGap      = 2
	lightSeparator = "-"
	maxSeparator   = 60
)

// TableFormatter lays out expanded sequences in columns sized to the
// terminal, one block per descriptor.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

// FormatTable formats runner results as blocks of columns.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Outcomes) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, outcome := range result.Outcomes {
		if i > 0 {
			builder.WriteString("\n")
		}
		t.writeBlock(&builder, outcome)
	}
	return builder.String()
}

func (t *TableFormatter) writeBlock(builder *strings.Builder, outcome runner.Outcome) {
	header := t.styles.Descriptor.Render(outcome.Descriptor.String())
	if loc := outcome.Descriptor.Location(); loc != "" {
		header += " " + t.styles.Location.Render(loc)
	}
	builder.WriteString(header)
	builder.WriteString("\n")

	width := min(t.termWidth, maxSeparator)
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, width)))
	builder.WriteString("\n")

	switch {
	case outcome.Error != nil:
		builder.WriteString(t.styles.Error.Render(fmt.Sprintf("error: %v", outcome.Error)))
		builder.WriteString("\n")
	case outcome.Result.IsPattern():
		builder.WriteString(t.styles.Pattern.Render(outcome.Result.Pattern))
		builder.WriteString("\n")
	case outcome.Result.Len() == 0:
		builder.WriteString(t.styles.Dim.Render("(empty)"))
		builder.WriteString("\n")
	default:
		t.writeGrid(builder, outcome.Result.Strings())
	}
}

// writeGrid writes values column-major, like ls.
func (t *TableFormatter) writeGrid(builder *strings.Builder, values []string) {
	cellWidth := 0
	for _, v := range values {
		cellWidth = max(cellWidth, lipgloss.Width(v))
	}
	cellWidth += columnGap

	columns := max(1, t.termWidth/cellWidth)
	rows := (len(values) + columns - 1) / columns

	for row := range rows {
		var line strings.Builder
		for col := range columns {
			idx := col*rows + row
			if idx >= len(values) {
				break
			}
			value := values[idx]
			line.WriteString(t.styles.Value.Render(value))
			if col < columns-1 && idx+rows < len(values) {
				line.WriteString(strings.Repeat(" ", cellWidth-lipgloss.Width(value)))
			}
		}
		builder.WriteString(line.String())
		builder.WriteString("\n")
	}
}
