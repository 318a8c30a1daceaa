package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDescriptor is returned for text that is not a range descriptor.
var ErrInvalidDescriptor = errors.New("invalid range descriptor")

const rangeSeparator = ".."

// Descriptor is one range to expand, as written in a batch source.
type Descriptor struct {
	Start string
	End   string
	Step  string

	// Source is the file the descriptor was read from, or StdinPath.
	Source string

	// Line is the 1-based line number within Source.
	Line int
}

// ParseDescriptor parses "start..end..step", optionally wrapped in braces:
// "{1..10}", "{a..e..2}", "-5..5", "{x..3..+}" or a single value.
func ParseDescriptor(text string) (Descriptor, error) {
	body := strings.TrimSpace(text)
	if strings.HasPrefix(body, "{") != strings.HasSuffix(body, "}") {
		return Descriptor{}, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidDescriptor, text)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "{"), "}")

	parts := strings.Split(body, rangeSeparator)
	if len(parts) > 3 {
		return Descriptor{}, fmt.Errorf("%w: too many parts in %q", ErrInvalidDescriptor, text)
	}
	for _, part := range parts {
		if part == "" {
			return Descriptor{}, fmt.Errorf("%w: empty part in %q", ErrInvalidDescriptor, text)
		}
	}

	d := Descriptor{Start: parts[0]}
	if len(parts) > 1 {
		d.End = parts[1]
	}
	if len(parts) > 2 {
		d.Step = parts[2]
	}
	return d, nil
}

// String renders the descriptor in brace form.
func (d Descriptor) String() string {
	parts := []string{d.Start}
	if d.End != "" {
		parts = append(parts, d.End)
	}
	if d.Step != "" {
		parts = append(parts, d.Step)
	}
	return "{" + strings.Join(parts, rangeSeparator) + "}"
}

// Location returns "source:line" for descriptors read from a source.
func (d Descriptor) Location() string {
	if d.Source == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", d.Source, d.Line)
}
