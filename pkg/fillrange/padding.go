package fillrange

import (
	"strconv"
	"strings"
)

// padding is the zero-padding policy derived from the bounds. The width
// counts digits only; a sign is placed in front of the padding.
type padding struct {
	width int
}

func (p padding) active() bool {
	return p.width > 0
}

// analyzePadding activates padding when any numeric bound or the step is
// written with a leading zero, or when a minimum width is forced.
func analyzePadding(start, end Endpoint, step Step, minWidth int) padding {
	if start.Kind != KindNumber {
		return padding{}
	}

	texts := [...]string{start.digits(), end.digits(), step.digits()}

	padded := minWidth > 0
	for _, text := range texts {
		if hasLeadingZero(text) {
			padded = true
		}
	}
	if !padded {
		return padding{}
	}

	width := max(minWidth, 1)
	for _, text := range texts {
		width = max(width, len(text))
	}
	return padding{width: width}
}

// hasLeadingZero reports whether unsigned digits start with a zero that is
// not the whole number: "007" and "00" do, "0" does not.
func hasLeadingZero(digits string) bool {
	return len(digits) > 1 && digits[0] == '0'
}

// format renders n with the padding applied.
func (p padding) format(n int64) string {
	return p.text(strconv.FormatInt(n, 10))
}

// text pads already formatted text, keeping a leading sign in front.
func (p padding) text(s string) string {
	if !p.active() {
		return s
	}
	sign, digits := "", s
	if strings.HasPrefix(s, "-") {
		sign, digits = "-", s[1:]
	}
	if len(digits) >= p.width {
		return s
	}
	return sign + strings.Repeat("0", p.width-len(digits)) + digits
}

// digitWidth returns the number of decimal digits in a non-negative n.
func digitWidth(n int64) int {
	return len(strconv.FormatInt(n, 10))
}
