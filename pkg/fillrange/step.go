package fillrange

import (
	"strconv"
	"strings"
)

// Mode selects how a range is expanded.
type Mode uint8

const (
	// ModeSequence walks the range and emits every member.
	ModeSequence Mode = iota
	// ModeRepeat repeats the start text end times.
	ModeRepeat
	// ModeJoin concatenates the members into a single string.
	ModeJoin
	// ModeRandom generates a random string of length end from the
	// character classes named by start.
	ModeRandom
	// ModeRegex produces a wrapped pattern instead of a sequence.
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeSequence:
		return "sequence"
	case ModeRepeat:
		return "repeat"
	case ModeJoin:
		return "join"
	case ModeRandom:
		return "random"
	case ModeRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// markers maps marker characters accepted in step text to their mode.
//
//nolint:gochecknoglobals // read-only lookup table
var markers = map[rune]Mode{
	'+': ModeRepeat,
	'>': ModeJoin,
	'?': ModeRandom,
	'|': ModeRegex,
	'~': ModeRegex,
}

const markerChars = "+>?|~"

// Step is the increment between members plus the expansion mode. The zero
// Step means "not supplied" and behaves as a step of 1.
type Step struct {
	size uint64
	mode Mode
	text string
	set  bool
}

// StepBy returns a numeric step. The sign is ignored: direction always comes
// from comparing the bounds. Zero is treated as 1.
func StepBy(n int64) Step {
	return Step{size: magnitude(n), text: strconv.FormatInt(n, 10), set: true}
}

// ParseStep parses step text: a number ("2", "-2", "03"), a marker ("+",
// ">", "?", "|", "~") or a marker combined with a number on either side
// ("2>", "|5"). An empty string yields the zero Step.
func ParseStep(text string) (Step, error) {
	if text == "" {
		return Step{}, nil
	}

	step := Step{set: true}

	number := strings.TrimRight(strings.TrimLeft(text, markerChars), markerChars)
	if strings.ContainsAny(number, markerChars) {
		return Step{}, &StepError{Step: text}
	}

	for _, r := range text {
		mode, ok := markers[r]
		if !ok {
			continue
		}
		if step.mode != ModeSequence && step.mode != mode {
			return Step{}, &StepError{Step: text}
		}
		step.mode = mode
	}

	if number == "" {
		return step, nil
	}

	if !isIntegerText(number) {
		return Step{}, &StepError{Step: text}
	}
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return Step{}, &StepError{Step: text}
	}

	step.size = magnitude(n)
	step.text = number
	return step, nil
}

// Size returns the increment, at least 1.
func (s Step) Size() uint64 {
	if s.size == 0 {
		return 1
	}
	return s.size
}

// Mode returns the expansion mode.
func (s Step) Mode() Mode {
	return s.mode
}

// IsSet reports whether a step was supplied.
func (s Step) IsSet() bool {
	return s.set
}

// String returns the step as it would be written.
func (s Step) String() string {
	if !s.set {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(s.text)
	for r, mode := range markers {
		if mode == s.mode && r != '~' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// digits returns the step's number text without its sign.
func (s Step) digits() string {
	return unsigned(s.text)
}

func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
