package runner

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

// ErrRangeTooLong is returned when a range exceeds the configured maximum
// number of members.
var ErrRangeTooLong = errors.New("range too long")

// Expand expands one descriptor. A step in the descriptor takes precedence
// over opts.Step. Ranges that would walk more than maxLength members, or
// repeat and random output longer than maxLength, are rejected before
// materialization; patterns for unit-step ranges are never rejected since
// their size does not depend on the span.
func Expand(d Descriptor, opts fillrange.Options, maxLength uint64) (*fillrange.Result, error) {
	step, err := fillrange.ParseStep(d.Step)
	if err != nil {
		return nil, err
	}
	if !step.IsSet() {
		step = opts.Step
	}

	start, end := bound(d.Start), bound(d.End)

	if maxLength > 0 && !optimized(step, opts) {
		n, err := fillrange.Cost(start, end, step)
		if err == nil && n > maxLength {
			return nil, fmt.Errorf("%w: %s needs %d %s, limit is %d", ErrRangeTooLong, d, n, costUnit(step), maxLength)
		}
	}

	return fillrange.ExpandStep(start, end, step, opts)
}

// optimized reports whether the range is rendered by the optimizer rather
// than by walking its members.
func optimized(step fillrange.Step, opts fillrange.Options) bool {
	switch step.Mode() {
	case fillrange.ModeRegex:
		return step.Size() == 1
	case fillrange.ModeSequence:
		return opts.ToRegex && step.Size() == 1
	default:
		return false
	}
}

func costUnit(step fillrange.Step) string {
	switch step.Mode() {
	case fillrange.ModeRepeat:
		return "repetitions"
	case fillrange.ModeRandom:
		return "characters"
	default:
		return "members"
	}
}

// bound converts descriptor text to a Bound. Integers written in canonical
// form become typed numbers so that structured output keeps them numeric;
// anything else, zero-padded numbers included, stays text.
func bound(text string) fillrange.Bound {
	if text == "" {
		return fillrange.Bound{}
	}
	if n, err := strconv.ParseInt(text, 10, 64); err == nil && strconv.FormatInt(n, 10) == text {
		return fillrange.Num(n)
	}
	return fillrange.Str(text)
}
