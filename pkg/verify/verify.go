// Package verify checks generated patterns against the ranges they were
// built from. Patterns are compiled with an ECMAScript-compatible engine so
// the check reflects how they behave in the regex dialects they target.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/yaklabco/gofill/internal/logging"
	"github.com/yaklabco/gofill/pkg/fillrange"
)

// DefaultMargin is the number of values checked on each side of a range.
const DefaultMargin = 10

// MaxCandidates bounds the number of inputs a single check evaluates.
const MaxCandidates = 1_000_000

// cancelCheckInterval is how often the candidate loop polls the context.
const cancelCheckInterval = 4096

var (
	// ErrNoPattern is returned when a range produces no pattern to verify.
	ErrNoPattern = errors.New("range produced no pattern")

	// ErrUnsupportedMode is returned for steps whose output is not a pattern.
	ErrUnsupportedMode = errors.New("only sequence and regex steps can be verified")

	// ErrWindowTooLarge is returned when the candidate window exceeds MaxCandidates.
	ErrWindowTooLarge = errors.New("verification window too large")
)

// Mismatch is an input the pattern classified incorrectly.
type Mismatch struct {
	Input    string `json:"input" yaml:"input"`
	Expected bool   `json:"expected" yaml:"expected"`
	Matched  bool   `json:"matched" yaml:"matched"`
}

// Report is the outcome of verifying one range.
type Report struct {
	Pattern    string     `json:"pattern" yaml:"pattern"`
	Members    int        `json:"members" yaml:"members"`
	Checked    int        `json:"checked" yaml:"checked"`
	Mismatches []Mismatch `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// OK reports whether the pattern matched exactly the members of the range.
func (r *Report) OK() bool {
	return r != nil && len(r.Mismatches) == 0
}

// Compile anchors pattern and compiles it in ECMAScript mode.
func Compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}
	return re, nil
}

// Match reports, for each input, whether pattern matches it in full.
func Match(pattern string, inputs []string) ([]bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	matches := make([]bool, len(inputs))
	for i, input := range inputs {
		ok, err := re.MatchString(input)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", input, err)
		}
		matches[i] = ok
	}
	return matches, nil
}

// Range builds the pattern for start..end and checks it against every
// member plus margin values beyond each end. Padded numeric ranges are also
// checked in unpadded form: relaxed patterns must accept it, strict-zeros
// patterns must reject it.
//
// The regex prefix option is ignored since lookaround markers change what a
// pattern matches.
func Range(
	ctx context.Context,
	start, end fillrange.Bound,
	step fillrange.Step,
	opts fillrange.Options,
	margin int,
) (*Report, error) {
	logger := logging.FromContext(ctx)

	switch step.Mode() {
	case fillrange.ModeSequence, fillrange.ModeRegex:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, step.Mode())
	}
	if margin < 0 {
		margin = 0
	}

	opts.StrictRanges = true
	opts.RegexPrefix = ""
	opts.Transform = nil

	first, last, err := fillrange.Classify(start, end)
	if err != nil {
		return nil, err
	}
	if err := checkWindow(first, last, margin); err != nil {
		return nil, err
	}

	seqStep, err := sequenceStep(step)
	if err != nil {
		return nil, err
	}

	seqOpts := opts
	seqOpts.ToRegex = false
	members, err := fillrange.ExpandStep(start, end, seqStep, seqOpts)
	if err != nil {
		return nil, err
	}

	opts.ToRegex = true
	res, err := fillrange.ExpandStep(start, end, step, opts)
	if err != nil {
		return nil, err
	}
	if !res.IsPattern() || res.Pattern == "" {
		return nil, ErrNoPattern
	}

	re, err := Compile(res.Pattern)
	if err != nil {
		return nil, err
	}

	memberSet := make(map[string]struct{}, members.Len())
	for _, m := range members.Strings() {
		memberSet[m] = struct{}{}
	}

	candidates := candidateSet(first, last, members.Strings(), margin)

	report := &Report{Pattern: res.Pattern, Members: members.Len()}
	for i, c := range candidates {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("verification cancelled: %w", err)
			}
		}

		matched, err := re.MatchString(c.input)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", c.input, err)
		}
		expected := c.expect(memberSet, opts.StrictZeros)

		report.Checked++
		if matched != expected {
			report.Mismatches = append(report.Mismatches, Mismatch{Input: c.input, Expected: expected, Matched: matched})
		}
	}

	logger.Debug("verified pattern",
		logging.FieldPattern, res.Pattern,
		logging.FieldCount, report.Checked,
		logging.FieldMismatches, len(report.Mismatches),
	)

	return report, nil
}

// sequenceStep returns step with the regex marker removed, keeping its
// number text so padding is inferred the same way.
func sequenceStep(step fillrange.Step) (fillrange.Step, error) {
	if step.Mode() != fillrange.ModeRegex {
		return step, nil
	}
	text := strings.TrimRight(strings.TrimLeft(step.String(), "|~"), "|~")
	if text == "" {
		return fillrange.StepBy(1), nil
	}
	return fillrange.ParseStep(text)
}

// candidate is one input to test. Unpadded inputs carry the padded form of
// the same value in canonical.
type candidate struct {
	input     string
	canonical string
	unpadded  bool
}

func (c candidate) expect(members map[string]struct{}, strictZeros bool) bool {
	if !c.unpadded {
		_, ok := members[c.input]
		return ok
	}
	if strictZeros {
		return false
	}
	_, ok := members[c.canonical]
	return ok
}

// window returns the inclusive bounds of the values to check.
func window(first, last fillrange.Endpoint, margin int) (int64, int64) {
	lo, hi := first.Value(), last.Value()
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = clampSub(lo, int64(margin))
	hi = clampAdd(hi, int64(margin))

	if first.Kind == fillrange.KindLetter {
		lo = max(lo, 0)
		hi = min(hi, utf8.MaxRune)
	}
	return lo, hi
}

func checkWindow(first, last fillrange.Endpoint, margin int) error {
	lo, hi := window(first, last, margin)
	if uint64(hi-lo) >= MaxCandidates {
		return fmt.Errorf("%w: %d values", ErrWindowTooLarge, uint64(hi-lo)+1)
	}
	return nil
}

func candidateSet(first, last fillrange.Endpoint, members []string, margin int) []candidate {
	lo, hi := window(first, last, margin)

	if first.Kind == fillrange.KindLetter {
		candidates := make([]candidate, 0, hi-lo+1)
		for v := lo; v <= hi; v++ {
			r := rune(v)
			if !utf8.ValidRune(r) {
				continue
			}
			candidates = append(candidates, candidate{input: string(r)})
		}
		return candidates
	}

	width := paddedWidth(members)
	candidates := make([]candidate, 0, 2*(hi-lo+1))
	for v := lo; ; v++ {
		plain := strconv.FormatInt(v, 10)
		padded := pad(v, width)
		candidates = append(candidates, candidate{input: padded})
		if plain != padded {
			candidates = append(candidates, candidate{input: plain, canonical: padded, unpadded: true})
		}
		if v == hi {
			break
		}
	}
	return candidates
}

// paddedWidth returns the digit width of zero-padded members, or 0.
func paddedWidth(members []string) int {
	width := 0
	for _, m := range members {
		digits := strings.TrimLeft(m, "+-")
		if len(digits) > 1 && digits[0] == '0' {
			width = max(width, len(digits))
		}
	}
	return width
}

func pad(v int64, width int) string {
	digits := strconv.FormatUint(magnitude(v), 10)
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	if v < 0 {
		return "-" + digits
	}
	return digits
}

func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func clampSub(v, d int64) int64 {
	if v < math.MinInt64+d {
		return math.MinInt64
	}
	return v - d
}

func clampAdd(v, d int64) int64 {
	if v > math.MaxInt64-d {
		return math.MaxInt64
	}
	return v + d
}
