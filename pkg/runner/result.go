package runner

import (
	"github.com/samber/lo"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

// Outcome is the expansion of one descriptor.
type Outcome struct {
	Descriptor Descriptor

	// Result is nil when Error is set.
	Result *fillrange.Result

	// Error is set if the descriptor could not be expanded.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// RangesDiscovered is the number of descriptors read.
	RangesDiscovered int

	// RangesExpanded is the number of descriptors expanded without error.
	RangesExpanded int

	// RangesFailed is the number of descriptors that returned an error.
	RangesFailed int

	// RangesEmpty is the number of expansions that produced nothing,
	// typically invalid bounds without strict ranges.
	RangesEmpty int

	// Values is the total number of sequence members produced.
	Values int

	// Patterns is the number of expansions that produced a pattern.
	Patterns int
}

// Result is the overall runner result.
type Result struct {
	// Outcomes are in descriptor order.
	Outcomes []Outcome

	Stats Stats
}

// HasFailures reports whether any descriptor failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.RangesFailed > 0
}

// Failures returns the outcomes that carry an error.
func (r *Result) Failures() []Outcome {
	if r == nil {
		return nil
	}
	return lo.Filter(r.Outcomes, func(o Outcome, _ int) bool {
		return o.Error != nil
	})
}

// Single wraps one expansion as a Result, for reporting a lone range.
func Single(d Descriptor, res *fillrange.Result) *Result {
	result := &Result{}
	result.Stats.RangesDiscovered = 1
	result.accumulate(Outcome{Descriptor: d, Result: res})
	return result
}

func (r *Result) accumulate(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.RangesFailed++
	case outcome.Result.IsPattern():
		r.Stats.RangesExpanded++
		r.Stats.Patterns++
	case outcome.Result.Len() == 0:
		r.Stats.RangesExpanded++
		r.Stats.RangesEmpty++
	default:
		r.Stats.RangesExpanded++
		r.Stats.Values += outcome.Result.Len()
	}
}
