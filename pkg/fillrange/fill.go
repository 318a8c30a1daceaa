package fillrange

import "errors"

// Expand expands the range from start to end using opts.Step.
//
// Endpoint errors are returned only with StrictRanges; otherwise they yield
// an empty sequence.
func Expand(start, end Bound, opts Options) (*Result, error) {
	return ExpandStep(start, end, opts.Step, opts)
}

// Fill is Expand with the step given as text, as accepted by ParseStep.
// Invalid step text is always reported.
func Fill(start, end Bound, step string, opts Options) (*Result, error) {
	parsed, err := ParseStep(step)
	if err != nil {
		return nil, err
	}
	return ExpandStep(start, end, parsed, opts)
}

// ExpandStep expands the range with an explicit step, which takes precedence
// over opts.Step when set.
func ExpandStep(start, end Bound, step Step, opts Options) (*Result, error) {
	if !step.IsSet() {
		step = opts.Step
	}

	switch step.Mode() {
	case ModeRepeat:
		values, err := repeat(start, end)
		if err != nil {
			return fail(err, opts)
		}
		return sequenceResult(values), nil

	case ModeRandom:
		values, err := random(start, end, opts.Rand)
		if err != nil {
			return fail(err, opts)
		}
		return sequenceResult(values), nil
	}

	p, err := newPlan(start, end, step, opts)
	if err != nil {
		return fail(err, opts)
	}

	switch {
	case p.step.Mode() == ModeJoin:
		return sequenceResult(p.join()), nil
	case p.opts.ToRegex:
		return patternResult(p.pattern()), nil
	default:
		return sequenceResult(p.materialize()), nil
	}
}

// ToRegex returns the pattern matching every member of the range.
func ToRegex(start, end Bound, opts Options) (string, error) {
	opts.ToRegex = true
	res, err := Expand(start, end, opts)
	if err != nil {
		return "", err
	}
	return res.Pattern, nil
}

// Len returns the number of members the range would produce without
// materializing it. Join and random modes produce one member, repeat mode
// produces end members. Endpoint errors are always returned.
func Len(start, end Bound, step Step) (uint64, error) {
	switch step.Mode() {
	case ModeRepeat:
		return repetitions(start, end)
	case ModeRandom:
		if _, err := repetitions(start, end); err != nil {
			return 0, err
		}
		return 1, nil
	}

	first, last, err := Classify(start, end)
	if err != nil {
		return 0, err
	}
	if step.Mode() == ModeJoin {
		return 1, nil
	}
	return count(first.Value(), last.Value(), step.Size()), nil
}

// Cost returns the amount of work expanding the range takes: the members
// walked for sequence and join modes, and the length of the output for
// repeat and random modes. It is Len except for join and random, which
// produce a single member. Endpoint errors are always returned.
func Cost(start, end Bound, step Step) (uint64, error) {
	switch step.Mode() {
	case ModeRepeat, ModeRandom:
		return repetitions(start, end)
	}

	first, last, err := Classify(start, end)
	if err != nil {
		return 0, err
	}
	return count(first.Value(), last.Value(), step.Size()), nil
}

func fail(err error, opts Options) (*Result, error) {
	if opts.StrictRanges || errors.Is(err, ErrInvalidStep) {
		return nil, err
	}
	return sequenceResult(nil), nil
}
