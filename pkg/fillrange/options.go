package fillrange

import "math/rand/v2"

// TransformFunc formats one member. It receives the member's ordinal (the
// number, or the code point for letters) and its position in the sequence.
type TransformFunc func(value int64, index int) Value

// Options controls expansion.
type Options struct {
	// Step is the increment and mode. A step passed to ExpandStep or Fill
	// takes precedence.
	Step Step

	// StrictRanges returns endpoint errors instead of an empty sequence.
	StrictRanges bool

	// Stringify forces textual members for numeric ranges.
	Stringify bool

	// ToRegex returns a pattern instead of a sequence.
	ToRegex bool

	// Wrap groups multi-branch patterns in a non-capturing group.
	Wrap bool

	// Capture groups patterns in a capturing group. Implies Wrap.
	Capture bool

	// StrictZeros makes padded patterns require the full analyzed width
	// instead of tolerating shorter forms.
	StrictZeros bool

	// Shorthand emits \d instead of [0-9].
	Shorthand bool

	// RegexPrefix is spliced inside the opening delimiter of the pattern:
	// "^" negates a single character class, prefixes starting with "?"
	// (such as "?!") replace the group marker. Other prefixes are ignored.
	RegexPrefix string

	// Width forces zero padding of numeric members to at least this width.
	Width int

	// Transform replaces default formatting of sequence members.
	Transform TransformFunc

	// Rand is the source for ModeRandom. Nil uses the global generator.
	Rand *rand.Rand
}

// plan is a fully normalized expansion request.
type plan struct {
	start Endpoint
	end   Endpoint
	step  Step
	pad   padding
	opts  Options
}

func newPlan(start, end Bound, step Step, opts Options) (*plan, error) {
	first, last, err := Classify(start, end)
	if err != nil {
		return nil, err
	}

	if opts.Capture {
		opts.Wrap = true
	}
	if step.Mode() == ModeRegex {
		opts.ToRegex = true
		opts.Wrap = true
	}

	return &plan{
		start: first,
		end:   last,
		step:  step,
		pad:   analyzePadding(first, last, step, opts.Width),
		opts:  opts,
	}, nil
}

// descending reports whether the range walks downwards.
func (p *plan) descending() bool {
	return p.start.Value() > p.end.Value()
}

// textual reports whether numeric members are emitted as strings.
func (p *plan) textual() bool {
	return p.pad.active() || !p.start.Typed || !p.end.Typed || p.opts.Stringify
}
