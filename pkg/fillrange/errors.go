package fillrange

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndpoint indicates a bound that is neither an integer nor a
	// single letter.
	ErrInvalidEndpoint = errors.New("invalid range arguments")

	// ErrIncompatibleEndpoints indicates a numeric bound paired with a letter.
	ErrIncompatibleEndpoints = errors.New("incompatible range arguments")

	// ErrInvalidStep indicates a step that is neither a number nor a marker.
	ErrInvalidStep = errors.New("invalid step")
)

// RangeError reports the bounds that could not be expanded.
type RangeError struct {
	// Kind is ErrInvalidEndpoint or ErrIncompatibleEndpoints.
	Kind  error
	Start string
	End   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, []string{e.Start, e.End})
}

func (e *RangeError) Unwrap() error {
	return e.Kind
}

// StepError reports a step text that could not be parsed.
type StepError struct {
	Step string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("expected step %q to be a number", e.Step)
}

func (e *StepError) Unwrap() error {
	return ErrInvalidStep
}
