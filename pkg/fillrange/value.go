package fillrange

import (
	"encoding/json"
	"strconv"
)

// Value is one member of an expanded sequence: a number or a string.
type Value struct {
	text    string
	num     int64
	numeric bool
}

// NumberValue returns a numeric Value.
func NumberValue(n int64) Value {
	return Value{num: n, numeric: true}
}

// StringValue returns a textual Value.
func StringValue(s string) Value {
	return Value{text: s}
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Int returns the number held by v.
func (v Value) Int() (int64, bool) {
	return v.num, v.numeric
}

func (v Value) String() string {
	if v.numeric {
		return strconv.FormatInt(v.num, 10)
	}
	return v.text
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.text)
}

// MarshalYAML encodes numbers as YAML integers and text as YAML strings.
func (v Value) MarshalYAML() (any, error) {
	if v.numeric {
		return v.num, nil
	}
	return v.text, nil
}

// Result is the outcome of an expansion: a sequence or a pattern.
type Result struct {
	// Sequence holds the members when the result is not a pattern.
	Sequence []Value

	// Pattern holds the regular expression when IsPattern is true.
	Pattern string

	pattern bool
}

func sequenceResult(values []Value) *Result {
	if values == nil {
		values = []Value{}
	}
	return &Result{Sequence: values}
}

func patternResult(pattern string) *Result {
	return &Result{Pattern: pattern, pattern: true}
}

// IsPattern reports whether the result is a regular expression.
func (r *Result) IsPattern() bool {
	return r != nil && r.pattern
}

// Len returns the number of members, or 1 for a pattern.
func (r *Result) Len() int {
	switch {
	case r == nil:
		return 0
	case r.pattern:
		return 1
	default:
		return len(r.Sequence)
	}
}

// Strings returns the members as text, or the pattern as a single element.
func (r *Result) Strings() []string {
	if r == nil {
		return nil
	}
	if r.pattern {
		return []string{r.Pattern}
	}
	out := make([]string, len(r.Sequence))
	for i, v := range r.Sequence {
		out[i] = v.String()
	}
	return out
}
