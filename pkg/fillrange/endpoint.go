package fillrange

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Bound is a range endpoint as supplied by the caller: an integer or text.
// The zero Bound means the endpoint was not supplied.
type Bound struct {
	text  string
	n     int64
	isInt bool
	set   bool
}

// Num returns an integer bound.
func Num(n int64) Bound {
	return Bound{text: strconv.FormatInt(n, 10), n: n, isInt: true, set: true}
}

// Str returns a textual bound such as "7", "-05" or "a".
func Str(s string) Bound {
	return Bound{text: s, set: true}
}

// IsSet reports whether the bound was supplied.
func (b Bound) IsSet() bool {
	return b.set
}

// String returns the bound as written.
func (b Bound) String() string {
	return b.text
}

// Kind distinguishes numeric endpoints from letters.
type Kind uint8

const (
	// KindNumber is an integer endpoint.
	KindNumber Kind = iota + 1
	// KindLetter is a single alphabetic character.
	KindLetter
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Endpoint is a classified bound.
type Endpoint struct {
	Kind Kind

	// Number is the value of a numeric endpoint.
	Number int64

	// Letter is the character of a letter endpoint.
	Letter rune

	// Text is the original text of a numeric endpoint, sign and zero
	// padding included. Empty for letters.
	Text string

	// Typed is set when the bound was supplied as an integer rather than text.
	Typed bool
}

// Value returns the ordinal of the endpoint: the number itself or the code
// point of the letter.
func (e Endpoint) Value() int64 {
	if e.Kind == KindLetter {
		return int64(e.Letter)
	}
	return e.Number
}

// digits returns the text of a numeric endpoint without its sign.
func (e Endpoint) digits() string {
	return unsigned(e.Text)
}

// Classify decides whether start and end form a numeric or a letter range.
// A missing end mirrors start.
func Classify(start, end Bound) (Endpoint, Endpoint, error) {
	if !end.IsSet() {
		end = start
	}

	first, okFirst := classify(start)
	last, okLast := classify(end)

	if !okFirst || !okLast {
		return Endpoint{}, Endpoint{}, &RangeError{Kind: ErrInvalidEndpoint, Start: start.text, End: end.text}
	}
	if first.Kind != last.Kind {
		return Endpoint{}, Endpoint{}, &RangeError{Kind: ErrIncompatibleEndpoints, Start: start.text, End: end.text}
	}
	return first, last, nil
}

func classify(b Bound) (Endpoint, bool) {
	if !b.set {
		return Endpoint{}, false
	}

	if b.isInt {
		return Endpoint{Kind: KindNumber, Number: b.n, Text: b.text, Typed: true}, representable(b.n)
	}

	if isIntegerText(b.text) {
		n, err := strconv.ParseInt(b.text, 10, 64)
		if err != nil || !representable(n) {
			return Endpoint{}, false
		}
		return Endpoint{Kind: KindNumber, Number: n, Text: b.text}, true
	}

	if utf8.RuneCountInString(b.text) == 1 {
		r, _ := utf8.DecodeRuneInString(b.text)
		if unicode.IsLetter(r) {
			return Endpoint{Kind: KindLetter, Letter: r}, true
		}
	}

	return Endpoint{}, false
}

// representable keeps magnitudes below math.MaxInt64 so that magnitudes and
// their successors never overflow.
func representable(n int64) bool {
	return n > -math.MaxInt64 && n < math.MaxInt64
}

// isIntegerText reports whether s is an optional sign followed by one or more
// ASCII digits.
func isIntegerText(s string) bool {
	s = unsigned(s)
	if s == "" {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func unsigned(s string) string {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		return s[1:]
	}
	return s
}
