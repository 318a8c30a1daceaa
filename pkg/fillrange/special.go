package fillrange

import (
	"math/rand/v2"
	"strings"
)

// Character classes selectable in ModeRandom by the characters of start.
const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	punctChars = "~!@#$%^&()_+-={}[];',."
)

// repeat emits start's text end times.
func repeat(start, end Bound) ([]Value, error) {
	n, err := repetitions(start, end)
	if err != nil {
		return nil, err
	}

	member := StringValue(start.text)
	if start.isInt {
		member = NumberValue(start.n)
	}

	values := make([]Value, 0, min(n, maxPrealloc))
	for range n {
		values = append(values, member)
	}
	return values, nil
}

// random draws one string of length end from the classes named by start:
// "a" lowercase, "A" uppercase, "0" digits, "!" punctuation, "*" all.
func random(start, end Bound, src *rand.Rand) ([]Value, error) {
	n, err := repetitions(start, end)
	if err != nil {
		return nil, err
	}

	charset := randomCharset(start.text)
	if charset == "" {
		return nil, &RangeError{Kind: ErrInvalidEndpoint, Start: start.text, End: end.text}
	}

	pick := rand.IntN
	if src != nil {
		pick = src.IntN
	}

	var sb strings.Builder
	sb.Grow(int(min(n, maxPrealloc)))
	for range n {
		sb.WriteByte(charset[pick(len(charset))])
	}
	return []Value{StringValue(sb.String())}, nil
}

func randomCharset(classes string) string {
	var sb strings.Builder
	seen := make(map[rune]bool, len(classes))
	for _, r := range classes {
		if r == '*' {
			return lowerChars + upperChars + digitChars + punctChars
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		switch r {
		case 'a':
			sb.WriteString(lowerChars)
		case 'A':
			sb.WriteString(upperChars)
		case '0':
			sb.WriteString(digitChars)
		case '!':
			sb.WriteString(punctChars)
		}
	}
	return sb.String()
}

// repetitions validates a non-empty start and a non-negative numeric end.
func repetitions(start, end Bound) (uint64, error) {
	invalid := &RangeError{Kind: ErrInvalidEndpoint, Start: start.text, End: end.text}
	if start.text == "" || !end.IsSet() {
		return 0, invalid
	}
	last, ok := classify(end)
	if !ok || last.Kind != KindNumber || last.Number < 0 {
		return 0, invalid
	}
	return uint64(last.Number), nil
}
