package fillrange

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// regexOptions are the options consulted while building branches.
type regexOptions struct {
	strictZeros bool
	shorthand   bool
	capture     bool
}

// branch is the pattern for one same-length sub-range. count holds the
// number of trailing [0-9] positions; two entries form a {m,n} quantifier
// after sub-ranges sharing a prefix are merged.
type branch struct {
	pattern string
	count   []int
	text    string
}

// rangeBranches returns the alternatives whose union matches exactly the
// decimal strings of every integer in [lo, hi].
func rangeBranches(lo, hi int64, pad padding, ro regexOptions) []string {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []string{pad.format(lo)}
	}
	if distance(lo, hi) == 1 {
		if lo >= 0 && hi <= 9 && !pad.active() {
			return []string{characterClass(byte('0'+lo), byte('0'+hi))}
		}
		return []string{pad.format(lo), pad.format(hi)}
	}

	var negatives, positives []branch
	if lo < 0 {
		from := int64(1)
		if hi < 0 {
			from = -hi
		}
		negatives = splitToPatterns(from, -lo, pad, ro)
		lo = 0
	}
	if hi >= 0 {
		positives = splitToPatterns(lo, hi, pad, ro)
	}

	return collate(negatives, positives)
}

// collate orders negative-only branches, branches shared by both signs, then
// positive-only branches.
func collate(negatives, positives []branch) []string {
	out := make([]string, 0, len(negatives)+len(positives))
	out = appendFiltered(out, negatives, positives, "-", false)
	out = appendFiltered(out, negatives, positives, "-?", true)
	out = appendFiltered(out, positives, negatives, "", false)
	return out
}

func appendFiltered(out []string, from, other []branch, prefix string, shared bool) []string {
	for _, b := range from {
		found := slices.ContainsFunc(other, func(o branch) bool { return o.text == b.text })
		if found == shared {
			out = append(out, prefix+b.text)
		}
	}
	return out
}

// splitToPatterns converts the non-negative range [lo, hi] into branches,
// merging neighbours that differ only in the length of their [0-9] run.
func splitToPatterns(lo, hi int64, pad padding, ro regexOptions) []branch {
	var out []branch

	start := lo
	for _, stop := range splitToRanges(lo, hi) {
		b := rangeToPattern(strconv.FormatInt(start, 10), strconv.FormatInt(stop, 10), ro)
		start = stop + 1

		if !pad.active() && len(out) > 0 && len(b.count) > 0 && out[len(out)-1].pattern == b.pattern {
			prev := &out[len(out)-1]
			if len(prev.count) > 1 {
				prev.count = prev.count[:len(prev.count)-1]
			}
			prev.count = append(prev.count, b.count[0])
			prev.text = prev.pattern + quantifier(prev.count)
			continue
		}

		zeros := ""
		if pad.active() {
			zeros = padZeros(stop, pad, ro)
		}
		b.text = zeros + b.pattern + quantifier(b.count)
		out = append(out, b)
	}
	return out
}

// splitToRanges returns the upper bounds of the sub-ranges of [lo, hi] in
// which every member has the same number of digits and shares a prefix.
func splitToRanges(lo, hi int64) []int64 {
	stops := map[int64]struct{}{hi: {}}

	for nines := 1; ; nines++ {
		stop, ok := countNines(lo, nines)
		if !ok || stop < lo || stop > hi {
			break
		}
		stops[stop] = struct{}{}
	}

	for zeros := 1; ; zeros++ {
		stop := countZeros(hi+1, zeros) - 1
		if stop <= lo || stop > hi {
			break
		}
		stops[stop] = struct{}{}
	}

	return slices.Sorted(maps.Keys(stops))
}

// countNines replaces the last n digits of v with nines.
func countNines(v int64, n int) (int64, bool) {
	s := strconv.FormatInt(v, 10)
	prefix := ""
	if n < len(s) {
		prefix = s[:len(s)-n]
	}
	out, err := strconv.ParseInt(prefix+strings.Repeat("9", n), 10, 64)
	return out, err == nil
}

// countZeros replaces the last n digits of v with zeros.
func countZeros(v int64, n int) int64 {
	if n > 18 {
		return 0
	}
	mod := int64(1)
	for range n {
		mod *= 10
	}
	return v - v%mod
}

// rangeToPattern builds the pattern for start..stop, which have equal length.
func rangeToPattern(start, stop string, ro regexOptions) branch {
	if start == stop {
		return branch{pattern: start}
	}

	var sb strings.Builder
	full := 0
	for i := range len(start) {
		a, b := start[i], stop[i]
		switch {
		case a == b:
			sb.WriteByte(a)
		case a != '0' || b != '9':
			sb.WriteString(characterClass(a, b))
		default:
			full++
		}
	}
	if full > 0 {
		sb.WriteString(digitClass(ro))
	}
	return branch{pattern: sb.String(), count: []int{full}}
}

func digitClass(ro regexOptions) string {
	if ro.shorthand {
		return `\d`
	}
	return "[0-9]"
}

// characterClass returns [a-b], or [ab] when a and b are adjacent.
func characterClass(a, b byte) string {
	if b-a == 1 {
		return "[" + string(a) + string(b) + "]"
	}
	return "[" + string(a) + "-" + string(b) + "]"
}

func quantifier(count []int) string {
	if len(count) == 0 {
		return ""
	}
	start, stop := count[0], 0
	if len(count) > 1 {
		stop = count[1]
	}
	switch {
	case stop != 0:
		return "{" + strconv.Itoa(start) + "," + strconv.Itoa(stop) + "}"
	case start > 1:
		return "{" + strconv.Itoa(start) + "}"
	default:
		return ""
	}
}

// padZeros returns the leading-zero pattern that brings stop up to the
// padded width.
func padZeros(stop int64, pad padding, ro regexOptions) string {
	diff := pad.width - digitWidth(stop)
	switch {
	case diff <= 0:
		return ""
	case ro.strictZeros && diff <= 2:
		return strings.Repeat("0", diff)
	case ro.strictZeros:
		return "0{" + strconv.Itoa(diff) + "}"
	case diff == 1:
		return "0?"
	default:
		return "0{0," + strconv.Itoa(diff) + "}"
	}
}

// steppedBranches lists every member of a stepped numeric range, ascending:
// non-negative members as individual branches followed by one branch that
// groups the magnitudes of the negative members behind a single sign.
func steppedBranches(start, end int64, step uint64, pad padding, ro regexOptions) []string {
	var positives, negatives []int64
	walk(start, end, step, func(v int64, _ int) {
		if v < 0 {
			negatives = append(negatives, -v)
		} else {
			positives = append(positives, v)
		}
	})
	slices.Sort(positives)
	slices.Sort(negatives)

	out := make([]string, 0, len(positives)+1)
	for _, v := range positives {
		out = append(out, pad.format(v))
	}

	switch len(negatives) {
	case 0:
	case 1:
		out = append(out, "-"+pad.format(negatives[0]))
	default:
		inner := make([]string, len(negatives))
		for i, v := range negatives {
			inner[i] = pad.format(v)
		}
		marker := "?:"
		if ro.capture {
			marker = ""
		}
		out = append(out, "-("+marker+strings.Join(inner, "|")+")")
	}
	return out
}

// letterBranches returns a class for ascending unit-step letter ranges and a
// literal alternation in walk order otherwise.
func (p *plan) letterBranches() ([]string, shape) {
	a, b := p.start.Letter, p.end.Letter
	if a == b {
		return []string{regexp.QuoteMeta(string(a))}, shapeLiteral
	}
	if p.step.Size() == 1 && a < b {
		return []string{"[" + string(a) + "-" + string(b) + "]"}, shapeClass
	}

	values := p.materialize()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = regexp.QuoteMeta(v.String())
	}
	if len(out) == 1 {
		return out, shapeLiteral
	}
	return out, shapeAlternation
}

// numberBranches dispatches between the optimizer and the stepped listing.
func (p *plan) numberBranches() ([]string, shape) {
	ro := regexOptions{
		strictZeros: p.opts.StrictZeros,
		shorthand:   p.opts.Shorthand,
		capture:     p.opts.Capture,
	}
	a, b := p.start.Number, p.end.Number
	step := p.step.Size()

	if a == b || distance(a, b) < step && step > 1 {
		return []string{p.pad.format(a)}, shapeLiteral
	}

	var out []string
	if step > 1 {
		out = steppedBranches(a, b, step, p.pad, ro)
	} else {
		out = rangeBranches(a, b, p.pad, ro)
	}

	if len(out) == 1 && isClass(out[0]) {
		return out, shapeClass
	}
	return out, shapeAlternation
}

// isClass reports whether s is a single bracket expression.
func isClass(s string) bool {
	return strings.HasPrefix(s, "[") && strings.Index(s, "]") == len(s)-1
}
