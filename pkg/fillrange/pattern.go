package fillrange

import "strings"

// shape describes the form of an assembled pattern, which decides how
// grouping and prefixes apply.
type shape uint8

const (
	// shapeLiteral is a single member written out.
	shapeLiteral shape = iota
	// shapeClass is a single bracket expression.
	shapeClass
	// shapeAlternation is anything else.
	shapeAlternation
)

// assemble joins branches into the final pattern.
//
// Capture always groups non-literal patterns; Wrap groups patterns with more
// than one branch. RegexPrefix "^" negates a lone class, and prefixes that
// start with "?" replace the group marker.
func assemble(branches []string, sh shape, opts Options) string {
	if len(branches) == 0 {
		return ""
	}

	body := strings.Join(branches, "|")
	if sh == shapeLiteral {
		return body
	}

	prefix := opts.RegexPrefix
	if sh == shapeClass && prefix == "^" {
		body = "[^" + body[1:]
	}

	if !opts.Capture && !(opts.Wrap && len(branches) > 1) {
		return body
	}

	marker := "?:"
	if opts.Capture {
		marker = ""
	}
	if strings.HasPrefix(prefix, "?") {
		marker = prefix
	}
	return "(" + marker + body + ")"
}

// pattern builds the regular expression for the plan.
func (p *plan) pattern() string {
	var (
		branches []string
		sh       shape
	)
	if p.start.Kind == KindLetter {
		branches, sh = p.letterBranches()
	} else {
		branches, sh = p.numberBranches()
	}
	return assemble(branches, sh, p.opts)
}
