package fillrange

import "strings"

// maxPrealloc caps the capacity reserved up front for long sequences.
const maxPrealloc = 1 << 16

// distance returns |b - a| without overflowing.
func distance(a, b int64) uint64 {
	if a <= b {
		return uint64(b) - uint64(a)
	}
	return uint64(a) - uint64(b)
}

// count returns the number of members of the walk from a to b.
func count(a, b int64, step uint64) uint64 {
	return distance(a, b)/step + 1
}

// walk calls fn for a, a±step, ... never passing b.
func walk(a, b int64, step uint64, fn func(value int64, index int)) {
	descending := a > b
	for index := 0; ; index++ {
		fn(a, index)
		if distance(a, b) < step {
			return
		}
		if descending {
			a = int64(uint64(a) - step)
		} else {
			a = int64(uint64(a) + step)
		}
	}
}

// materialize produces the members of the range in walk order.
func (p *plan) materialize() []Value {
	a, b := p.start.Value(), p.end.Value()
	step := p.step.Size()

	values := make([]Value, 0, min(count(a, b, step), maxPrealloc))
	format := p.formatNumber
	if p.start.Kind == KindLetter {
		format = p.formatLetter
	}

	walk(a, b, step, func(value int64, index int) {
		values = append(values, format(value, index))
	})
	return values
}

func (p *plan) formatNumber(n int64, index int) Value {
	if p.opts.Transform != nil {
		v := p.opts.Transform(n, index)
		if p.pad.active() {
			return StringValue(p.pad.text(v.String()))
		}
		return v
	}
	if p.textual() {
		return StringValue(p.pad.format(n))
	}
	return NumberValue(n)
}

func (p *plan) formatLetter(code int64, index int) Value {
	if p.opts.Transform != nil {
		return p.opts.Transform(code, index)
	}
	return StringValue(string(rune(code)))
}

// join concatenates the members into a single string member.
func (p *plan) join() []Value {
	var sb strings.Builder
	for _, v := range p.materialize() {
		sb.WriteString(v.String())
	}
	return []Value{StringValue(sb.String())}
}
