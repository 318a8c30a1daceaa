// Package fillrange expands range descriptors into sequences and regular
// expressions.
//
// A range is described by two bounds, an optional step and formatting
// options. Bounds are integers (optionally signed and zero padded when given
// as text) or single letters. Expansion either materializes every member of
// the range, in order, or synthesizes a compact pattern matching exactly the
// decimal or character representations of those members:
//
//	res, _ := fillrange.Expand(fillrange.Str("002"), fillrange.Str("010"), fillrange.Options{Step: fillrange.StepBy(2)})
//	res.Strings() // [002 004 006 008 010]
//
//	pattern, _ := fillrange.ToRegex(fillrange.Num(2), fillrange.Num(100), fillrange.Options{})
//	// [2-9]|[1-9][0-9]|100
//
// Every call is independent. The package holds no shared state and is safe
// for concurrent use.
package fillrange
