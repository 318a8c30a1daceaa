package fillrange_test

import (
	"fmt"

	"github.com/yaklabco/gofill/pkg/fillrange"
)

func ExampleExpand() {
	res, err := fillrange.Expand(fillrange.Str("002"), fillrange.Str("010"), fillrange.Options{Step: fillrange.StepBy(2)})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Strings())
	// Output: [002 004 006 008 010]
}

func ExampleToRegex() {
	pattern, err := fillrange.ToRegex(fillrange.Num(-10), fillrange.Num(10), fillrange.Options{Wrap: true})
	if err != nil {
		panic(err)
	}
	fmt.Println(pattern)
	// Output: (?:-[1-9]|-?10|[0-9])
}

func ExampleFill() {
	res, err := fillrange.Fill(fillrange.Str("A"), fillrange.Str("Z"), ">5", fillrange.Options{})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Strings())
	// Output: [AFKPUZ]
}
