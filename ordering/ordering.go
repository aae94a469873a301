// Package ordering implements three-way comparison of ordered values.
package ordering

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Ordering is the result of comparing two values.
//
// The variants share their numeric value with the classic -1/0/+1
// comparator convention, so an Ordering can be handed to code that expects
// an int comparator via Int.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare reports the order of a relative to b.
//
// The checks are sequential: a < b yields Less, otherwise a > b yields
// Greater, otherwise Equal. Values for which neither check holds (for
// instance a NaN operand) are therefore Equal, not an error.
func Compare[T constraints.Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// Of converts the sign of a classic int comparator result.
func Of(r int) Ordering {
	switch {
	case r < 0:
		return Less
	case r > 0:
		return Greater
	default:
		return Equal
	}
}

// Int returns -1, 0 or +1.
func (o Ordering) Int() int {
	return int(o)
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Then returns o unless it is Equal, in which case next decides.
// It chains comparisons of several fields lexicographically.
func (o Ordering) Then(next Ordering) Ordering {
	if o != Equal {
		return o
	}
	return next
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}
