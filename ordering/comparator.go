package ordering

import "golang.org/x/exp/constraints"

type Comparator[T any] interface {
	Compare(a, b T) Ordering
}

type OrderComparator[T constraints.Ordered] struct{}

var _ Comparator[int] = (*OrderComparator[int])(nil)

func (o *OrderComparator[T]) Compare(a T, b T) Ordering {
	return Compare[T](a, b)
}

// Func adapts a plain function to Comparator.
type Func[T any] func(a, b T) Ordering

var _ Comparator[string] = Func[string](nil)

func (f Func[T]) Compare(a T, b T) Ordering {
	return f(a, b)
}

type reversed[T any] struct {
	c Comparator[T]
}

func (r reversed[T]) Compare(a T, b T) Ordering {
	return r.c.Compare(a, b).Reverse()
}

// Reversed returns a comparator that orders values opposite to c.
func Reversed[T any](c Comparator[T]) Comparator[T] {
	return reversed[T]{c: c}
}
