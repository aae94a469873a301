package ordering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     int
		expected Ordering
	}{
		{name: "Less", a: 1, b: 2, expected: Less},
		{name: "Greater", a: 2, b: 1, expected: Greater},
		{name: "Equal", a: 5, b: 5, expected: Equal},
		{name: "Negative Less", a: -3, b: 0, expected: Less},
		{name: "Negative Greater", a: 0, b: -3, expected: Greater},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Compare(tc.a, tc.b))
		})
	}
}

func TestCompareMatchesOperators(t *testing.T) {
	for a := -20; a <= 20; a++ {
		for b := -20; b <= 20; b++ {
			got := Compare(a, b)
			assert.Equal(t, a < b, got == Less, "Compare(%d, %d)=%s", a, b, got)
			assert.Equal(t, a > b, got == Greater, "Compare(%d, %d)=%s", a, b, got)
			assert.Equal(t, a == b, got == Equal, "Compare(%d, %d)=%s", a, b, got)

			// Antisymmetry.
			assert.Equal(t, got.Reverse(), Compare(b, a))
		}
		assert.Equal(t, Equal, Compare(a, a))
	}
}

func TestCompareTypes(t *testing.T) {
	assert.Equal(t, Less, Compare("apple", "banana"))
	assert.Equal(t, Greater, Compare("b", "a"))
	assert.Equal(t, Equal, Compare("", ""))
	assert.Equal(t, Less, Compare(uint8(0), uint8(255)))
	assert.Equal(t, Greater, Compare(2.5, -1.0))

	t.Run("NaN", func(t *testing.T) {
		nan := math.NaN()
		assert.Equal(t, Equal, Compare(nan, 1.0))
		assert.Equal(t, Equal, Compare(1.0, nan))
		assert.Equal(t, Equal, Compare(nan, nan))
	})
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
	assert.Equal(t, "Ordering(7)", Ordering(7).String())

	assert.Equal(t, -1, Less.Int())
	assert.Equal(t, 0, Equal.Int())
	assert.Equal(t, 1, Greater.Int())

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())
	assert.Equal(t, Less, Greater.Reverse())

	assert.Equal(t, Less, Of(-42))
	assert.Equal(t, Equal, Of(0))
	assert.Equal(t, Greater, Of(7))
}

func TestThen(t *testing.T) {
	type pair struct {
		a int
		b string
	}
	cmpPair := func(x, y pair) Ordering {
		return Compare(x.a, y.a).Then(Compare(x.b, y.b))
	}

	assert.Equal(t, Less, cmpPair(pair{1, "z"}, pair{2, "a"}))
	assert.Equal(t, Less, cmpPair(pair{1, "hello"}, pair{1, "hello2"}))
	assert.Equal(t, Equal, cmpPair(pair{2, "x"}, pair{2, "x"}))
	assert.Equal(t, Greater, cmpPair(pair{3, "a"}, pair{2, "z"}))
}

func TestComparator(t *testing.T) {
	var c Comparator[int] = &OrderComparator[int]{}
	require.Equal(t, Less, c.Compare(1, 2))
	require.Equal(t, Greater, c.Compare(2, 1))
	require.Equal(t, Equal, c.Compare(3, 3))

	r := Reversed(c)
	assert.Equal(t, Greater, r.Compare(1, 2))
	assert.Equal(t, Less, r.Compare(2, 1))
	assert.Equal(t, Equal, r.Compare(3, 3))

	byLen := Func[string](func(a, b string) Ordering {
		return Compare(len(a), len(b))
	})
	assert.Equal(t, Less, byLen.Compare("go", "gopher"))
	assert.Equal(t, Equal, byLen.Compare("ab", "cd"))
}
