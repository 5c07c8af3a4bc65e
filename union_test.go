package intmap

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
)

// S4 (union half): two disjoint singletons union to a map with both keys.
func TestUnionDisjointSingletons(t *testing.T) {
	a, err := Empty[string]().Add(0, "A", nil)
	qt.Assert(t, qt.IsNil(err))
	b, err := Empty[string]().Add(1_000_000, "B", nil)
	qt.Assert(t, qt.IsNil(err))

	u, err := Union(a, b, nil)
	qt.Assert(t, qt.IsNil(err))

	v, err := u.Ref(0, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, "A"))
	v, err = u.Ref(1_000_000, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, "B"))
}

// S6: without a meet, conflicting values on union raise ErrConflictingValues.
func TestUnionNoMeetConflicts(t *testing.T) {
	a, err := Empty[string]().Add(1, "A", nil)
	qt.Assert(t, qt.IsNil(err))
	b, err := Empty[string]().Add(1, "B", nil)
	qt.Assert(t, qt.IsNil(err))

	_, err = Union(a, b, nil)
	qt.Assert(t, qt.IsTrue(errors.Is(err, ErrConflictingValues)))
}

// S6: with an explicit meet, conflicting values on union combine.
func TestUnionMeetCombinesValues(t *testing.T) {
	a, err := Empty[[]string]().Add(1, []string{"A"}, nil)
	qt.Assert(t, qt.IsNil(err))
	b, err := Empty[[]string]().Add(1, []string{"B"}, nil)
	qt.Assert(t, qt.IsNil(err))

	u, err := Union(a, b, func(o, n []string) ([]string, error) {
		return append(append([]string{}, o...), n...), nil
	})
	qt.Assert(t, qt.IsNil(err))

	v, err := u.Ref(1, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(v, []string{"A", "B"}))
}

// Invariant 9: union(m, empty) = m by reference identity.
func TestUnionWithEmptyReturnsSameReference(t *testing.T) {
	m, err := Empty[string]().Add(5, "a", nil)
	qt.Assert(t, qt.IsNil(err))

	u, err := Union(m, Empty[string](), nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(u, m))

	u, err = Union(Empty[string](), m, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(u, m))
}

// Invariant 7 (spot check): union is commutative when meet is commutative.
func TestUnionCommutative(t *testing.T) {
	a := Empty[int]()
	b := Empty[int]()
	var err error
	for _, k := range []int{0, 5, 40, 2000} {
		a, err = a.Add(k, k, nil)
		qt.Assert(t, qt.IsNil(err))
	}
	for _, k := range []int{5, 7, 40, 99999} {
		b, err = b.Add(k, k*10, nil)
		qt.Assert(t, qt.IsNil(err))
	}
	sum := func(x, y int) (int, error) { return x + y, nil }

	ab, err := Union(a, b, sum)
	qt.Assert(t, qt.IsNil(err))
	ba, err := Union(b, a, sum)
	qt.Assert(t, qt.IsNil(err))

	type pair struct{ k, v int }
	collect := func(m Map[int]) []pair {
		var out []pair
		for k, v := range m.All() {
			out = append(out, pair{k, v})
		}
		return out
	}
	qt.Assert(t, qt.DeepEquals(collect(ab), collect(ba)))
}
