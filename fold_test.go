package intmap

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// Invariant 5: fold visits keys in strictly ascending order, and its
// length equals the map's cardinality.
func TestFoldAscendingOrderAndCardinality(t *testing.T) {
	m := Empty[int]()
	var err error
	keys := []int{500, 3, 70000, 1, 0, 64, 63, 65}
	for _, k := range keys {
		m, err = m.Add(k, k, nil)
		qt.Assert(t, qt.IsNil(err))
	}

	var seen []int
	Fold(func(k, v int, acc struct{}) struct{} {
		seen = append(seen, k)
		return acc
	}, m, struct{}{})

	for i := 1; i < len(seen); i++ {
		qt.Assert(t, qt.IsTrue(seen[i-1] < seen[i]))
	}
	qt.Assert(t, qt.Equals(len(seen), len(keys)))
}

func TestFoldEmptyVisitsNothing(t *testing.T) {
	count := Fold(func(k, v int, acc int) int { return acc + 1 }, Empty[int](), 0)
	qt.Assert(t, qt.Equals(count, 0))
}

func TestAllIteratorMatchesFold(t *testing.T) {
	m := Empty[string]()
	var err error
	for _, k := range []int{9, 2, 500, 0, 31, 32} {
		m, err = m.Add(k, "v", nil)
		qt.Assert(t, qt.IsNil(err))
	}

	type pair struct {
		k int
		v string
	}
	var viaFold []pair
	Fold(func(k int, v string, acc struct{}) struct{} {
		viaFold = append(viaFold, pair{k, v})
		return acc
	}, m, struct{}{})

	var viaAll []pair
	for k, v := range m.All() {
		viaAll = append(viaAll, pair{k, v})
	}

	qt.Assert(t, qt.DeepEquals(viaAll, viaFold))
}

func TestAllIteratorEarlyStop(t *testing.T) {
	m := Empty[int]()
	var err error
	for _, k := range []int{0, 1, 2, 3, 4} {
		m, err = m.Add(k, k, nil)
		qt.Assert(t, qt.IsNil(err))
	}

	var seen []int
	for k := range m.All() {
		seen = append(seen, k)
		if k == 2 {
			break
		}
	}
	qt.Assert(t, qt.DeepEquals(seen, []int{0, 1, 2}))
}
