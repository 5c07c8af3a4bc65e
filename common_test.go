package intmap

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSameSlotLeavesAndNodes(t *testing.T) {
	qt.Assert(t, qt.IsTrue(sameSlot[string](absent, absent)))
	qt.Assert(t, qt.IsTrue(sameSlot[string]("a", "a")))
	qt.Assert(t, qt.IsFalse(sameSlot[string]("a", "b")))

	n := newNode[string](nil)
	qt.Assert(t, qt.IsTrue(sameSlot[string](n, n)))

	other := newNode[string](nil)
	qt.Assert(t, qt.IsFalse(sameSlot[string](n, other)))

	qt.Assert(t, qt.IsFalse(sameSlot[string](n, "a")))
}
