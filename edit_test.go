package intmap

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestOwnerIdentity(t *testing.T) {
	a := NewOwner()
	b := NewOwner()
	qt.Assert(t, qt.IsFalse(a == b))
	qt.Assert(t, qt.IsTrue(a == a))
}

func TestEditCellOwnerIs(t *testing.T) {
	owner := NewOwner()
	other := NewOwner()
	e := newEditCell(owner)

	qt.Assert(t, qt.IsTrue(e.ownerIs(owner)))
	qt.Assert(t, qt.IsFalse(e.ownerIs(other)))

	e.clear()
	qt.Assert(t, qt.IsFalse(e.ownerIs(owner)))
	qt.Assert(t, qt.IsFalse(e.ownerIs(nil)))
}

func TestSameEdit(t *testing.T) {
	e1 := newEditCell(NewOwner())
	e2 := newEditCell(NewOwner())

	qt.Assert(t, qt.IsTrue(sameEdit(e1, e1)))
	qt.Assert(t, qt.IsFalse(sameEdit(e1, e2)))
	qt.Assert(t, qt.IsFalse(sameEdit(nil, nil)))
}

func TestIdenticalHandlesNonComparableGracefully(t *testing.T) {
	qt.Assert(t, qt.IsTrue(identical(5, 5)))
	qt.Assert(t, qt.IsFalse(identical(5, 6)))
	qt.Assert(t, qt.IsFalse(identical([]int{1}, []int{1})))
}
