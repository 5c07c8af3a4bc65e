package intmap

// Intersect returns the map of keys present in both a and b, with each
// value resolved by meet(va, vb) (or the common reference, when
// identity-equal). If meet is nil, a differing pair of values fails
// with ErrConflictingValues.
//
// Unlike Union, window reconciliation here is asymmetric: a
// non-overlapping window means the intersection is empty outright, so
// Intersect descends the map with the larger (or, when mins coincide,
// taller) window toward the other's window instead of growing both.
// The result is pruned (spec.md §4.6) so it never retains more window
// than its actual support needs.
func Intersect[V any](a, b Map[V], meet func(va, vb V) (V, error)) (Map[V], error) {
	if meet == nil {
		meet = func(V, V) (V, error) {
			var zero V
			return zero, conflictingValuesErrorNoKey("intersect")
		}
	}
	reconciled, err := intersectWindows[V](a, b, meet)
	if err != nil {
		return Map[V]{}, err
	}
	return pruneMap[V](reconciled.min, reconciled.shift, reconciled.root), nil
}

func intersectWindows[V any](a, b Map[V], meet func(V, V) (V, error)) (Map[V], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty[V](), nil
	}

	aMin, aShift, aRoot := a.min, a.shift, a.root
	bMin, bShift, bRoot := b.min, b.shift, b.root

	for {
		switch {
		case aMin != bMin:
			loIsA := aMin < bMin
			loMin, loShift, loRoot := aMin, aShift, aRoot
			hiMin, hiShift := bMin, bShift
			if !loIsA {
				loMin, loShift, loRoot = bMin, bShift, bRoot
				hiMin, hiShift = aMin, aShift
			}
			if loShift <= hiShift {
				return Empty[V](), nil
			}
			relOffset := hiMin - loMin
			if relOffset < 0 || relOffset >= 1<<loShift {
				return Empty[V](), nil
			}
			n := loRoot.(*node[V])
			childShift := loShift - branchBits
			idx := childIndex(relOffset, loShift)
			child := n.children[idx]
			if isAbsent(child) {
				return Empty[V](), nil
			}
			newLoMin := loMin + idx<<childShift
			if loIsA {
				aMin, aShift, aRoot = newLoMin, childShift, child
			} else {
				bMin, bShift, bRoot = newLoMin, childShift, child
			}

		case aShift != bShift:
			if aShift > bShift {
				n := aRoot.(*node[V])
				child := n.children[0]
				if isAbsent(child) {
					return Empty[V](), nil
				}
				aShift -= branchBits
				aRoot = child
			} else {
				n := bRoot.(*node[V])
				child := n.children[0]
				if isAbsent(child) {
					return Empty[V](), nil
				}
				bShift -= branchBits
				bRoot = child
			}

		default:
			merged, _, _, err := intersectRec[V](aRoot, bRoot, aShift, meet)
			if err != nil {
				return Map[V]{}, err
			}
			return Map[V]{min: aMin, shift: aShift, root: merged}, nil
		}
	}
}

// intersectRec merges two subtrees of equal shift, reporting fromA/fromB
// the way unionRec does, so Intersect(m, m) and Intersect(m, Empty[V]())
// return m / Empty[V]() by reference identity instead of a rebuilt copy.
func intersectRec[V any](aRoot, bRoot any, shift int, meet func(V, V) (V, error)) (merged any, fromA, fromB bool, err error) {
	if shift == 0 {
		return intersectLeaf[V](aRoot, bRoot, meet)
	}
	if aAbsent, bAbsent := isAbsent(aRoot), isAbsent(bRoot); aAbsent || bAbsent {
		return absent, aAbsent, bAbsent, nil
	}

	an := aRoot.(*node[V])
	bn := bRoot.(*node[V])
	childShift := shift - branchBits

	var newChildren [branchFactor]any
	allFromA, allFromB := true, true
	anyPresent := false
	for i := range newChildren {
		child, fa, fb, err := intersectRec[V](an.children[i], bn.children[i], childShift, meet)
		if err != nil {
			return nil, false, false, err
		}
		newChildren[i] = child
		if !isAbsent(child) {
			anyPresent = true
		}
		allFromA = allFromA && fa
		allFromB = allFromB && fb
	}

	switch {
	case !anyPresent:
		return absent, allFromA, allFromB, nil
	case allFromA:
		return aRoot, true, allFromB, nil
	case allFromB:
		return bRoot, false, true, nil
	default:
		return &node[V]{children: newChildren}, false, false, nil
	}
}

func intersectLeaf[V any](aRoot, bRoot any, meet func(V, V) (V, error)) (any, bool, bool, error) {
	aAbsent, bAbsent := isAbsent(aRoot), isAbsent(bRoot)
	switch {
	case aAbsent && bAbsent:
		return absent, true, true, nil
	case aAbsent:
		return absent, true, false, nil
	case bAbsent:
		return absent, false, true, nil
	}

	va, vb := aRoot.(V), bRoot.(V)
	if identical(va, vb) {
		return aRoot, true, true, nil
	}
	merged, err := meet(va, vb)
	if err != nil {
		return nil, false, false, err
	}
	return merged, false, false, nil
}
