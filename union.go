package intmap

// Union combines a and b: keys present in only one side survive
// unchanged, keys present in both are resolved by meet(va, vb). If meet
// is nil, a differing pair of values fails with ErrConflictingValues.
//
// Union reconciles the two maps' windows first (growing whichever has
// the smaller shift, then growing both until their mins coincide), then
// recurses by sibling position, preserving structural sharing with
// whichever side (or both) a subtree's result happens to equal.
func Union[V any](a, b Map[V], meet func(va, vb V) (V, error)) (Map[V], error) {
	if meet == nil {
		meet = func(V, V) (V, error) {
			var zero V
			return zero, conflictingValuesErrorNoKey("union")
		}
	}
	return unionWindows[V](a, b, meet)
}

func unionWindows[V any](a, b Map[V], meet func(V, V) (V, error)) (Map[V], error) {
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}

	aMin, aShift, aRoot := a.min, a.shift, a.root
	bMin, bShift, bRoot := b.min, b.shift, b.root

	for aShift != bShift {
		if aShift < bShift {
			aMin, aShift, aRoot = growLevel[V](aMin, aShift, aRoot)
		} else {
			bMin, bShift, bRoot = growLevel[V](bMin, bShift, bRoot)
		}
	}
	for aMin != bMin {
		aMin, aShift, aRoot = growLevel[V](aMin, aShift, aRoot)
		bMin, bShift, bRoot = growLevel[V](bMin, bShift, bRoot)
	}

	merged, fromA, fromB, err := unionRec[V](aRoot, bRoot, aShift, meet)
	if err != nil {
		return Map[V]{}, err
	}
	switch {
	case fromA:
		return Map[V]{min: aMin, shift: aShift, root: aRoot}, nil
	case fromB:
		return Map[V]{min: aMin, shift: aShift, root: bRoot}, nil
	default:
		return Map[V]{min: aMin, shift: aShift, root: merged}, nil
	}
}

// unionRec merges two subtrees of equal shift, reporting via fromA/fromB
// whether the merged result is pointer-identical to the a or b input
// (possibly both, when the subtrees agree completely) so the caller can
// preserve sharing instead of allocating.
func unionRec[V any](aRoot, bRoot any, shift int, meet func(V, V) (V, error)) (merged any, fromA, fromB bool, err error) {
	if shift == 0 {
		return unionLeaf[V](aRoot, bRoot, meet)
	}
	aAbsent, bAbsent := isAbsent(aRoot), isAbsent(bRoot)
	switch {
	case aAbsent && bAbsent:
		return absent, true, true, nil
	case aAbsent:
		return bRoot, false, true, nil
	case bAbsent:
		return aRoot, true, false, nil
	}

	an := aRoot.(*node[V])
	bn := bRoot.(*node[V])
	childShift := shift - branchBits

	var newChildren [branchFactor]any
	allFromA, allFromB := true, true
	for i := range newChildren {
		child, fa, fb, err := unionRec[V](an.children[i], bn.children[i], childShift, meet)
		if err != nil {
			return nil, false, false, err
		}
		newChildren[i] = child
		allFromA = allFromA && fa
		allFromB = allFromB && fb
	}

	switch {
	case allFromA:
		return aRoot, true, allFromB, nil
	case allFromB:
		return bRoot, false, true, nil
	default:
		return &node[V]{children: newChildren}, false, false, nil
	}
}

func unionLeaf[V any](aRoot, bRoot any, meet func(V, V) (V, error)) (any, bool, bool, error) {
	aAbsent, bAbsent := isAbsent(aRoot), isAbsent(bRoot)
	switch {
	case aAbsent && bAbsent:
		return absent, true, true, nil
	case aAbsent:
		return bRoot, false, true, nil
	case bAbsent:
		return aRoot, true, false, nil
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
