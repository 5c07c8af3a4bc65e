package intmap

// Map is the persistent variant: immutable for its lifetime. Add and
// Remove return a new Map, sharing untouched subtrees with the receiver.
// The zero Map[V] is not valid; use Empty[V]() to obtain one.
type Map[V any] struct {
	min, shift int
	root       any // absentSentinel | V | *node[V]
}

// Empty returns the canonical empty persistent map.
func Empty[V any]() Map[V] {
	return Map[V]{min: 0, shift: 0, root: absent}
}

// IsEmpty reports whether m has no bindings. It is the structural
// equivalent of comparing against Empty[V]() by identity.
func (m Map[V]) IsEmpty() bool {
	return m.shift == 0 && isAbsent(m.root)
}

// Add returns a new Map with key k bound to v. If k is already bound to
// a value identical to v, Add returns m unchanged (same root, by
// identity). If k is bound to some other value, meet(old, v) decides
// the stored value; meet may be nil, in which case a differing value
// fails with ErrConflictingValues. Add fails with ErrInvalidKey if
// k < 0.
func (m Map[V]) Add(k int, v V, meet func(old, new V) (V, error)) (Map[V], error) {
	if k < 0 {
		return Map[V]{}, invalidKeyError(k)
	}
	if meet == nil {
		meet = conflictMeet[V](k)
	}
	return addWindow[V](m.min, m.shift, m.root, k, v, meet)
}

// addWindow implements spec.md §4.5's five cases, growing levels (case 5)
// in a loop and delegating to union for the below-window rebuild (case 4).
func addWindow[V any](min, shift int, root any, k int, v V, meet func(V, V) (V, error)) (Map[V], error) {
	for {
		if shift == 0 && isAbsent(root) {
			return Map[V]{min: k, shift: 0, root: v}, nil
		}
		switch {
		case inWindow(k, min, shift):
			if shift == 0 {
				old := root.(V)
				if identical(old, v) {
					return Map[V]{min: min, shift: shift, root: root}, nil
				}
				merged, err := meet(old, v)
				if err != nil {
					return Map[V]{}, err
				}
				return Map[V]{min: min, shift: shift, root: merged}, nil
			}
			newRoot, err := addRec[V](root, shift, k-min, v, meet)
			if err != nil {
				return Map[V]{}, err
			}
			return Map[V]{min: min, shift: shift, root: newRoot}, nil
		case k < min:
			singleton := Map[V]{min: k, shift: 0, root: v}
			return unionWindows[V](singleton, Map[V]{min: min, shift: shift, root: root}, unreachableMeet[V])
		default:
			min, shift, root = growLevel[V](min, shift, root)
		}
	}
}

// addRec descends the window-relative offset relOffset, cloning branches
// on the way back up only where a child actually changed, so unchanged
// subtrees stay pointer-shared with the input.
func addRec[V any](cur any, curShift int, relOffset int, v V, meet func(V, V) (V, error)) (any, error) {
	if curShift == 0 {
		if isAbsent(cur) {
			return v, nil
		}
		old := cur.(V)
		if identical(old, v) {
			return cur, nil
		}
		return meet(old, v)
	}

	n := cur.(*node[V])
	idx := childIndex(relOffset, curShift)
	child := n.children[idx]
	childShift := curShift - branchBits
	childRel := childOffset(relOffset, curShift)

	var newChild any
	var err error
	if isAbsent(child) {
		newChild, err = buildChain[V](childShift, childRel, v)
	} else {
		newChild, err = addRec[V](child, childShift, childRel, v, meet)
	}
	if err != nil {
		return nil, err
	}
	if sameSlot[V](newChild, child) {
		return cur, nil
	}
	cp := n.clone(nil)
	cp.children[idx] = newChild
	return cp, nil
}

// buildChain allocates a fresh subtree chain for a previously-absent
// slot, storing v at the bottom.
func buildChain[V any](shift, relOffset int, v V) (any, error) {
	if shift == 0 {
		return v, nil
	}
	n := newNode[V](nil)
	idx := childIndex(relOffset, shift)
	child, err := buildChain[V](shift-branchBits, childOffset(relOffset, shift), v)
	if err != nil {
		return nil, err
	}
	n.children[idx] = child
	return n, nil
}

// growLevel wraps root as the single populated child of a new branch one
// level deeper, widening the window without touching existing content.
func growLevel[V any](min, shift int, root any) (int, int, any) {
	newShift := shift + branchBits
	newMin := roundDown(min, newShift)
	n := newNode[V](nil)
	n.children[childIndex(min-newMin, newShift)] = root
	return newMin, newShift, n
}

func conflictMeet[V any](k int) func(V, V) (V, error) {
	return func(V, V) (V, error) {
		var zero V
		return zero, conflictingValuesError(k)
	}
}

// unreachableMeet backs the union performed by the below-window insert
// path (spec.md §4.5 case 4): that union can never see the same key
// from both sides, so reaching this function indicates a window/shift
// invariant bug rather than a legitimate caller conflict.
func unreachableMeet[V any](V, V) (V, error) {
	panic("intmap: unreachable meet invoked during below-window add")
}

// Remove returns a new Map with key k unbound. If k was not bound, it
// returns m unchanged (same reference). The result is pruned (spec.md
// §4.6) so its window never grows needlessly across a long sequence of
// removals.
func (m Map[V]) Remove(k int) Map[V] {
	if m.shift == 0 {
		if isAbsent(m.root) || m.min != k {
			return m
		}
		return Empty[V]()
	}
	if !inWindow(k, m.min, m.shift) {
		return m
	}
	newRoot, changed := removeRec[V](m.root, m.shift, k-m.min)
	if !changed {
		return m
	}
	return pruneMap[V](m.min, m.shift, newRoot)
}

func removeRec[V any](cur any, curShift int, relOffset int) (any, bool) {
	n := cur.(*node[V])
	idx := childIndex(relOffset, curShift)
	child := n.children[idx]
	if isAbsent(child) {
		return cur, false
	}

	childShift := curShift - branchBits
	var newChild any
	var changed bool
	if childShift == 0 {
		newChild, changed = absent, true
	} else {
		newChild, changed = removeRec[V](child, childShift, childOffset(relOffset, curShift))
	}
	if !changed {
		return cur, false
	}
	cp := n.clone(nil)
	cp.children[idx] = newChild
	if _, count := soleChild(cp); count == 0 {
		return absent, true
	}
	return cp, true
}

// pruneMap collapses a branch node that has exactly one non-absent
// child, repeatedly, until either the window has shrunk to the map's
// actual support (shift == 0, or >= 2 live children at the root) or the
// whole map has emptied out.
func pruneMap[V any](min, shift int, root any) Map[V] {
	if isAbsent(root) {
		return Empty[V]()
	}
	for shift > 0 {
		n := root.(*node[V])
		idx, count := soleChild(n)
		switch {
		case count == 0:
			return Empty[V]()
		case count >= 2:
			return Map[V]{min: min, shift: shift, root: root}
		}
		childShift := shift - branchBits
		min = min + idx<<childShift
		shift = childShift
		root = n.children[idx]
	}
	return Map[V]{min: min, shift: shift, root: root}
}

// soleChild reports the index of n's first non-absent child and the
// total count of non-absent children, short-circuiting once it knows
// there are at least two.
func soleChild[V any](n *node[V]) (idx, count int) {
	idx = -1
	for i, c := range n.children {
		if isAbsent(c) {
			continue
		}
		count++
		if count == 1 {
			idx = i
		} else {
			return idx, count
		}
	}
	return idx, count
}
