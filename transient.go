package intmap

// TMap is the transient variant: a single-owner, in-place-mutable view
// of an intmap, obtained from a Map via Transient and sealed back with
// Persistent. Every TMap method takes the *Owner that must currently
// hold its edit cell; calling through a stale or foreign owner fails
// with ErrOwnershipViolation instead of silently corrupting shared
// structure.
//
// The zero TMap[V] is not valid; obtain one from Transient.
type TMap[V any] struct {
	min, shift int
	root       any // absentSentinel | V | *node[V]
	edit       *editCell
}

// Transient returns a TMap view of m, owned by owner. m itself remains
// valid and untouched: every node it reaches still carries a nil (or
// foreign) edit token, so the first mutation through the returned TMap
// clones rather than corrupts it.
func Transient[V any](owner *Owner, m Map[V]) (TMap[V], error) {
	if owner == nil {
		return TMap[V]{}, ownershipViolationError()
	}
	return TMap[V]{min: m.min, shift: m.shift, root: m.root, edit: newEditCell(owner)}, nil
}

// Persistent seals t, returning an immutable Map snapshot of its current
// contents. Sealing clears t's edit cell, so every node stamped with it
// becomes immutable (its owner check now fails for everyone, including
// owner), and any further operation through t or a copy of it fails with
// ErrOwnershipViolation.
func (t TMap[V]) Persistent(owner *Owner) (Map[V], error) {
	if err := t.checkOwner(owner); err != nil {
		return Map[V]{}, err
	}
	t.edit.clear()
	if t.shift == 0 && isAbsent(t.root) {
		return Empty[V](), nil
	}
	return Map[V]{min: t.min, shift: t.shift, root: t.root}, nil
}

// checkOwner reports ErrOwnershipViolation unless owner currently holds
// t's edit cell. A sealed (or never-transient) TMap has a cleared edit
// cell and so fails for every owner, including its original one.
func (t TMap[V]) checkOwner(owner *Owner) error {
	if t.edit == nil || !t.edit.ownerIs(owner) {
		return ownershipViolationError()
	}
	return nil
}

// Add is TMap's in-place equivalent of Map.Add (spec.md §4.7): it
// follows the same five window cases, but a branch node already stamped
// with t's edit cell is mutated directly instead of cloned, so a build-up
// sequence of Add calls allocates only the nodes it actually needs to
// extend or grow.
func (t TMap[V]) Add(owner *Owner, k int, v V, meet func(old, new V) (V, error)) (TMap[V], error) {
	if err := t.checkOwner(owner); err != nil {
		return TMap[V]{}, err
	}
	if k < 0 {
		return TMap[V]{}, invalidKeyError(k)
	}
	if meet == nil {
		meet = conflictMeet[V](k)
	}
	min, shift, root, err := addWindowT[V](t.min, t.shift, t.root, t.edit, k, v, meet)
	if err != nil {
		return TMap[V]{}, err
	}
	return TMap[V]{min: min, shift: shift, root: root, edit: t.edit}, nil
}

func addWindowT[V any](min, shift int, root any, edit *editCell, k int, v V, meet func(V, V) (V, error)) (int, int, any, error) {
	for {
		if shift == 0 && isAbsent(root) {
			return k, 0, v, nil
		}
		switch {
		case inWindow(k, min, shift):
			if shift == 0 {
				old := root.(V)
				if identical(old, v) {
					return min, shift, root, nil
				}
				merged, err := meet(old, v)
				if err != nil {
					return 0, 0, nil, err
				}
				return min, shift, merged, nil
			}
			newRoot, err := addRecT[V](root, shift, k-min, edit, v, meet)
			if err != nil {
				return 0, 0, nil, err
			}
			return min, shift, newRoot, nil
		case k < min:
			singleton := Map[V]{min: k, shift: 0, root: v}
			merged, err := unionWindows[V](singleton, Map[V]{min: min, shift: shift, root: root}, unreachableMeet[V])
			if err != nil {
				return 0, 0, nil, err
			}
			return merged.min, merged.shift, merged.root, nil
		default:
			min, shift, root = growLevelT[V](min, shift, root, edit)
		}
	}
}

// addRecT descends like addRec, but mutates a branch node in place when
// it already carries edit as its token, cloning (and re-stamping with
// edit) only when it belongs to some other owner or to a persistent Map.
func addRecT[V any](cur any, curShift int, relOffset int, edit *editCell, v V, meet func(V, V) (V, error)) (any, error) {
	n := cur.(*node[V])
	idx := childIndex(relOffset, curShift)
	child := n.children[idx]
	childShift := curShift - branchBits
	childRel := childOffset(relOffset, curShift)

	var newChild any
	var err error
	switch {
	case isAbsent(child):
		newChild, err = buildChainT[V](childShift, childRel, edit, v)
	case childShift == 0:
		old := child.(V)
		if identical(old, v) {
			newChild = child
		} else {
			newChild, err = meet(old, v)
		}
	default:
		newChild, err = addRecT[V](child, childShift, childRel, edit, v, meet)
	}
	if err != nil {
		return nil, err
	}

	if sameEdit(n.edit, edit) {
		n.children[idx] = newChild
		return n, nil
	}
	cp := n.clone(edit)
	cp.children[idx] = newChild
	return cp, nil
}

// buildChainT is buildChain's transient counterpart: every branch node it
// allocates is stamped with edit, so a later Add sharing the same owner
// can extend it in place.
func buildChainT[V any](shift, relOffset int, edit *editCell, v V) (any, error) {
	if shift == 0 {
		return v, nil
	}
	n := newNode[V](edit)
	idx := childIndex(relOffset, shift)
	child, err := buildChainT[V](shift-branchBits, childOffset(relOffset, shift), edit, v)
	if err != nil {
		return nil, err
	}
	n.children[idx] = child
	return n, nil
}

// growLevelT is growLevel's transient counterpart: the new top-level
// branch is stamped with edit from the start.
func growLevelT[V any](min, shift int, root any, edit *editCell) (int, int, any) {
	newShift := shift + branchBits
	newMin := roundDown(min, newShift)
	n := newNode[V](edit)
	n.children[childIndex(min-newMin, newShift)] = root
	return newMin, newShift, n
}
