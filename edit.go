package intmap

import "github.com/rogpeppe/intmap/gatomic"

// Owner is an opaque identity token authorizing mutation of a TMap.
// Two Owners are the same owner only if they are the same pointer;
// callers create one with NewOwner per logical "thread" that will hold
// a transient, typically once per build-up-then-seal cycle.
//
// Modeled directly on the generation token from a concurrent hash trie:
// a heap-allocated one-field struct compared by identity rather than
// content, so that two zero-size values never alias to the same address.
type Owner struct{ _ int32 }

// NewOwner returns a fresh Owner, distinct from every other Owner.
func NewOwner() *Owner {
	return &Owner{}
}

// editCell is the ownership cell described in spec.md §3: a one-shot
// mutable reference to the Owner currently authorized to mutate the
// nodes that carry this exact cell as their edit token. It is compared
// by identity (the editCell pointer itself), never by the owner it holds.
//
// The owner field is accessed through gatomic rather than a plain field
// so that concurrent diagnostic readers (race detectors, future
// multi-reader tooling) observe well-defined values; the single-owner
// invariant that makes TMap safe to mutate is still a caller obligation,
// not something these atomics enforce on their own.
type editCell struct {
	owner *Owner
}

func newEditCell(owner *Owner) *editCell {
	return &editCell{owner: owner}
}

func (e *editCell) ownerIs(owner *Owner) bool {
	if owner == nil {
		return false
	}
	return gatomic.LoadPointer(&e.owner) == owner
}

func (e *editCell) clear() {
	gatomic.StorePointer(&e.owner, (*Owner)(nil))
}

// sameEdit reports whether two slots (an existing node's edit token and
// a TMap's own edit cell) refer to the identical ownership cell, i.e.
// whether a node was allocated for this transient and may be mutated in
// place rather than copy-on-write cloned.
func sameEdit(a, b *editCell) bool {
	return a != nil && a == b
}
