// Package vtree implements the reconciler and instance model (C5): it
// diffs a freshly declared VNode tree against the previously committed
// one, allocates stable InstanceIds, and enforces the key/id
// uniqueness invariants the rest of the runtime depends on.
package vtree

import "github.com/zireael-ui/zireael/vnode"

// InstanceID is a monotonic, non-negative identifier allocated
// sequentially starting at 1. Zero is never a valid id.
type InstanceID uint64

// Instance is the post-reconciliation record for one node. It mirrors
// its VNode's kind and props and owns its children by id. Instance
// trees are never mutated after a commit; a new commit produces a new
// tree, sharing unchanged leaves by value.
type Instance struct {
	ID       InstanceID
	Kind     vnode.Kind
	Props    vnode.Props
	Children []*Instance

	// prevID is non-zero when this instance was reused from the
	// previous commit, letting instance-local state keyed by id
	// (hover, pressed, scroll, cursor) survive the reuse.
	prevID InstanceID
}

// PrevID returns the instance id this node carried in the previous
// commit, or 0 if this is a freshly created instance.
func (inst *Instance) PrevID() InstanceID { return inst.prevID }

// Allocator hands out sequential InstanceIds, starting at 1, shared by
// every reconciliation pass against one committed tree.
type Allocator struct {
	next InstanceID
}

// NewAllocator starts id allocation at 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

func (a *Allocator) alloc() InstanceID {
	id := a.next
	a.next++
	return id
}

// Store is instance-local state keyed by id (hover, pressed, layout
// cache, tabIndex, scroll position, input cursor...). The reconciler
// releases entries for instances destroyed during a commit; it never
// touches entries for ids it did not destroy.
type Store struct {
	data map[InstanceID]any
}

// NewStore creates an empty instance-local state store.
func NewStore() *Store {
	return &Store{data: make(map[InstanceID]any)}
}

// Get returns the stored value for id, if any.
func (s *Store) Get(id InstanceID) (any, bool) {
	v, ok := s.data[id]
	return v, ok
}

// Set stores a value for id, carrying it forward across reuse.
func (s *Store) Set(id InstanceID, v any) {
	s.data[id] = v
}

// Release drops stored state for id. Called by the reconciler when an
// instance is destroyed.
func (s *Store) Release(id InstanceID) {
	delete(s.data, id)
}
