package vtree

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/zireael-ui/zireael/vnode"
	"github.com/zireael-ui/zireael/zrerr"
)

// Tree is the result of a successful reconciliation: the new committed
// root plus the ordered focus list collected during the same walk.
type Tree struct {
	Root      *Instance
	FocusList []InstanceID
	FocusIDs  []string // the `id` prop of each focusable instance, same order
}

// Reconciler owns the allocator and instance-local store that persist
// across commits. One Reconciler belongs to exactly one app.
type Reconciler struct {
	alloc *Allocator
	store *Store
	prev  *Instance
}

// NewReconciler starts a fresh reconciler with no previous commit.
func NewReconciler() *Reconciler {
	return &Reconciler{alloc: NewAllocator(), store: NewStore()}
}

// Store exposes the instance-local state store so widgets (via the
// event router) can read and write hover/pressed/scroll/cursor state
// keyed by instance id.
func (r *Reconciler) Store() *Store { return r.store }

// Commit reconciles root against the previous committed tree (if any)
// and, on success, replaces it. On failure the previous tree is left
// untouched and the returned error is a *multierror.Error wrapping one
// or more *zrerr.Error values.
func (r *Reconciler) Commit(root vnode.VNode) (*Tree, error) {
	var errs *multierror.Error
	seenIDs := make(map[string]InstanceID)

	newRoot := r.reconcileNode(r.prev, root, seenIDs, &errs)

	if errs.ErrorOrNil() != nil {
		return nil, errs
	}

	focusIDs, focusInstIDs := collectFocusList(newRoot)

	r.prev = newRoot
	return &Tree{Root: newRoot, FocusList: focusInstIDs, FocusIDs: focusIDs}, nil
}

// reconcileNode pairs prev against next, reusing prev's id when kind
// and key match, and recurses into children by sibling position.
func (r *Reconciler) reconcileNode(prev *Instance, next vnode.VNode, seenIDs map[string]InstanceID, errs **multierror.Error) *Instance {
	var id InstanceID
	var prevID InstanceID
	if prev != nil && prev.Kind == next.Kind && prev.Props.Key == next.Props.Key {
		id = prev.ID
		prevID = prev.ID
	} else {
		if prev != nil {
			r.destroySubtree(prev)
		}
		id = r.alloc.alloc()
	}

	if next.Props.ID != "" && next.Kind.IsInteractive() {
		if existing, dup := seenIDs[next.Props.ID]; dup {
			*errs = multierror.Append(*errs, zrerr.New(zrerr.CodeDuplicateID,
				fmt.Sprintf("id %q reused by instanceId=%d, already used by instanceId=%d", next.Props.ID, id, existing)))
		} else {
			seenIDs[next.Props.ID] = id
		}
	}

	inst := &Instance{ID: id, Kind: next.Kind, Props: next.Props, prevID: prevID}

	inst.Children = r.reconcileChildren(prev, next.Children, id, seenIDs, errs)
	return inst
}

func (r *Reconciler) reconcileChildren(prevParent *Instance, nextChildren []vnode.VNode, parentID InstanceID, seenIDs map[string]InstanceID, errs **multierror.Error) []*Instance {
	var prevChildren []*Instance
	if prevParent != nil {
		prevChildren = prevParent.Children
	}

	// Duplicate sibling key scan: every repeated key at this level is
	// reported, each against the index where that key was first seen.
	// Pairing still falls back to positional matching for the offending
	// children so the walk can continue to the next parent.
	seenKeys := make(map[string]int)
	for i, c := range nextChildren {
		if c.Props.Key == "" {
			continue
		}
		if firstIdx, dup := seenKeys[c.Props.Key]; dup {
			*errs = multierror.Append(*errs, zrerr.New(zrerr.CodeDuplicateKey,
				fmt.Sprintf("parent instanceId=%d: sibling key %q reused at child index %d, first seen at index %d", parentID, c.Props.Key, i, firstIdx)))
		} else {
			seenKeys[c.Props.Key] = i
		}
	}

	out := make([]*Instance, len(nextChildren))
	for i, c := range nextChildren {
		var prevChild *Instance
		if i < len(prevChildren) {
			prevChild = prevChildren[i]
		}
		out[i] = r.reconcileNode(prevChild, c, seenIDs, errs)
	}
	// children beyond the new length are destroyed
	if len(prevChildren) > len(nextChildren) {
		for _, stale := range prevChildren[len(nextChildren):] {
			r.destroySubtree(stale)
		}
	}
	return out
}

func (r *Reconciler) destroySubtree(inst *Instance) {
	if inst == nil {
		return
	}
	r.store.Release(inst.ID)
	for _, c := range inst.Children {
		r.destroySubtree(c)
	}
}

func collectFocusList(root *Instance) (ids []string, instIDs []InstanceID) {
	var walk func(*Instance)
	walk = func(n *Instance) {
		if n == nil {
			return
		}
		if isFocusable(n) {
			ids = append(ids, n.Props.ID)
			instIDs = append(instIDs, n.ID)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return ids, instIDs
}

func isFocusable(n *Instance) bool {
	if n.Props.Focusable {
		return true
	}
	switch n.Kind {
	case vnode.KindButton, vnode.KindInput:
		return true
	}
	return false
}
