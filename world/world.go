package world

import (
	"fmt"

	"github.com/katalvlaran/distvec/cost"
)

// World is one immutable snapshot of the simulated network. See the package
// documentation for the invariants every snapshot satisfies.
type World[W cost.Weight] struct {
	names   []string
	byName  map[string]int
	links   [][]Link[W] // per node, ascending by To
	vectors [][]cost.DVValue[W]
	inbox   [][]cost.DVValue[W] // frozen pre-round advertisements, one per node
	pending []bool
	gen     int
}

// New builds a world of len(names) isolated nodes with stable indices
// 0..len(names)-1. Every vector entry is Unreachable except the node's own,
// which is Self. No edges exist yet and no node is pending.
func New[W cost.Weight](names []string) (*World[W], error) {
	n := len(names)
	w := &World[W]{
		names:   make([]string, n),
		byName:  make(map[string]int, n),
		links:   make([][]Link[W], n),
		vectors: make([][]cost.DVValue[W], n),
		inbox:   make([][]cost.DVValue[W], n),
		pending: make([]bool, n),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyName, i)
		}
		if _, dup := w.byName[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		w.names[i] = name
		w.byName[name] = i

		vec := make([]cost.DVValue[W], n)
		for j := range vec {
			vec[j] = cost.Unreachable[W]()
		}
		vec[i] = cost.Self[W]()
		w.vectors[i] = vec
		w.inbox[i] = append([]cost.DVValue[W](nil), vec...)
	}
	return w, nil
}

// Size returns the number of registered nodes.
func (w *World[W]) Size() int { return len(w.names) }

// Generation returns the round counter. It advances only through the
// convergence loop, never through Apply.
func (w *World[W]) Generation() int { return w.gen }

// Names returns the node names in index order. The slice is a copy.
func (w *World[W]) Names() []string {
	return append([]string(nil), w.names...)
}

// NameOf returns the display name of node i.
func (w *World[W]) NameOf(i int) string { return w.names[i] }

// Index returns the stable index registered for name.
func (w *World[W]) Index(name string) (int, bool) {
	i, ok := w.byName[name]
	return i, ok
}

// Links returns node i's outgoing edges in ascending neighbor order.
//
// Important: the slice is a view on the snapshot's internal structure and
// must only be used in read-only operations.
func (w *World[W]) Links(i int) []Link[W] { return w.links[i] }

// Weight returns the recorded weight of edge (a,b) and whether it exists.
// The relation is symmetric: Weight(a,b) always agrees with Weight(b,a).
func (w *World[W]) Weight(a, b int) (W, bool) {
	for _, l := range w.links[a] {
		if l.To == b {
			return l.Weight, true
		}
	}
	var zero W
	return zero, false
}

// Vector returns node i's current distance vector, one entry per
// destination index. Read-only view, same caveat as Links.
func (w *World[W]) Vector(i int) []cost.DVValue[W] { return w.vectors[i] }

// Advertised returns the frozen pre-round vector of node i — the snapshot
// its neighbors relax against this round. Read-only view.
func (w *World[W]) Advertised(i int) []cost.DVValue[W] { return w.inbox[i] }

// Pending reports whether node i needs relaxation in the next round.
func (w *World[W]) Pending(i int) bool { return w.pending[i] }

// HasPending reports whether any node awaits relaxation.
func (w *World[W]) HasPending() bool {
	for _, p := range w.pending {
		if p {
			return true
		}
	}
	return false
}

// PendingNodes returns the indices of all pending nodes in ascending order.
func (w *World[W]) PendingNodes() []int {
	var out []int
	for i, p := range w.pending {
		if p {
			out = append(out, i)
		}
	}
	return out
}

// ResolveEdge resolves two node names and a weight into an Operation. It is
// a pure lookup: the world is untouched, and every failure surfaces before
// any mutation can happen. Fails with ErrNodeNotFound for an unregistered
// name, ErrSelfEdge when both names resolve to the same node, and
// ErrNegativeWeight for a weight below W's zero.
func (w *World[W]) ResolveEdge(nameA, nameB string, weight W) (Operation[W], error) {
	a, ok := w.byName[nameA]
	if !ok {
		return Operation[W]{}, fmt.Errorf("%w: %q", ErrNodeNotFound, nameA)
	}
	b, ok := w.byName[nameB]
	if !ok {
		return Operation[W]{}, fmt.Errorf("%w: %q", ErrNodeNotFound, nameB)
	}
	if a == b {
		return Operation[W]{}, fmt.Errorf("%w: %q", ErrSelfEdge, nameA)
	}
	var zero W
	if weight < zero {
		return Operation[W]{}, fmt.Errorf("%w: %s–%s weight %v", ErrNegativeWeight, nameA, nameB, weight)
	}
	return Operation[W]{A: a, B: b, Weight: weight}, nil
}

// clone returns a deep copy of w sharing only the immutable name registry.
func (w *World[W]) clone() *World[W] {
	c := &World[W]{
		names:   w.names,
		byName:  w.byName,
		links:   make([][]Link[W], len(w.links)),
		vectors: copyVectors(w.vectors),
		inbox:   copyVectors(w.inbox),
		pending: append([]bool(nil), w.pending...),
		gen:     w.gen,
	}
	for i, ls := range w.links {
		c.links[i] = append([]Link[W](nil), ls...)
	}
	return c
}

func copyVectors[W cost.Weight](src [][]cost.DVValue[W]) [][]cost.DVValue[W] {
	out := make([][]cost.DVValue[W], len(src))
	for i, v := range src {
		out[i] = append([]cost.DVValue[W](nil), v...)
	}
	return out
}
