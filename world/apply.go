package world

import (
	"fmt"

	"github.com/katalvlaran/distvec/cost"

	"github.com/rhartert/sparsesets"
)

// Apply derives a new World with the given edge-weight changes applied.
// For each operation it:
//
//  1. updates the edge relation symmetrically (insert or re-weight);
//  2. seeds both endpoints' own vector entries for each other with
//     Via(weight, other) — an acknowledgement of the new link, not a full
//     relaxation;
//  3. records both endpoints as touched.
//
// Re-applying an operation whose weight equals the recorded one is a no-op
// on vectors. After all operations, every node adjacent to a touched node
// (the recipients of fresh advertisements, which always includes the
// endpoints themselves) is marked pending, and the inbox snapshots are
// rebuilt from the seeded vectors. The generation counter does not move:
// mutation and relaxation are separate phases.
//
// The receiver is never modified. Operations are validated again here so a
// hand-built Operation cannot smuggle in what ResolveEdge rejects.
func (w *World[W]) Apply(ops []Operation[W]) (*World[W], error) {
	n := w.Size()
	var zero W
	for _, op := range ops {
		if op.A < 0 || op.A >= n || op.B < 0 || op.B >= n {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrBadOperation, op.A, op.B)
		}
		if op.A == op.B {
			return nil, fmt.Errorf("%w: node %d", ErrSelfEdge, op.A)
		}
		if op.Weight < zero {
			return nil, fmt.Errorf("%w: (%d,%d) weight %v", ErrNegativeWeight, op.A, op.B, op.Weight)
		}
	}

	next := w.clone()
	touched := sparsesets.New(n)
	for _, op := range ops {
		prev, existed := next.Weight(op.A, op.B)
		if existed && prev == op.Weight {
			// Identical re-weight: the relation and vectors already say this.
			continue
		}
		next.setWeight(op.A, op.B, op.Weight)
		next.setWeight(op.B, op.A, op.Weight)
		next.vectors[op.A][op.B] = cost.Via(op.Weight, op.B)
		next.vectors[op.B][op.A] = cost.Via(op.Weight, op.A)
		touched.Insert(op.A)
		touched.Insert(op.B)
	}

	// A touched node's vector changed, so everyone listening to it has new
	// input and must relax next round.
	next.pending = make([]bool, n)
	for _, t := range touched.Content() {
		for _, l := range next.links[t] {
			next.pending[l.To] = true
		}
	}

	next.inbox = copyVectors(next.vectors)
	return next, nil
}

// setWeight inserts or updates the one-directional link a→b, keeping a's
// links sorted by neighbor index.
func (w *World[W]) setWeight(a, b int, weight W) {
	ls := w.links[a]
	for i := range ls {
		if ls[i].To == b {
			ls[i].Weight = weight
			return
		}
		if ls[i].To > b {
			ls = append(ls, Link[W]{})
			copy(ls[i+1:], ls[i:])
			ls[i] = Link[W]{To: b, Weight: weight}
			w.links[a] = ls
			return
		}
	}
	w.links[a] = append(ls, Link[W]{To: b, Weight: weight})
}

// Advance commits the outcome of one relaxation round: the new vectors
// replace both the live vectors and the frozen inboxes, the pending set
// becomes the neighbors of every changed node, and the generation counter
// moves forward by one. Panics on a malformed vector shape — that is a
// programmer error, not a recoverable condition.
func (w *World[W]) Advance(vectors [][]cost.DVValue[W], changed []int) *World[W] {
	n := w.Size()
	if len(vectors) != n {
		panic(fmt.Sprintf("world: Advance got %d vectors for %d nodes", len(vectors), n))
	}
	for i, v := range vectors {
		if len(v) != n {
			panic(fmt.Sprintf("world: Advance vector %d has %d entries for %d nodes", i, len(v), n))
		}
		if !v[i].IsSelf() {
			panic(fmt.Sprintf("world: Advance vector %d lost its Self entry", i))
		}
	}

	next := &World[W]{
		names:   w.names,
		byName:  w.byName,
		links:   w.links, // relation untouched by relaxation
		vectors: copyVectors(vectors),
		inbox:   copyVectors(vectors),
		pending: make([]bool, n),
		gen:     w.gen + 1,
	}
	for _, c := range changed {
		for _, l := range w.links[c] {
			next.pending[l.To] = true
		}
	}
	return next
}

// Stabilized returns the terminal snapshot of a converged run: same
// vectors and relation, no pending nodes, generation advanced by the final
// confirming round.
func (w *World[W]) Stabilized() *World[W] {
	next := w.clone()
	next.pending = make([]bool, w.Size())
	next.gen = w.gen + 1
	return next
}
