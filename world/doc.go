// Package world models the network topology as an immutable snapshot: a
// fixed node registry, a symmetric edge-weight relation, one distance
// vector per node, and a frozen per-node "inbox" holding the vectors the
// neighbors advertised before the current round.
//
// A World is a value in the persistent-snapshot sense: nothing ever mutates
// one in place. Construction, mutation batches and relaxation rounds each
// derive a brand-new World:
//
//	w0, _ := world.New[int]([]string{"A", "B", "C"})
//	op, _ := w0.ResolveEdge("A", "B", 2)
//	w1, _ := w0.Apply([]world.Operation[int]{op})
//
// Mutation (Apply) and relaxation are separate phases. Apply updates the
// symmetric edge relation, seeds both endpoints' vector entries for each
// other with the new weight (an acknowledgement, not a relaxation), marks
// every node that received a fresh advertisement as pending, and leaves the
// generation counter untouched. The relax package owns advancing it.
//
// Invariants held by every World this package hands out:
//
//   - node indices are stable for the lifetime of the registry;
//   - vector[n][n] is Self in every snapshot;
//   - weight(a,b) == weight(b,a) for every recorded edge;
//   - negative weights are rejected at ResolveEdge, before any state exists.
//
// Violations of internal invariants (malformed vector shapes handed to
// Advance, out-of-range indices inside a snapshot) are programmer errors
// and panic rather than propagate corrupt routing state.
//
// Complexity: New is O(V²) (vector allocation), Apply is O(V²) per batch
// (snapshot copy), lookups are O(1) or O(deg).
package world
