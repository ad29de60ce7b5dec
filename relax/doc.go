// Package relax implements the heart of distvec: one synchronous round of
// distance-vector relaxation, and the loop that repeats rounds until the
// network reaches its fixed point.
//
// One round (Round) visits every pending node N in ascending index order
// and recomputes its entry for every destination D ≠ N as the minimum over:
//
//   - a direct-edge candidate C(N,D), when D is a neighbor of N;
//   - one candidate per other neighbor M: C(N,M) + d_M(D), where d_M(D) is
//     M's advertised distance read from the frozen pre-round inbox — never
//     from a vector another node may have updated this round.
//
// Reading exclusively from the frozen snapshot is what makes the round
// synchronous and order-independent: relaxing nodes in any order yields the
// same vectors and the same explanation traces. Candidates are enumerated
// in ascending neighbor index and ties go to the first enumerated, so the
// winner is deterministic too.
//
// A node counts as changed only when some entry's COST moved; switching
// via-neighbor at equal cost is not a change. The changed set drives the
// next round's pending set (the neighbors of changed nodes, i.e. the
// recipients of fresh advertisements) and the refreshed inboxes.
//
// Converge runs rounds until one produces no change, then returns the
// stabilized world. With non-negative finite weights every destination
// settles within V−1 rounds of a fresh mutation batch; a generous default
// round cap (or WithMaxRounds) guards against malformed snapshots instead
// of looping forever.
//
// Complexity per round: O(P·V·deg) for P pending nodes, plus O(V²) for the
// snapshot commit.
package relax
