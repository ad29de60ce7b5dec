// Package cost defines the cost algebra and the distance-vector entry type
// used throughout distvec.
//
// A Cost is a closed three-way variant over a generic weight type W:
//
//	Zero < Value(w) < Infinity
//
// with two Values ordered by their weights. Addition treats Zero as the
// identity and Infinity as absorbing, so Cost forms a commutative monoid
// whenever W's addition is commutative:
//
//	Zero     + c        = c
//	Infinity + c        = Infinity
//	Value(a) + Value(b) = Value(a+b)
//
// A DVValue is one entry of a node's distance vector and records the
// provenance of the believed shortest distance to a destination:
//
//	Unreachable — no known path (projects to Infinity)
//	Self        — the destination is the node itself (projects to Zero)
//	Direct(w)   — reached over a direct edge of weight w
//	Via(w, m)   — reached at total cost w through neighbor m
//
// Equality between entries is cost-only: two entries with the same cost but
// different via-neighbors compare equal for change-detection purposes. Use
// EqualCost, never a struct comparison, when deciding whether a vector
// actually changed.
//
// Complexity: every operation in this package is O(1).
package cost
