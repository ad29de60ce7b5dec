// Package distvec is an in-memory simulator for distance-vector routing
// (synchronous distributed Bellman–Ford) over small weighted undirected
// graphs — built for teaching and verifying the protocol, not for moving
// packets.
//
// 🚀 What is distvec?
//
//	A pure, deterministic engine that brings together:
//		• Cost algebra: a totally ordered {0, w, ∞} monoid, generic over the weight type
//		• Immutable worlds: node registry, symmetric edges, frozen per-round inboxes
//		• Relaxation: one synchronous round of vector exchange, candidate by candidate
//		• Convergence: round after round until the network reaches its fixed point
//		• Explanations: every candidate, every term, every winner — as plain data
//
// ✨ Why choose distvec?
//
//   - Deterministic – frozen inbox snapshots make every round order-independent
//   - Inspectable – each recomputed entry carries its full min(...) justification
//   - Pure values – a World is never mutated, each step derives a new snapshot
//   - Generic – any ordered, summable numeric weight type; nothing is hardwired
//
// Everything is organized under small focused subpackages:
//
//	cost/   — the {Zero, Value, Infinity} cost algebra and distance-vector entries
//	world/  — immutable topology snapshots, name resolution, edge mutations
//	relax/  — the per-round relaxation engine and the convergence loop
//	trace/  — structured explanation records (candidates, terms, winners)
//	render/ — HTML / text presentation of tables and relaxation formulas
//
// Quick ASCII example:
//
//	    A──2──B
//	    │    /│
//	    8   9 7
//	    │  /  │
//	    D──4──C
//
//	After convergence every node holds the shortest cost to every other
//	node, and each table entry can explain exactly why it won.
//
// Dive into examples/ for full scenario walkthroughs with HTML output.
//
//	go get github.com/katalvlaran/distvec
package distvec
