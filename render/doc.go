// Package render turns the engine's structured outputs — world snapshots
// and relaxation traces — into human-readable form. The engine itself is
// renderer-agnostic; everything about formatting lives here.
//
// Two markup styles ship out of the box:
//
//   - HTML, matching the classic exercise hand-outs: per-node tables with
//     the node's own vector and every neighbor's advertised vector, plus a
//     min(...) formula line for each recomputed entry, e.g.
//
//     d_A(D)=min(C(A,B)+d_B(D), C(A,D))=min(2+9, 8)=8
//
//   - plain text, same structure without the markup, for logs and tests.
//
// HTMLFiles writes one numbered HTML file per simulation step (the state
// after a mutation batch, then one file per round), each wrapped in a
// minimal document scaffold that links a shared stylesheet.
package render
