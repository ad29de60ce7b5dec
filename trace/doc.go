// Package trace defines the structured explanation data the relaxation
// engine produces: for every recomputed vector entry, every candidate that
// was considered, the terms it was summed from, and which candidate won.
//
// The records are plain data, deliberately renderer-agnostic. Whether an
// explanation becomes an HTML formula, a text line or JSON is strictly the
// consumer's concern (see the render package for two of them).
//
// Candidate order is stable: ascending neighbor index, with a direct-edge
// candidate occupying its neighbor's position rather than being forced
// first. A Relaxation therefore lists exactly one candidate per neighbor of
// the source node.
package trace
