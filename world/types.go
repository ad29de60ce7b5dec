package world

import (
	"errors"

	"github.com/katalvlaran/distvec/cost"
)

// Sentinel errors for world construction and mutation.
var (
	// ErrEmptyName indicates a node name in the registry is the empty string.
	ErrEmptyName = errors.New("world: node name is empty")

	// ErrDuplicateName indicates the same name appears twice in the registry.
	ErrDuplicateName = errors.New("world: duplicate node name")

	// ErrNodeNotFound indicates an edge operation referenced an unregistered name.
	ErrNodeNotFound = errors.New("world: node not found")

	// ErrSelfEdge indicates an edge operation with both endpoints equal.
	ErrSelfEdge = errors.New("world: self-edge not allowed")

	// ErrNegativeWeight indicates a negative edge weight; rejected at the
	// mutation boundary so it can never reach relaxation.
	ErrNegativeWeight = errors.New("world: negative edge weight")

	// ErrBadOperation indicates an Operation with out-of-range endpoints,
	// typically one constructed by hand instead of via ResolveEdge.
	ErrBadOperation = errors.New("world: operation endpoints out of range")
)

// Link is one outgoing edge of a node: the neighbor's index and the edge
// weight. A node's links are kept in ascending To order; that order is what
// makes candidate enumeration (and tie-breaking) deterministic.
type Link[W cost.Weight] struct {
	To     int
	Weight W
}

// Operation is a resolved edge-weight change between two node indices.
// Build one with ResolveEdge; the endpoints are already validated there.
type Operation[W cost.Weight] struct {
	A, B   int
	Weight W
}
