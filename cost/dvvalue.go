package cost

import "fmt"

// dvKind discriminates the four DVValue variants.
type dvKind uint8

const (
	dvUnreachable dvKind = iota
	dvSelf
	dvDirect
	dvVia
)

// DVValue is one distance-vector entry: the believed shortest distance from
// a node to one destination, together with its provenance. The zero value
// of the type is Unreachable.
type DVValue[W Weight] struct {
	kind dvKind
	w    W
	via  int
}

// Unreachable returns the "no known path" entry.
func Unreachable[W Weight]() DVValue[W] {
	return DVValue[W]{kind: dvUnreachable}
}

// Self returns the entry a node holds for itself (always cost Zero).
func Self[W Weight]() DVValue[W] {
	return DVValue[W]{kind: dvSelf}
}

// Direct returns an entry reached over a direct edge of weight w.
func Direct[W Weight](w W) DVValue[W] {
	return DVValue[W]{kind: dvDirect, w: w}
}

// Via returns an entry of total cost w routed through neighbor via.
func Via[W Weight](w W, via int) DVValue[W] {
	return DVValue[W]{kind: dvVia, w: w, via: via}
}

// FromCost converts a computed Cost back into a vector entry: Infinity maps
// to Unreachable, Zero to Self, and a finite value to Direct(w) when the
// winning candidate was a lone direct edge, or Via(w, through) otherwise.
func FromCost[W Weight](c Cost[W], through int, direct bool) DVValue[W] {
	switch {
	case c.IsInfinite():
		return Unreachable[W]()
	case c.IsZero():
		return Self[W]()
	case direct:
		return Direct(c.w)
	default:
		return Via(c.w, through)
	}
}

// Cost projects the entry onto the cost algebra.
func (v DVValue[W]) Cost() Cost[W] {
	switch v.kind {
	case dvUnreachable:
		return Infinity[W]()
	case dvSelf:
		return Zero[W]()
	default:
		return Value(v.w)
	}
}

// EqualCost reports whether v and o carry the same cost. This is the
// equality used for change detection: a different via-neighbor at the same
// cost is NOT a change.
func (v DVValue[W]) EqualCost(o DVValue[W]) bool {
	return v.Cost().Equal(o.Cost())
}

// IsUnreachable reports whether v is the Unreachable entry.
func (v DVValue[W]) IsUnreachable() bool { return v.kind == dvUnreachable }

// IsSelf reports whether v is the Self entry.
func (v DVValue[W]) IsSelf() bool { return v.kind == dvSelf }

// IsDirect reports whether v was reached over a direct edge.
func (v DVValue[W]) IsDirect() bool { return v.kind == dvDirect }

// ViaNeighbor returns the intermediate neighbor index and true when the
// entry routes through a neighbor rather than a direct edge.
func (v DVValue[W]) ViaNeighbor() (int, bool) {
	if v.kind != dvVia {
		return 0, false
	}
	return v.via, true
}

// String renders the entry for diagnostics. Rendering with node names is
// the render package's concern.
func (v DVValue[W]) String() string {
	switch v.kind {
	case dvUnreachable:
		return "∞"
	case dvSelf:
		return "0"
	case dvDirect:
		return fmt.Sprintf("%v", v.w)
	default:
		return fmt.Sprintf("%v(via %d)", v.w, v.via)
	}
}
