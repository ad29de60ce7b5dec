package cost

import "fmt"

// Weight is the constraint on the generic weight parameter: any ordered,
// summable numeric type. Engine code never assumes a concrete width; int,
// uint8 and float64 weights are all equally valid.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// kind discriminates the three Cost variants.
type kind uint8

const (
	kindZero kind = iota
	kindValue
	kindInfinity
)

// Cost is a totally ordered, additive cost value: Zero, a finite Value(w),
// or Infinity. The zero value of the type is Zero.
type Cost[W Weight] struct {
	kind kind
	w    W
}

// Zero returns the additive identity.
func Zero[W Weight]() Cost[W] {
	return Cost[W]{kind: kindZero}
}

// Value returns a finite cost carrying w.
func Value[W Weight](w W) Cost[W] {
	return Cost[W]{kind: kindValue, w: w}
}

// Infinity returns the absorbing "no known path" sentinel.
func Infinity[W Weight]() Cost[W] {
	return Cost[W]{kind: kindInfinity}
}

// IsZero reports whether c is the additive identity.
func (c Cost[W]) IsZero() bool { return c.kind == kindZero }

// IsInfinite reports whether c is the Infinity sentinel.
func (c Cost[W]) IsInfinite() bool { return c.kind == kindInfinity }

// Finite returns the carried weight and true when c is a finite Value.
func (c Cost[W]) Finite() (W, bool) {
	if c.kind != kindValue {
		var zero W
		return zero, false
	}
	return c.w, true
}

// Add returns c + o. Infinity absorbs, Zero is the identity, and two finite
// values add their weights.
func (c Cost[W]) Add(o Cost[W]) Cost[W] {
	switch {
	case c.kind == kindInfinity || o.kind == kindInfinity:
		return Infinity[W]()
	case c.kind == kindZero:
		return o
	case o.kind == kindZero:
		return c
	default:
		return Value(c.w + o.w)
	}
}

// Compare returns -1, 0 or +1 following the total order
// Zero < Value(w) < Infinity, with Values ordered by their weights.
func (c Cost[W]) Compare(o Cost[W]) int {
	if c.kind != o.kind {
		if c.kind < o.kind {
			return -1
		}
		return 1
	}
	if c.kind != kindValue {
		return 0
	}
	switch {
	case c.w < o.w:
		return -1
	case c.w > o.w:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts strictly before o.
func (c Cost[W]) Less(o Cost[W]) bool { return c.Compare(o) < 0 }

// Equal reports whether c and o denote the same cost.
func (c Cost[W]) Equal(o Cost[W]) bool { return c.Compare(o) == 0 }

// String renders the cost for diagnostics: "0", the weight, or "∞".
func (c Cost[W]) String() string {
	switch c.kind {
	case kindZero:
		return "0"
	case kindInfinity:
		return "∞"
	default:
		return fmt.Sprintf("%v", c.w)
	}
}
