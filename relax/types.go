package relax

import (
	"errors"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/trace"
	"github.com/katalvlaran/distvec/world"
)

// Sentinel errors for the relaxation engine.
var (
	// ErrWorldNil is returned if a nil world pointer is passed.
	ErrWorldNil = errors.New("relax: world is nil")

	// ErrNoConvergence is returned when the round cap is hit before the
	// network stabilizes. With non-negative weights this signals either a
	// too-tight WithMaxRounds or a hand-corrupted snapshot.
	ErrNoConvergence = errors.New("relax: no convergence within round limit")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")
)

// Result is the outcome of one synchronous round.
type Result[W cost.Weight] struct {
	// Round is the generation this round computed (previous generation + 1).
	Round int

	// Changed lists the nodes whose vector cost moved, ascending.
	Changed []int

	// Traces holds one explanation per relaxed (node, destination≠node)
	// pair, in node order then destination order.
	Traces []trace.Relaxation[W]

	// Next is the committed post-round world. It is nil when Changed is
	// empty: a no-change round leaves the previous snapshot in force.
	Next *world.World[W]
}

// Outcome is the result of running rounds to convergence.
type Outcome[W cost.Weight] struct {
	// World is the terminal stable snapshot, pending set empty.
	World *world.World[W]

	// Rounds counts every round executed, including the final confirming
	// round that observed no change. Zero when the input was already stable.
	Rounds int

	// History holds the per-round results when WithHistory was given.
	History []*Result[W]
}

// Options configures Converge via functional arguments.
type Options[W cost.Weight] struct {
	// MaxRounds caps the number of rounds. 0 picks a generous default of
	// V² rounds, comfortably above the V−1 bound for a fresh batch.
	// Negative values are an ErrOptionViolation.
	MaxRounds int

	// History, if true, retains every round's Result in the Outcome.
	History bool

	// Observer, if set, is called after each round with its Result.
	Observer func(*Result[W])
}

// Option configures convergence behavior via functional arguments.
type Option[W cost.Weight] func(*Options[W])

// WithMaxRounds caps the number of rounds Converge may run.
func WithMaxRounds[W cost.Weight](n int) Option[W] {
	return func(o *Options[W]) { o.MaxRounds = n }
}

// WithHistory retains each round's Result in the Outcome.
func WithHistory[W cost.Weight]() Option[W] {
	return func(o *Options[W]) { o.History = true }
}

// WithObserver registers a per-round callback, invoked after every round
// (including the final no-change round).
func WithObserver[W cost.Weight](fn func(*Result[W])) Option[W] {
	return func(o *Options[W]) { o.Observer = fn }
}
