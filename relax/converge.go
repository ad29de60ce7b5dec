package relax

import (
	"fmt"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/world"
)

// Converge runs relaxation rounds on w until one produces no cost change,
// then returns the stabilized world. The loop is a two-state machine:
// Running applies Round to the current snapshot; an empty changed set is
// the transition to Stable, which commits one last generation bump and
// clears the pending flags.
//
// A world with no pending nodes is Stable immediately: Converge performs
// zero rounds and returns it untouched, so converging twice is idempotent.
func Converge[W cost.Weight](w *world.World[W], opts ...Option[W]) (*Outcome[W], error) {
	// 1) Validate input and options.
	if w == nil {
		return nil, ErrWorldNil
	}
	var cfg Options[W]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxRounds < 0 {
		return nil, fmt.Errorf("%w: MaxRounds %d", ErrOptionViolation, cfg.MaxRounds)
	}
	limit := cfg.MaxRounds
	if limit == 0 {
		limit = w.Size() * w.Size()
	}

	out := &Outcome[W]{}

	// 2) Already stable: nothing pending, zero further rounds.
	if !w.HasPending() {
		out.World = w
		return out, nil
	}

	// 3) Running → ... → Stable.
	cur := w
	for {
		if out.Rounds >= limit {
			return nil, fmt.Errorf("%w: %d rounds on %d nodes", ErrNoConvergence, out.Rounds, cur.Size())
		}

		res, err := Round(cur)
		if err != nil {
			return nil, err
		}
		out.Rounds++
		if cfg.History {
			out.History = append(out.History, res)
		}
		if cfg.Observer != nil {
			cfg.Observer(res)
		}

		// 4) Fixed point: the confirming round still advances the counter.
		if len(res.Changed) == 0 {
			out.World = cur.Stabilized()
			return out, nil
		}
		cur = res.Next
	}
}
