package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/relax"
	"github.com/katalvlaran/distvec/world"
)

func TestConverge_NilWorld(t *testing.T) {
	_, err := relax.Converge[int](nil)
	assert.ErrorIs(t, err, relax.ErrWorldNil)
}

func TestConverge_BadOption(t *testing.T) {
	_, err := relax.Converge(fourNode(t), relax.WithMaxRounds[int](-1))
	assert.ErrorIs(t, err, relax.ErrOptionViolation)
}

// TestConverge_ScenarioA: after convergence the shortest A→D cost is the
// direct edge (8), beating 2+9 via B-D and 2+7+4 via B-C-D.
func TestConverge_ScenarioA(t *testing.T) {
	out, err := relax.Converge(fourNode(t))
	require.NoError(t, err)
	w := out.World

	assert.True(t, entryCost(w, 0, 3).Equal(cost.Value(8)), "A→D")
	assert.True(t, w.Vector(0)[3].IsDirect(), "A→D should be the direct edge")

	// Full expected tables for the classic four-node exercise.
	expect := map[[2]int]int{
		{0, 1}: 2, {0, 2}: 9, {0, 3}: 8,
		{1, 0}: 2, {1, 2}: 7, {1, 3}: 9,
		{2, 0}: 9, {2, 1}: 7, {2, 3}: 4,
		{3, 0}: 8, {3, 1}: 9, {3, 2}: 4,
	}
	for k, want := range expect {
		assert.True(t, entryCost(w, k[0], k[1]).Equal(cost.Value(want)),
			"%s→%s = %v; want %d", w.NameOf(k[0]), w.NameOf(k[1]), entryCost(w, k[0], k[1]), want)
	}

	// Fresh batch on V nodes settles within V−1 rounds.
	assert.LessOrEqual(t, out.Rounds, w.Size()-1)
	assert.False(t, w.HasPending())
}

// TestConverge_ScenarioB re-weights B-D from 9 to 80 and reconverges. A→D
// stays 8 (still optimal via the direct edge). B→D leaves 9 and settles on
// the cheapest remaining path, B-A-D = 2+8 = 10 via A (beating B-C-D = 11).
func TestConverge_ScenarioB(t *testing.T) {
	first, err := relax.Converge(fourNode(t))
	require.NoError(t, err)

	w := reweight(t, first.World, "B", "D", 80)
	out, err := relax.Converge(w)
	require.NoError(t, err)
	final := out.World

	// Unaffected route keeps its cost.
	assert.True(t, entryCost(final, 0, 3).Equal(cost.Value(8)), "A→D")
	assert.True(t, final.Vector(0)[3].IsDirect())

	// B→D recomputes away from the 80-weight edge.
	bd := final.Vector(1)[3]
	assert.True(t, bd.Cost().Equal(cost.Value(10)), "B→D = %v; want 10", bd)
	if via, ok := bd.ViaNeighbor(); assert.True(t, ok) {
		assert.Equal(t, 0, via, "B→D should route via A")
	}

	// The symmetric entry agrees.
	assert.True(t, entryCost(final, 3, 1).Equal(cost.Value(10)), "D→B")
}

func TestConverge_Idempotent(t *testing.T) {
	out, err := relax.Converge(fourNode(t))
	require.NoError(t, err)

	again, err := relax.Converge(out.World)
	require.NoError(t, err)
	assert.Zero(t, again.Rounds, "stable world must converge in zero rounds")
	assert.Same(t, out.World, again.World)
	assert.Equal(t, out.World.Generation(), again.World.Generation())
}

func TestConverge_GenerationAccounting(t *testing.T) {
	w := fourNode(t)
	require.Equal(t, 0, w.Generation(), "mutation must not advance the counter")

	out, err := relax.Converge(w, relax.WithHistory[int]())
	require.NoError(t, err)

	// Every round bumps the counter by one, the confirming round included.
	assert.Equal(t, out.Rounds, out.World.Generation())
	for i, res := range out.History {
		assert.Equal(t, i+1, res.Round)
	}
	// The last recorded round is the no-change confirmation.
	last := out.History[len(out.History)-1]
	assert.Empty(t, last.Changed)
	assert.Nil(t, last.Next)
}

func TestConverge_CostsNonIncreasing(t *testing.T) {
	// From a fresh mutation batch, every entry's cost is monotonically
	// non-increasing across successive rounds.
	w := fourNode(t)
	out, err := relax.Converge(w, relax.WithHistory[int]())
	require.NoError(t, err)

	prev := w
	for _, res := range out.History {
		if res.Next == nil {
			continue
		}
		for i := 0; i < prev.Size(); i++ {
			for d := 0; d < prev.Size(); d++ {
				before := prev.Vector(i)[d].Cost()
				after := res.Next.Vector(i)[d].Cost()
				assert.False(t, before.Less(after),
					"round %d: %s→%s rose from %v to %v",
					res.Round, prev.NameOf(i), prev.NameOf(d), before, after)
			}
		}
		prev = res.Next
	}
}

func TestConverge_Observer(t *testing.T) {
	var rounds []int
	out, err := relax.Converge(fourNode(t), relax.WithObserver(func(res *relax.Result[int]) {
		rounds = append(rounds, res.Round)
	}))
	require.NoError(t, err)
	assert.Len(t, rounds, out.Rounds)
}

func TestConverge_RoundLimit(t *testing.T) {
	// Scenario A needs two rounds; a cap of one must fail without
	// corrupting anything.
	_, err := relax.Converge(fourNode(t), relax.WithMaxRounds[int](1))
	assert.ErrorIs(t, err, relax.ErrNoConvergence)
}

func TestConverge_EmptyWorld(t *testing.T) {
	w, err := world.New[int](nil)
	require.NoError(t, err)
	out, err := relax.Converge(w)
	require.NoError(t, err)
	assert.Zero(t, out.Rounds)
}

func TestConverge_WeightIncreaseChain(t *testing.T) {
	// Bad news travels slowly: a weight increase on a chain reconverges
	// correctly, even though it can take more than V−1 rounds.
	chain := build(t,
		[]string{"A", "B", "C", "D"},
		[][3]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		[]int{1, 1, 1},
	)
	first, err := relax.Converge(chain)
	require.NoError(t, err)

	w := reweight(t, first.World, "A", "B", 5)
	out, err := relax.Converge(w)
	require.NoError(t, err)
	final := out.World

	wants := map[[2]int]int{
		{0, 1}: 5, {0, 2}: 6, {0, 3}: 7,
		{1, 0}: 5, {2, 0}: 6, {3, 0}: 7,
	}
	for k, want := range wants {
		assert.True(t, entryCost(final, k[0], k[1]).Equal(cost.Value(want)),
			"%s→%s = %v; want %d", final.NameOf(k[0]), final.NameOf(k[1]), entryCost(final, k[0], k[1]), want)
	}
}

func TestConverge_FloatWeights(t *testing.T) {
	w, err := world.New[float64]([]string{"A", "B", "C"})
	require.NoError(t, err)

	var ops []world.Operation[float64]
	for _, e := range []struct {
		a, b string
		w    float64
	}{
		{"A", "B", 0.5},
		{"B", "C", 0.25},
		{"A", "C", 1.0},
	} {
		op, err := w.ResolveEdge(e.a, e.b, e.w)
		require.NoError(t, err)
		ops = append(ops, op)
	}
	applied, err := w.Apply(ops)
	require.NoError(t, err)

	out, err := relax.Converge(applied)
	require.NoError(t, err)
	ac, ok := out.World.Vector(0)[2].Cost().Finite()
	require.True(t, ok)
	assert.InDelta(t, 0.75, ac, 1e-12, "A→C via B")
}
