package relax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/relax"
	"github.com/katalvlaran/distvec/trace"
	"github.com/katalvlaran/distvec/world"
)

// build constructs a world from names and (nameA, nameB, weight) triples,
// applied as a single mutation batch.
func build(t *testing.T, names []string, edges [][3]string, weights []int) *world.World[int] {
	t.Helper()
	w, err := world.New[int](names)
	require.NoError(t, err)

	ops := make([]world.Operation[int], len(edges))
	for i, e := range edges {
		op, err := w.ResolveEdge(e[0], e[1], weights[i])
		require.NoError(t, err)
		ops[i] = op
	}
	next, err := w.Apply(ops)
	require.NoError(t, err)
	return next
}

func reweight(t *testing.T, w *world.World[int], a, b string, weight int) *world.World[int] {
	t.Helper()
	op, err := w.ResolveEdge(a, b, weight)
	require.NoError(t, err)
	next, err := w.Apply([]world.Operation[int]{op})
	require.NoError(t, err)
	return next
}

// fourNode is Scenario A's topology: A-B=2, B-C=7, C-D=4, A-D=8, B-D=9.
func fourNode(t *testing.T) *world.World[int] {
	t.Helper()
	return build(t,
		[]string{"A", "B", "C", "D"},
		[][3]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"A", "D"}, {"B", "D"}},
		[]int{2, 7, 4, 8, 9},
	)
}

func entryCost(w *world.World[int], from, to int) cost.Cost[int] {
	return w.Vector(from)[to].Cost()
}

func TestRound_NilWorld(t *testing.T) {
	_, err := relax.Round[int](nil)
	assert.ErrorIs(t, err, relax.ErrWorldNil)
}

func TestRound_SelfEntriesNeverRelax(t *testing.T) {
	w := fourNode(t)
	res, err := relax.Round(w)
	require.NoError(t, err)
	require.NotNil(t, res.Next)

	for i := 0; i < res.Next.Size(); i++ {
		assert.True(t, res.Next.Vector(i)[i].IsSelf(), "node %d lost Self", i)
	}
	for _, tr := range res.Traces {
		assert.NotEqual(t, tr.Source, tr.Dest, "traced a self destination")
	}
}

func TestRound_ReadsFrozenInboxOnly(t *testing.T) {
	// Chain A-B-C-D, all weight 1, applied in one batch. Seeding gives each
	// node its direct neighbors only. If a round leaked another node's
	// same-round update, A would learn D (cost 3) in round one already —
	// B only discovers D=2 during that very round.
	w := build(t,
		[]string{"A", "B", "C", "D"},
		[][3]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		[]int{1, 1, 1},
	)

	res1, err := relax.Round(w)
	require.NoError(t, err)
	require.NotNil(t, res1.Next)
	assert.True(t, res1.Next.Vector(0)[3].IsUnreachable(),
		"A learned D in round one: inbox not frozen")
	assert.True(t, entryCost(res1.Next, 1, 3).Equal(cost.Value(2)), "B should learn D=2")

	res2, err := relax.Round(res1.Next)
	require.NoError(t, err)
	require.NotNil(t, res2.Next)
	assert.True(t, entryCost(res2.Next, 0, 3).Equal(cost.Value(3)), "A learns D=3 in round two")
}

func TestRound_TieBreakFirstEnumerated(t *testing.T) {
	// Diamond A-B-D / A-C-D, all weight 1. A's candidates for D cost 2 via
	// B (neighbor index 1) and 2 via C (neighbor index 2). Equal cost —
	// the first enumerated wins, so the entry routes via B.
	w := build(t,
		[]string{"A", "B", "C", "D"},
		[][3]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
		[]int{1, 1, 1, 1},
	)
	out, err := relax.Converge(w)
	require.NoError(t, err)

	entry := out.World.Vector(0)[3]
	assert.True(t, entry.Cost().Equal(cost.Value(2)))
	via, ok := entry.ViaNeighbor()
	require.True(t, ok, "tie must go to the earlier-enumerated via-B candidate, got %v", entry)
	assert.Equal(t, 1, via)
}

func TestRound_ChangeDetectionIsCostOnly(t *testing.T) {
	// Stable world, then re-apply an identical weight: vectors keep their
	// costs, so the round must report no change even though every pending
	// node is fully re-relaxed.
	out, err := relax.Converge(fourNode(t))
	require.NoError(t, err)

	w := reweight(t, out.World, "A", "B", 2)
	assert.False(t, w.HasPending(), "identical re-weight should seed nothing")

	res, err := relax.Round(w)
	require.NoError(t, err)
	assert.Empty(t, res.Changed)
	assert.Nil(t, res.Next)
}

func TestRound_TraceCompleteness(t *testing.T) {
	w := fourNode(t)
	res, err := relax.Round(w)
	require.NoError(t, err)

	// Every pending node produced one trace per non-self destination.
	perSource := map[int]int{}
	for _, tr := range res.Traces {
		perSource[tr.Source]++

		// Exactly one candidate per neighbor of the source.
		require.Len(t, tr.Candidates, len(w.Links(tr.Source)))
		for i, l := range w.Links(tr.Source) {
			c := tr.Candidates[i]
			assert.Equal(t, l.To, c.Via, "candidate %d of %d→%d", i, tr.Source, tr.Dest)
			if l.To == tr.Dest {
				assert.True(t, c.Direct)
				assert.Len(t, c.Terms, 1)
			} else {
				assert.False(t, c.Direct)
				assert.Len(t, c.Terms, 2)
				assert.Equal(t, trace.TermDirect, c.Terms[0].Kind)
				assert.Equal(t, trace.TermAdvertised, c.Terms[1].Kind)
			}
		}

		// The winner's summed cost equals the new entry's cost.
		if best, ok := tr.Best(); ok {
			assert.True(t, tr.Result.Cost().Equal(best.Sum),
				"%d→%d: winner %v vs entry %v", tr.Source, tr.Dest, best.Sum, tr.Result)
		} else {
			assert.True(t, tr.Result.IsUnreachable())
		}
	}
	for node, count := range perSource {
		assert.Equal(t, w.Size()-1, count, "trace count for node %d", node)
	}
}

func TestRound_NonPendingNodesPassThrough(t *testing.T) {
	// Chain A-B-C-D: converge, then re-weight A-B. D neighbors neither
	// endpoint, so it is not pending and must keep its vector untouched,
	// and no trace may name it as a source.
	chain := build(t,
		[]string{"A", "B", "C", "D"},
		[][3]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		[]int{1, 1, 1},
	)
	out, err := relax.Converge(chain)
	require.NoError(t, err)

	w := reweight(t, out.World, "A", "B", 5)
	require.False(t, w.Pending(3), "D must not be pending")

	before := append([]cost.DVValue[int](nil), w.Vector(3)...)
	res, err := relax.Round(w)
	require.NoError(t, err)
	require.NotNil(t, res.Next)

	assert.Equal(t, before, res.Next.Vector(3), "non-pending D's vector moved")
	for _, tr := range res.Traces {
		assert.NotEqual(t, 3, tr.Source, "non-pending D was relaxed")
	}
}
