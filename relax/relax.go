package relax

import (
	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/katalvlaran/distvec/cost"
	"github.com/katalvlaran/distvec/trace"
	"github.com/katalvlaran/distvec/world"
)

// Round executes one synchronous relaxation pass over every pending node of
// w and returns the new vectors (committed into Result.Next when anything
// changed), the changed-node set, and one explanation trace per relaxed
// entry. The input world is never modified.
func Round[W cost.Weight](w *world.World[W]) (*Result[W], error) {
	// 1) Validate input.
	if w == nil {
		return nil, ErrWorldNil
	}
	n := w.Size()

	// 2) Queue pending nodes keyed by their own index, so they drain in
	//    ascending order regardless of how the pending set was built.
	queue := yagh.New[int](n)
	for _, i := range w.PendingNodes() {
		queue.Put(i, i)
	}

	// 3) Start from a copy of every vector; non-pending nodes pass through.
	vectors := make([][]cost.DVValue[W], n)
	for i := 0; i < n; i++ {
		vectors[i] = append([]cost.DVValue[W](nil), w.Vector(i)...)
	}

	changed := sparsesets.New(n)
	res := &Result[W]{Round: w.Generation() + 1}

	// 4) Relax each pending node against the frozen inbox snapshot.
	for queue.Size() > 0 {
		node := queue.Pop().Elem
		newVec, traces := relaxNode(w, node)

		// Cost-only change detection: a via-neighbor switch at equal cost
		// does not count.
		for d := 0; d < n; d++ {
			if !newVec[d].EqualCost(vectors[node][d]) {
				changed.Insert(node)
				break
			}
		}
		vectors[node] = newVec
		res.Traces = append(res.Traces, traces...)
	}

	// 5) Commit. Insertion followed ascending drain order, so Content is
	//    already sorted.
	res.Changed = append([]int(nil), changed.Content()...)
	if len(res.Changed) > 0 {
		res.Next = w.Advance(vectors, res.Changed)
	}
	return res, nil
}

// relaxNode recomputes one node's full vector from the frozen neighbor
// advertisements and returns it with one trace per non-self destination.
func relaxNode[W cost.Weight](w *world.World[W], node int) ([]cost.DVValue[W], []trace.Relaxation[W]) {
	n := w.Size()
	links := w.Links(node)

	vec := make([]cost.DVValue[W], n)
	traces := make([]trace.Relaxation[W], 0, n-1)

	for dest := 0; dest < n; dest++ {
		// The self entry never relaxes.
		if dest == node {
			vec[dest] = cost.Self[W]()
			continue
		}

		// One candidate per neighbor, ascending index. The direct-edge
		// candidate sits in its neighbor's slot, not forced first.
		cands := make([]trace.Candidate[W], 0, len(links))
		for _, l := range links {
			if l.To == dest {
				cands = append(cands, trace.DirectCandidate(node, dest, l.Weight))
				continue
			}
			adv := w.Advertised(l.To)[dest].Cost()
			cands = append(cands, trace.IndirectCandidate(node, l.To, l.Weight, dest, adv))
		}

		winner := pickWinner(cands)
		entry := cost.Unreachable[W]()
		if winner >= 0 {
			entry = cands[winner].Entry()
		}
		vec[dest] = entry
		traces = append(traces, trace.Relaxation[W]{
			Source:     node,
			Dest:       dest,
			Candidates: cands,
			Winner:     winner,
			Result:     entry,
		})
	}
	return vec, traces
}

// pickWinner returns the index of the minimum-cost candidate, or -1 for an
// empty slate. Strict Less keeps the first enumerated on ties — the
// deterministic tie-break the whole engine promises.
func pickWinner[W cost.Weight](cands []trace.Candidate[W]) int {
	winner := -1
	for i, c := range cands {
		if winner < 0 || c.Sum.Less(cands[winner].Sum) {
			winner = i
		}
	}
	return winner
}
