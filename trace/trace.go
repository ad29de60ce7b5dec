package trace

import "github.com/katalvlaran/distvec/cost"

// TermKind tells a renderer which symbolic form a term takes.
type TermKind uint8

const (
	// TermDirect is the cost of a direct edge: C(from,to).
	TermDirect TermKind = iota

	// TermAdvertised is a neighbor's advertised distance: d_from(to).
	TermAdvertised
)

// Term is one summand of a candidate: either the direct edge cost from
// From to To, or From's advertised distance to To, with its contributing
// cost.
type Term[W cost.Weight] struct {
	Kind TermKind
	From int
	To   int
	Cost cost.Cost[W]
}

// Candidate is one option considered while relaxing an entry: its ordered
// terms, their sum, the neighbor it routes through, and whether it is a
// lone direct-edge candidate.
type Candidate[W cost.Weight] struct {
	Terms  []Term[W]
	Sum    cost.Cost[W]
	Via    int
	Direct bool
}

// DirectCandidate builds the single-term candidate for a direct edge
// source→dest of the given weight.
func DirectCandidate[W cost.Weight](source, dest int, weight W) Candidate[W] {
	c := cost.Value(weight)
	return Candidate[W]{
		Terms: []Term[W]{
			{Kind: TermDirect, From: source, To: dest, Cost: c},
		},
		Sum:    c,
		Via:    dest,
		Direct: true,
	}
}

// IndirectCandidate builds the two-term candidate routing source→dest
// through neighbor via: the direct edge to the neighbor plus the distance
// the neighbor advertised for dest.
func IndirectCandidate[W cost.Weight](source, via int, edgeWeight W, dest int, advertised cost.Cost[W]) Candidate[W] {
	edge := cost.Value(edgeWeight)
	return Candidate[W]{
		Terms: []Term[W]{
			{Kind: TermDirect, From: source, To: via, Cost: edge},
			{Kind: TermAdvertised, From: via, To: dest, Cost: advertised},
		},
		Sum:    edge.Add(advertised),
		Via:    via,
		Direct: false,
	}
}

// Entry converts the candidate into the vector entry it stands for.
func (c Candidate[W]) Entry() cost.DVValue[W] {
	return cost.FromCost(c.Sum, c.Via, c.Direct)
}

// Relaxation is the full justification for one recomputed entry: the
// source node, the destination, every candidate in enumeration order, the
// index of the winner, and the entry the winner became.
type Relaxation[W cost.Weight] struct {
	Source     int
	Dest       int
	Candidates []Candidate[W]
	Winner     int
	Result     cost.DVValue[W]
}

// Best returns the winning candidate and false when there were no
// candidates at all (an isolated source keeps its entry Unreachable).
func (r Relaxation[W]) Best() (Candidate[W], bool) {
	if r.Winner < 0 || r.Winner >= len(r.Candidates) {
		return Candidate[W]{}, false
	}
	return r.Candidates[r.Winner], true
}
