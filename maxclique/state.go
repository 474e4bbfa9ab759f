package maxclique

import (
	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/search"
	"github.com/arboretum-go/arboretum/sense"
)

// includeUndo and excludeUndo are the static-branching undo tokens for
// state: structurally distinct types let the iterative driver's static
// frame strategy use a nil check as the "alternate evaluated" discriminator
// (see search.NewStaticSolver).
type includeUndo struct{ oldC, oldN int }
type excludeUndo struct{ oldC, oldN int }

// state is the partition-pointer reversible state for maximum clique.
//
// V is partitioned by two cursors C ≤ N ≤ len(V):
//   - [0, C)   — the current clique; pairwise adjacent in g.
//   - [C, N)   — candidates, each adjacent to every vertex in [0, C).
//   - [N, len) — excluded at some ancestor node.
type state struct {
	g *graph.Graph
	V []int
	C int
	N int
}

// newState builds the root state in identity vertex order: every vertex of
// g is a candidate, then sort-and-imply runs once to collapse any
// root-level obligatory inclusions.
func newState(g *graph.Graph) *state {
	n := g.Order()
	v := make([]int, n)
	for i := range v {
		v[i] = i
	}

	return newStateWithOrder(g, v)
}

// newStateWithOrder builds the root state with the candidate array seeded
// in the given vertex order rather than identity order. order must already
// be a permutation of [0, g.Order()); the caller validates this (see
// validateInitialOrder) before calling.
func newStateWithOrder(g *graph.Graph, order []int) *state {
	v := make([]int, len(order))
	copy(v, order)

	s := &state{g: g, V: v, C: 0, N: len(v)}
	s.sortAndImply()

	return s
}

// validateInitialOrder reports whether order is a permutation of
// [0, n).
func validateInitialOrder(order []int, n int) bool {
	if len(order) != n {
		return false
	}

	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

func (s *state) Sense() sense.Sense { return sense.Maximize }
func (s *state) IsFeasible() bool   { return true }
func (s *state) IsLeaf() bool       { return s.C == s.N }
func (s *state) Bound() int         { return s.N }

func (s *state) Solution() search.Solution {
	clique := make([]int, s.C)
	copy(clique, s.V[:s.C])

	return Result{Clique: clique}
}

// Branch is the include branch: the candidate at C joins the clique. The
// remaining candidates are partitioned by adjacency to it, then
// sort-and-imply runs to collapse any newly-obligatory inclusions.
func (s *state) Branch() (search.Rule, search.Result) {
	v := s.V[s.C]
	oldC, oldN := s.C, s.N

	s.C++
	s.N = partitionByAdjacency(s.g, s.V, s.C, s.N, v)
	s.sortAndImply()

	return v, includeUndo{oldC: oldC, oldN: oldN}
}

// BranchAlternate is the exclude branch: the branch vertex moves to the
// excluded tail by swapping it with the last candidate, then
// sort-and-imply runs on the shrunk candidate region.
func (s *state) BranchAlternate(rule search.Rule) search.Result {
	oldC, oldN := s.C, s.N

	s.V[s.C], s.V[s.N-1] = s.V[s.N-1], s.V[s.C]
	s.N--
	s.sortAndImply()

	return excludeUndo{oldC: oldC, oldN: oldN}
}

func (s *state) Backtrack(rule search.Rule, result search.Result) {
	switch u := result.(type) {
	case includeUndo:
		s.C, s.N = u.oldC, u.oldN
	case excludeUndo:
		s.C, s.N = u.oldC, u.oldN
	}
}

// sortAndImply repeatedly moves the minimum-degree candidate to the front
// of [C, N) and, if it is adjacent to every other candidate, advances C to
// imply its inclusion (§4.4.1: the degree heuristic tightens pruning, and
// the implication collapses obligatory decisions out of the driver's view).
func (s *state) sortAndImply() {
	for s.C < s.N {
		minIdx := s.C
		minDeg := s.g.Degree(s.V[s.C])
		for i := s.C + 1; i < s.N; i++ {
			if d := s.g.Degree(s.V[i]); d < minDeg {
				minIdx, minDeg = i, d
			}
		}
		s.V[s.C], s.V[minIdx] = s.V[minIdx], s.V[s.C]

		v := s.V[s.C]
		universal := true
		for i := s.C + 1; i < s.N; i++ {
			if !s.g.Adjacent(v, s.V[i]) {
				universal = false
				break
			}
		}
		if !universal {
			return
		}
		s.C++
	}
}

// partitionByAdjacency reorders V[lo:hi] in place so that vertices adjacent
// to v come first, returning the boundary index (the new N).
func partitionByAdjacency(g *graph.Graph, v []int, lo, hi, branchVertex int) int {
	boundary := lo
	for i := lo; i < hi; i++ {
		if g.Adjacent(branchVertex, v[i]) {
			v[boundary], v[i] = v[i], v[boundary]
			boundary++
		}
	}

	return boundary
}
