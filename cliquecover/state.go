package cliquecover

import (
	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/maxclique"
	"github.com/arboretum-go/arboretum/search"
	"github.com/arboretum-go/arboretum/sense"
)

// outside marks a vertex as not yet assigned to any colour class.
const outside = -1

// branchRule names the merge candidate pair (u, v) chosen by
// getBranchChoice: u is a clique vertex, v is undecided, and the edge
// (u, v) is absent from the graph.
type branchRule struct{ u, v int }

// mergeUndo reverses a merge branch: v's assignment, the gain-list
// appends, and any cascading promotions, all in LIFO order.
type mergeUndo struct {
	v         int
	gainList  []int
	promoted  []int
	touches   []int
}

// differenceUndo reverses a difference branch: either a single
// neighbours append, or a cascading promotion of v itself.
type differenceUndo struct {
	direct   bool
	v        int
	promoted []int
	touches  []int
}

// state is the merge/difference reversible state for vertex colouring via
// clique cover. See doc.go.
type state struct {
	g          *graph.Graph
	n          int
	assignment []int   // assignment[u]: u (clique vertex), w (merged into w), or outside
	neighbours [][]int // neighbours[u]: clique vertices adjacent to u, maintained while assignment[u] == outside
	cliqueSize int
	mergeCount int
}

// newState seeds the clique from a maximum-clique solve over g: its
// vertices become the initial colour-class representatives, a valid lower
// bound on the chromatic number.
func newState(g *graph.Graph) *state {
	n := g.Order()
	s := &state{
		g:          g,
		n:          n,
		assignment: make([]int, n),
		neighbours: make([][]int, n),
	}
	for i := range s.assignment {
		s.assignment[i] = outside
	}
	if n == 0 {
		return s
	}

	seed, _ := maxclique.Solve(g)
	for _, u := range seed.Clique {
		s.assignment[u] = u
	}
	s.cliqueSize = len(seed.Clique)

	for x := 0; x < n; x++ {
		if s.assignment[x] != outside {
			continue
		}
		for _, c := range g.Neighbors(x) {
			if s.assignment[c] == c {
				s.neighbours[x] = append(s.neighbours[x], c)
			}
		}
	}

	return s
}

func (s *state) Sense() sense.Sense { return sense.Minimize }
func (s *state) IsFeasible() bool   { return true }
func (s *state) IsLeaf() bool       { return s.cliqueSize+s.mergeCount == s.n }
func (s *state) Bound() int         { return s.cliqueSize }

func (s *state) Solution() search.Solution {
	colouring := make([]int, s.n)
	copy(colouring, s.assignment)

	return Result{NumColours: s.cliqueSize, Colouring: colouring}
}

// getBranchChoice picks the undecided vertex v with the most clique
// neighbours (DSATUR-like saturation; ties favour the lowest index), and
// the lowest-indexed clique vertex u that v is not already adjacent to.
func (s *state) getBranchChoice() (u, v int) {
	v = -1
	best := -1
	for x := 0; x < s.n; x++ {
		if s.assignment[x] != outside {
			continue
		}
		if len(s.neighbours[x]) > best {
			best, v = len(s.neighbours[x]), x
		}
	}

	u = -1
	for c := 0; c < s.n; c++ {
		if s.assignment[c] != c {
			continue
		}
		if !containsInt(s.neighbours[v], c) {
			u = c
			break
		}
	}

	return u, v
}

// Branch is the merge branch: v is assigned u's colour, after
// disambiguating any candidates that would otherwise become adjacent to
// every clique vertex.
func (s *state) Branch() (search.Rule, search.Result) {
	u, v := s.getBranchChoice()
	rule := branchRule{u: u, v: v}

	return rule, s.executeMerge(u, v)
}

// BranchAlternate is the difference branch: v must take a colour distinct
// from u's.
func (s *state) BranchAlternate(rule search.Rule) search.Result {
	r := rule.(branchRule)

	return s.executeDifference(r.u, r.v)
}

func (s *state) Backtrack(rule search.Rule, result search.Result) {
	switch r := result.(type) {
	case mergeUndo:
		s.undoMerge(r)
	case differenceUndo:
		s.undoDifference(r)
	}
}

// executeMerge assigns v to u's colour class, then resolves the merge
// plan's side effects (see doc.go and computeMergePlan).
func (s *state) executeMerge(u, v int) search.Result {
	gainList, seeds := s.computeMergePlan(u, v)

	s.assignment[v] = u
	s.mergeCount++
	for _, w := range gainList {
		s.neighbours[w] = append(s.neighbours[w], u)
	}

	promoted, touches := s.promoteAndPropagate(seeds)

	return mergeUndo{v: v, gainList: gainList, promoted: promoted, touches: touches}
}

func (s *state) undoMerge(m mergeUndo) {
	s.undoPromotions(m.promoted, m.touches)
	for i := len(m.gainList) - 1; i >= 0; i-- {
		w := m.gainList[i]
		s.neighbours[w] = s.neighbours[w][:len(s.neighbours[w])-1]
	}
	s.mergeCount--
	s.assignment[m.v] = outside
}

// computeMergePlan partitions v's graph-neighbours that are not already
// adjacent to u into two groups: vertices that would become adjacent to
// every clique vertex once u joins their neighbour list (clique
// candidates, disambiguated by a maximum-clique sub-solve) and vertices
// that simply gain u as a neighbour.
func (s *state) computeMergePlan(u, v int) (gainList, seeds []int) {
	var candidateSet []int
	for _, w := range s.g.Neighbors(v) {
		if s.assignment[w] != outside {
			continue
		}
		if containsInt(s.neighbours[w], u) {
			continue
		}
		if len(s.neighbours[w]) == s.cliqueSize-1 {
			candidateSet = append(candidateSet, w)
		} else {
			gainList = append(gainList, w)
		}
	}
	if len(candidateSet) == 0 {
		return gainList, nil
	}

	winners := maxCliqueWithin(s.g, candidateSet)
	winnerSet := make(map[int]bool, len(winners))
	for _, w := range winners {
		winnerSet[w] = true
	}
	for _, w := range candidateSet {
		if !winnerSet[w] {
			gainList = append(gainList, w)
		}
	}

	return gainList, winners
}

// executeDifference asserts that v takes a colour other than u's: if that
// makes v adjacent to every clique vertex, v is promoted; otherwise v
// simply gains u as a neighbour.
func (s *state) executeDifference(u, v int) search.Result {
	if len(s.neighbours[v]) == s.cliqueSize-1 {
		promoted, touches := s.promoteAndPropagate([]int{v})

		return differenceUndo{promoted: promoted, touches: touches}
	}

	s.neighbours[v] = append(s.neighbours[v], u)

	return differenceUndo{direct: true, v: v}
}

func (s *state) undoDifference(d differenceUndo) {
	if d.direct {
		s.neighbours[d.v] = s.neighbours[d.v][:len(s.neighbours[d.v])-1]
		return
	}
	s.undoPromotions(d.promoted, d.touches)
}

// promoteAndPropagate promotes every vertex in seeds to a clique vertex,
// then walks each promoted vertex's graph-neighbours: any undecided
// neighbour gains the promoted vertex in its neighbours list, and if that
// makes the neighbour adjacent to every clique vertex, it is queued for
// promotion in turn. Returns the promoted vertices and the touched
// neighbours-list vertices, both in chronological order, sufficient for
// undoPromotions to reverse exactly.
func (s *state) promoteAndPropagate(seeds []int) (promoted, touches []int) {
	queue := append([]int(nil), seeds...)
	for i := 0; i < len(queue); i++ {
		w := queue[i]
		if s.assignment[w] == w {
			continue
		}
		s.assignment[w] = w
		s.cliqueSize++
		promoted = append(promoted, w)

		for _, x := range s.g.Neighbors(w) {
			if s.assignment[x] != outside {
				continue
			}
			s.neighbours[x] = append(s.neighbours[x], w)
			touches = append(touches, x)
			if len(s.neighbours[x]) == s.cliqueSize {
				queue = append(queue, x)
			}
		}
	}

	return promoted, touches
}

func (s *state) undoPromotions(promoted, touches []int) {
	for i := len(touches) - 1; i >= 0; i-- {
		x := touches[i]
		s.neighbours[x] = s.neighbours[x][:len(s.neighbours[x])-1]
	}
	for i := len(promoted) - 1; i >= 0; i-- {
		w := promoted[i]
		s.cliqueSize--
		s.assignment[w] = outside
	}
}

// maxCliqueWithin solves maximum clique over the induced subgraph on
// vertices, returning the winners mapped back to original vertex ids.
func maxCliqueWithin(g *graph.Graph, vertices []int) []int {
	if len(vertices) == 0 {
		return nil
	}

	var edges [][2]int
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if g.Adjacent(vertices[i], vertices[j]) {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	sub, err := graph.New(len(vertices), edges)
	if err != nil {
		// vertices are distinct indices drawn from g; the induced edge
		// list can never be malformed.
		return nil
	}

	res, err := maxclique.Solve(sub)
	if err != nil {
		return nil
	}

	winners := make([]int, len(res.Clique))
	for i, idx := range res.Clique {
		winners[i] = vertices[idx]
	}

	return winners
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

// AssertInvariants checks the clique-cover structural invariants: a
// merge target is always a clique vertex, an undecided vertex is never
// adjacent to every clique vertex (it would already have been promoted),
// and cliqueSize matches the number of clique-marked vertices. It is not
// called on the solve hot path; use it from tests as a property check.
func (s *state) AssertInvariants() error {
	count := 0
	for u := 0; u < s.n; u++ {
		switch {
		case s.assignment[u] == u:
			count++
		case s.assignment[u] == outside:
			if len(s.neighbours[u]) >= s.cliqueSize {
				return errInvariant("vertex is clique-complete but was not promoted")
			}
		default:
			w := s.assignment[u]
			if s.assignment[w] != w {
				return errInvariant("merge target is not a clique vertex")
			}
		}
	}
	if count != s.cliqueSize {
		return errInvariant("clique_size does not match the number of clique-marked vertices")
	}

	return nil
}

func errInvariant(msg string) error { return invariantError(msg) }

type invariantError string

func (e invariantError) Error() string { return "cliquecover: " + string(e) }
