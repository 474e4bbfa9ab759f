package cliquecover

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboretum-go/arboretum/graph"
)

func mustTestGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func TestStateInvariantsHoldThroughSearch(t *testing.T) {
	t.Parallel()

	// Two disjoint triangles plus one bridge vertex adjacent to one vertex
	// in each triangle, giving a non-trivial merge/difference tree.
	g := mustTestGraph(t, 7, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{3, 4}, {3, 5}, {4, 5},
		{6, 0}, {6, 3},
	})

	s := newState(g)
	require.NoError(t, s.AssertInvariants())

	var walk func(depth int)
	walk = func(depth int) {
		require.NoError(t, s.AssertInvariants())
		if depth > 6 || s.IsLeaf() {
			return
		}

		rule, r1 := s.Branch()
		require.NoError(t, s.AssertInvariants())
		walk(depth + 1)
		s.Backtrack(rule, r1)
		require.NoError(t, s.AssertInvariants())

		r2 := s.BranchAlternate(rule)
		require.NoError(t, s.AssertInvariants())
		walk(depth + 1)
		s.Backtrack(rule, r2)
		require.NoError(t, s.AssertInvariants())
	}

	snapshot := append([]int(nil), s.assignment...)
	walk(0)
	require.Equal(t, snapshot, s.assignment, "state must be restored to the root after the walk")
}

func TestStateBacktrackRoundTrip(t *testing.T) {
	t.Parallel()

	g := mustTestGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}})
	s := newState(g)

	if s.IsLeaf() {
		t.Skip("instance already a leaf at the root; nothing to branch on")
	}

	cliqueBefore := append([]int(nil), s.assignment...)
	neighboursBefore := cloneNeighbours(s.neighbours)
	cliqueSizeBefore, mergeCountBefore := s.cliqueSize, s.mergeCount

	rule, r1 := s.Branch()
	s.Backtrack(rule, r1)

	require.Equal(t, cliqueBefore, s.assignment)
	require.Equal(t, neighboursBefore, cloneNeighbours(s.neighbours))
	require.Equal(t, cliqueSizeBefore, s.cliqueSize)
	require.Equal(t, mergeCountBefore, s.mergeCount)

	r2 := s.BranchAlternate(rule)
	s.Backtrack(rule, r2)

	require.Equal(t, cliqueBefore, s.assignment)
	require.Equal(t, neighboursBefore, cloneNeighbours(s.neighbours))
	require.Equal(t, cliqueSizeBefore, s.cliqueSize)
	require.Equal(t, mergeCountBefore, s.mergeCount)
}

func cloneNeighbours(n [][]int) [][]int {
	out := make([][]int, len(n))
	for i, xs := range n {
		out[i] = append([]int(nil), xs...)
	}

	return out
}
