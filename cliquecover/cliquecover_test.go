package cliquecover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboretum-go/arboretum/cliquecover"
	"github.com/arboretum-go/arboretum/graph"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func TestSolveWithOptions(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		n        int
		edges    [][2]int
		wantK    int
	}{
		"K4": {
			n:     4,
			edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
			wantK: 4,
		},
		"C5": {
			n:     5,
			edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
			wantK: 3,
		},
		"bipartite K3,3": {
			n:     6,
			edges: [][2]int{{0, 3}, {0, 4}, {0, 5}, {1, 3}, {1, 4}, {1, 5}, {2, 3}, {2, 4}, {2, 5}},
			wantK: 2,
		},
		"two disjoint K3": {
			n:     6,
			edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {3, 4}, {3, 5}, {4, 5}},
			wantK: 3,
		},
		"empty graph on 3 vertices": {
			n:     3,
			edges: nil,
			wantK: 1,
		},
		"n=0": {
			n:     0,
			edges: nil,
			wantK: 0,
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			g := mustGraph(t, tc.n, tc.edges)

			rec, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Recursion})
			require.NoError(t, err)
			require.Equal(t, tc.wantK, rec.NumColours)
			requireProperColouring(t, g, rec)

			bt, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Backtrack})
			require.NoError(t, err)
			require.Equal(t, tc.wantK, bt.NumColours, "recursive and iterative drivers must agree")
			requireProperColouring(t, g, bt)
		})
	}
}

// TestSolvePetersenLikeToyDriverAgreement checks only driver agreement,
// since this instance's exact chromatic number is not a fixed test vector.
func TestSolvePetersenLikeToyDriverAgreement(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 10, [][2]int{
		{0, 1}, {0, 5}, {0, 6}, {0, 9}, {0, 7},
		{1, 5}, {1, 9}, {1, 8}, {1, 7},
		{9, 5}, {2, 5}, {2, 8}, {5, 8},
	})

	rec, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Recursion})
	require.NoError(t, err)
	requireProperColouring(t, g, rec)

	bt, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Backtrack})
	require.NoError(t, err)
	require.Equal(t, rec.NumColours, bt.NumColours)
	requireProperColouring(t, g, bt)
}

func TestSolveCompleteGraphKn(t *testing.T) {
	t.Parallel()

	const n = 5
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := mustGraph(t, n, edges)

	res, err := cliquecover.Solve(g)
	require.NoError(t, err)
	require.Equal(t, n, res.NumColours)
}

func TestSolveNilGraph(t *testing.T) {
	t.Parallel()

	_, err := cliquecover.Solve(nil)
	require.ErrorIs(t, err, cliquecover.ErrNilGraph)
}

func TestSolveUnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	g := mustGraph(t, 3, nil)
	_, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Algorithm(99)})
	require.ErrorIs(t, err, cliquecover.ErrUnsupportedAlgorithm)
}

// requireProperColouring asserts that no edge joins two same-coloured
// vertices, and that every vertex was assigned.
func requireProperColouring(t *testing.T, g *graph.Graph, res cliquecover.Result) {
	t.Helper()
	require.Len(t, res.Colouring, g.Order())
	for u := 0; u < g.Order(); u++ {
		for _, v := range g.Neighbors(u) {
			if v <= u {
				continue
			}
			require.NotEqual(t, res.Colouring[u], res.Colouring[v],
				"vertices %d and %d are adjacent but share colour %d", u, v, res.Colouring[u])
		}
	}
}
