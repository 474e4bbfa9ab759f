// Package maxclique - unified dispatcher for the maximum-clique search.
package maxclique

import (
	"io"

	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/search"
)

// Solve finds a maximum clique in g using DefaultOptions.
func Solve(g *graph.Graph) (Result, error) {
	return SolveWithOptions(g, DefaultOptions())
}

// SolveWithOptions finds a maximum clique in g, dispatching to the
// recursive or iterative driver per opts.Algo.
//
// Contracts: g must be non-nil. An empty graph (order 0) yields the empty
// clique with objective 0.
//
// Complexity: exponential worst case, pruned by the N dual bound and the
// sort-and-imply preprocessing (see doc.go).
func SolveWithOptions(g *graph.Graph, opts Options) (Result, error) {
	return solveWithOutput(g, opts, io.Discard)
}

// SolveWithOutput behaves like SolveWithOptions but directs the Backtrack
// driver's progress and summary lines to out instead of discarding them.
func SolveWithOutput(g *graph.Graph, opts Options, out io.Writer) (Result, error) {
	return solveWithOutput(g, opts, out)
}

func solveWithOutput(g *graph.Graph, opts Options, out io.Writer) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if g.Order() == 0 {
		return Result{Clique: nil}, nil
	}

	var root *state
	if opts.InitialOrder != nil {
		if !validateInitialOrder(opts.InitialOrder, g.Order()) {
			return Result{}, ErrInvalidInitialOrder
		}
		root = newStateWithOrder(g, opts.InitialOrder)
	} else {
		root = newState(g)
	}

	switch opts.Algo {
	case Recursion:
		sol, ok := search.SolveRecursiveDefault(root)
		if !ok {
			// A single vertex is always a feasible leaf clique of size 1,
			// so the root can never fail to improve the initial primal
			// once order > 0; this branch is unreachable in practice.
			return Result{}, nil
		}

		return sol.(Result), nil

	case Backtrack:
		solver := search.NewStaticSolver(root)
		solver.SetOutput(out)
		solver.Solve(opts.LogFrequency)
		solutions := solver.Solutions()
		if len(solutions) == 0 {
			return Result{}, nil
		}

		return solutions[len(solutions)-1].(Result), nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}
