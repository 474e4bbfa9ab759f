// Package cliquecover - unified dispatcher for the clique-cover colouring
// search.
package cliquecover

import (
	"io"

	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/search"
)

// Solve colours g using DefaultOptions.
func Solve(g *graph.Graph) (Result, error) {
	return SolveWithOptions(g, DefaultOptions())
}

// SolveWithOptions colours g with the minimum number of colours found by
// exhaustive search, dispatching to the recursive or iterative driver per
// opts.Algo.
//
// Contracts: g must be non-nil. An empty graph (order 0) yields the empty
// colouring with NumColours 0.
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
		return Result{NumColours: 0}, nil
	}

	root := newState(g)

	switch opts.Algo {
	case Recursion:
		sol, ok := search.SolveRecursiveDefault(root)
		if !ok {
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
