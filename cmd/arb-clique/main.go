// Command arb-clique finds a maximum clique in a DIMACS-format graph.
package main

import (
	"fmt"
	"os"

	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/internal/cli"
	"github.com/arboretum-go/arboretum/maxclique"
)

func main() {
	root := cli.NewRootCommand("arb-clique", "find a maximum clique in a DIMACS graph", run)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(g *graph.Graph, mode cli.Mode, flags cli.Flags) error {
	opts := maxclique.DefaultOptions()
	if mode == cli.ModeBacktrack {
		opts.Algo = maxclique.Backtrack
		opts.LogFrequency = flags.LogFrequency
	}

	res, err := maxclique.SolveWithOutput(g, opts, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("clique size: %d\n", res.ObjectiveValue())
	fmt.Printf("vertices: %v\n", res.Clique)

	return nil
}
