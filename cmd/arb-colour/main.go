// Command arb-colour colours a DIMACS-format graph via clique-cover search.
package main

import (
	"fmt"
	"os"

	"github.com/arboretum-go/arboretum/cliquecover"
	"github.com/arboretum-go/arboretum/graph"
	"github.com/arboretum-go/arboretum/internal/cli"
)

func main() {
	root := cli.NewRootCommand("arb-colour", "colour a DIMACS graph via clique-cover search", run)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(g *graph.Graph, mode cli.Mode, flags cli.Flags) error {
	opts := cliquecover.DefaultOptions()
	if mode == cli.ModeBacktrack {
		opts.Algo = cliquecover.Backtrack
		opts.LogFrequency = flags.LogFrequency
	}

	res, err := cliquecover.SolveWithOutput(g, opts, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("colours used: %d\n", res.ObjectiveValue())
	fmt.Printf("colouring: %v\n", res.Colouring)

	return nil
}
