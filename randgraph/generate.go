package randgraph

import (
	"github.com/arboretum-go/arboretum/graph"
)

// Generate builds an Erdős–Rényi-style undirected graph on opts.N
// vertices, including each unordered pair independently with probability
// opts.P.
//
// Contracts: opts.N ≥ 0 (else ErrTooFewVertices); 0 ≤ opts.P ≤ 1 (else
// ErrInvalidProbability).
//
// Complexity: O(n²) Bernoulli trials, stable trial order (i ascending,
// then j ascending) for determinism.
func Generate(opts Options) (*graph.Graph, error) {
	if opts.N < 0 {
		return nil, ErrTooFewVertices
	}
	if opts.P < 0 || opts.P > 1 {
		return nil, ErrInvalidProbability
	}

	rng := rngFromSeed(opts.Seed)

	var edges [][2]int
	for i := 0; i < opts.N; i++ {
		for j := i + 1; j < opts.N; j++ {
			if rng.Float64() <= opts.P {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return graph.New(opts.N, edges)
}
