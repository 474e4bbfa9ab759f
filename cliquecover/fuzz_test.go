package cliquecover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboretum-go/arboretum/cliquecover"
	"github.com/arboretum-go/arboretum/randgraph"
)

// FuzzDriverEquivalence generates random graphs and checks that the
// recursive and iterative drivers agree on the number of colours used, and
// that the reported colouring is genuinely proper.
func FuzzDriverEquivalence(f *testing.F) {
	f.Add(uint8(6), uint8(30), int64(1))
	f.Add(uint8(9), uint8(55), int64(11))
	f.Add(uint8(0), uint8(0), int64(5))

	f.Fuzz(func(t *testing.T, n uint8, pPercent uint8, seed int64) {
		if n > 10 {
			n = n % 11 // bound search cost for the fuzz corpus
		}
		p := float64(pPercent%101) / 100.0

		g, err := randgraph.Generate(randgraph.Options{N: int(n), P: p, Seed: seed})
		require.NoError(t, err)

		rec, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Recursion})
		require.NoError(t, err)

		bt, err := cliquecover.SolveWithOptions(g, cliquecover.Options{Algo: cliquecover.Backtrack})
		require.NoError(t, err)

		require.Equal(t, rec.NumColours, bt.NumColours)
		requireProperColouring(t, g, rec)
		requireProperColouring(t, g, bt)
	})
}
