package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arboretum-go/arboretum/graph"
)

const k4DIMACS = `c a comment line
p edges 4 6
e 1 2
e 1 3
e 1 4
e 2 3
e 2 4
e 3 4
`

func TestReadDIMACS(t *testing.T) {
	t.Parallel()

	g, err := graph.ReadDIMACS(strings.NewReader(k4DIMACS))
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.True(t, g.Adjacent(0, 3))
	require.Equal(t, 3, g.Degree(0))
}

func TestReadDIMACSMissingHeader(t *testing.T) {
	t.Parallel()

	_, err := graph.ReadDIMACS(strings.NewReader("e 1 2\n"))
	require.ErrorIs(t, err, graph.ErrDIMACSHeaderMissing)
}

func TestReadDIMACSDuplicateHeader(t *testing.T) {
	t.Parallel()

	_, err := graph.ReadDIMACS(strings.NewReader("p edges 2 1\np edges 2 1\ne 1 2\n"))
	require.ErrorIs(t, err, graph.ErrDIMACSHeaderDuplicate)
}

func TestReadDIMACSEdgeCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := graph.ReadDIMACS(strings.NewReader("p edges 3 2\ne 1 2\n"))
	require.ErrorIs(t, err, graph.ErrDIMACSEdgeCountMismatch)
}

func TestReadDIMACSMalformedHeader(t *testing.T) {
	t.Parallel()

	_, err := graph.ReadDIMACS(strings.NewReader("p nodes 3 2\n"))
	require.ErrorIs(t, err, graph.ErrDIMACSMalformedLine)
}
