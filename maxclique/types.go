package maxclique

import "errors"

// Validation errors.
var (
	// ErrNilGraph is returned when Solve is called with a nil graph.
	ErrNilGraph = errors.New("maxclique: nil graph")

	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an
	// unavailable driver.
	ErrUnsupportedAlgorithm = errors.New("maxclique: unsupported algorithm")

	// ErrInvalidInitialOrder is returned when Options.InitialOrder is set
	// but is not a permutation of the graph's vertex indices.
	ErrInvalidInitialOrder = errors.New("maxclique: initial order is not a permutation of the graph's vertices")
)

// Algorithm selects which search driver Solve dispatches to.
type Algorithm int

const (
	// Recursion drives the search via search.SolveRecursive (the Go call
	// stack holds the search tree).
	Recursion Algorithm = iota

	// Backtrack drives the search via search.IterativeSolver (an explicit
	// stack; no call-stack growth).
	Backtrack
)

// Options configures Solve. The zero value equals DefaultOptions();
// override fields as needed.
type Options struct {
	// Algo selects the search driver. Default: Recursion.
	Algo Algorithm

	// LogFrequency controls how often the Backtrack driver emits a
	// progress line, in nodes visited. Zero disables periodic lines.
	// Ignored when Algo is Recursion.
	LogFrequency int

	// InitialOrder, if non-nil, seeds the root state's candidate array in
	// this vertex order instead of identity order 0..n-1. It must be a
	// permutation of [0, g.Order()); a caller who already knows a good
	// branching order (e.g. by degeneracy or colouring heuristic) can feed
	// it here instead of relying solely on sort-and-imply to reorder the
	// root. Nil means identity order.
	InitialOrder []int
}

// DefaultOptions returns Options{Algo: Recursion, LogFrequency: 0}.
func DefaultOptions() Options {
	return Options{Algo: Recursion, LogFrequency: 0}
}

// Result is the maximum clique found: a set of pairwise-adjacent vertex
// indices.
type Result struct {
	// Clique holds the clique's vertex indices in no particular order.
	Clique []int
}

// ObjectiveValue implements search.Solution: the clique's cardinality.
func (r Result) ObjectiveValue() int { return len(r.Clique) }
