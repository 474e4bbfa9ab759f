package cliquecover

import "errors"

// Validation errors.
var (
	// ErrNilGraph is returned when Solve is called with a nil graph.
	ErrNilGraph = errors.New("cliquecover: nil graph")

	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an
	// unavailable driver.
	ErrUnsupportedAlgorithm = errors.New("cliquecover: unsupported algorithm")
)

// Algorithm selects which search driver Solve dispatches to.
type Algorithm int

const (
	// Recursion drives the search via search.SolveRecursive.
	Recursion Algorithm = iota

	// Backtrack drives the search via search.IterativeSolver.
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
}

// DefaultOptions returns Options{Algo: Recursion, LogFrequency: 0}.
func DefaultOptions() Options {
	return Options{Algo: Recursion, LogFrequency: 0}
}

// Result is a vertex colouring: each vertex is assigned the id of its
// colour-class representative (a vertex u with Colouring[u] == u).
type Result struct {
	// NumColours is the number of distinct colour classes used.
	NumColours int

	// Colouring maps each vertex to its colour-class representative id.
	Colouring []int
}

// ObjectiveValue implements search.Solution: the number of colours used.
func (r Result) ObjectiveValue() int { return r.NumColours }
