// Package arboretum is an exact branch-and-bound / backtracking engine for
// NP-hard combinatorial optimisation problems on discrete state spaces.
//
// The engine is split into small, composable packages:
//
//	sense/        — Maximize/Minimize bound algebra shared by both drivers
//	search/        — the State contracts and the two tree-search drivers
//	graph/         — sorted-adjacency undirected graph + DIMACS reader
//	maxclique/     — maximum clique via partition-pointer branching
//	cliquecover/   — vertex colouring expressed as a clique-cover search
//	randgraph/     — deterministic Erdős–Rényi-style graph generator
//
// A problem plugs into the engine by implementing search.State for its node
// representation: feasibility, a leaf test, a dual bound, and a reversible
// branch/backtrack pair. The driver — either search.SolveRecursive or an
// search.IterativeSolver — owns the traversal, the primal bound, and the
// incumbent pool; it never inspects problem internals beyond that contract.
// Whether a problem's two branch outcomes share a Result type (dynamic
// branching) or use structurally distinct types (static branching) is an
// iterative-driver stack-frame detail (search.NewDynamicSolver vs.
// search.NewStaticSolver); the State contract itself is the same either way.
//
// Two reference problems exercise the engine end to end: maxclique.Solve
// finds a maximum clique in an undirected graph, and cliquecover.Solve
// computes a vertex colouring by growing a clique of colour-class
// representatives and merging the remaining vertices into them wherever
// adjacency allows (merge/difference branching). Both are usable as
// libraries or via the cmd/arb-clique and cmd/arb-colour command-line
// front-ends.
//
// The engine is single-threaded and strictly sequential: no goroutines, no
// channels, no shared mutable state. A long search terminates only by
// completing or by an external process signal.
package arboretum
