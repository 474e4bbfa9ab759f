// Package cliquecover computes a vertex colouring by growing a clique of
// colour-class representatives and merging the remaining vertices into
// whichever representative they can safely share a colour with, falling
// back to a difference branch (a distinct colour) when they cannot.
//
// # What & Why
//
// Each vertex ends the search in one of three states: a clique vertex (its
// own colour class, state[u] == u), merged into a clique vertex's colour
// class (state[u] == w), or still undecided (⊥). The initial clique,
// found by maxclique, seeds both the colour classes and a valid lower
// bound on the chromatic number: a clique of size k forces at least k
// colours.
//
//   - Branch decision: the undecided vertex with the most clique-adjacent
//     neighbours (DSATUR-like saturation) is merged into the first clique
//     vertex it is not adjacent to.
//   - Merge branch: before mutating, a merge plan is computed — vertices
//     that would become adjacent to every clique vertex once the merge
//     happens are disambiguated by solving maximum clique *within* that
//     candidate set (maxclique.Solve over an induced subgraph), and the
//     winners are promoted to new clique vertices.
//   - Difference branch: the vertex must take a different colour than the
//     candidate representative; if doing so makes it adjacent to every
//     clique vertex, it is itself promoted.
//   - Promotion is transitively propagated (promoteAndPropagate): any
//     vertex that becomes adjacent to every clique vertex as a side effect
//     of another promotion is promoted in turn, preserving the invariant
//     that no undecided vertex is ever "clique complete" (see DESIGN.md's
//     note on the source's invariant-maintenance open question).
//
// # Algorithms & Complexity
//
//	Solve (recursion / backtrack) — exact DFS via the shared search engine
//	  Dual bound: clique_size (Minimize sense; lower bound on colours used).
//	  Each merge-plan disambiguation costs one maxclique.Solve call over an
//	  induced subgraph no larger than the current candidate set.
//
// # Determinism
//
// Branch selection iterates vertices in ascending index order for both the
// DSATUR choice and the representative search, so repeated runs over the
// same graph.Graph are identical.
package cliquecover
