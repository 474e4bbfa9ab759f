// Package maxclique finds a maximum clique in an undirected graph via the
// engine's partition-pointer state, branching on vertex inclusion before
// exclusion and using a sort-and-imply preprocessing step to collapse
// obligatory decisions before they reach the driver.
//
// # What & Why
//
// Given a graph.Graph, maxclique computes a maximum-cardinality set of
// pairwise-adjacent vertices.
//
//   - State: an ordered vertex array split by two cursors C ≤ N into a
//     clique prefix, a candidate middle region, and an excluded tail.
//   - Dual bound: N, the size of the largest clique reachable from the
//     node (current clique plus every remaining candidate).
//   - Sort-and-imply: before each branch decision, the candidate with
//     smallest degree is moved to the front; if it is adjacent to every
//     other candidate, its inclusion is forced (no clique can exclude it
//     without strictly losing size), collapsing the decision without a
//     branch.
//
// # Algorithms & Complexity
//
//	Solve (recursion)  — exact DFS via search.SolveRecursive
//	  Time: exponential worst case; pruned by the N dual bound.
//	Solve (backtrack)  — exact DFS via search.IterativeSolver
//	  Same bound; explicit stack, no Go call-stack growth.
//
// # Determinism
//
// Branch order is fixed by vertex index and the sort-and-imply degree
// heuristic; two runs over the same graph.Graph visit nodes identically.
package maxclique
