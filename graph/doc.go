// Package graph is a minimal, immutable, 0-indexed undirected graph
// container purpose-built for the partition-pointer and merge/difference
// search states in maxclique and cliquecover.
//
// Graph stores a sorted adjacency row per vertex so that adjacency tests are
// a binary search and neighbour iteration is a plain slice walk — both
// properties the search states rely on for their cursor arithmetic and
// sort-and-imply preprocessing. This is a different storage shape from the
// teacher's core.Graph (string-keyed, map-of-maps, built for concurrent
// mutation); see DESIGN.md for the rationale.
//
// Graph itself is read-only after construction: there is no AddEdge. This
// matches how both reference problems use it — built once from a DIMACS file
// or a random-graph generator, then searched.
package graph
