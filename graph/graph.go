package graph

import "sort"

// Graph is an immutable, 0-indexed, undirected simple graph: no self-loops,
// no parallel edges. Each vertex's adjacency row is sorted ascending.
//
// Complexity: Adjacent is O(log d) via binary search; Degree is O(1);
// Neighbors returns the stored row directly (callers must not mutate it).
type Graph struct {
	n   int
	adj [][]int
}

// New builds a Graph on n vertices (0..n-1) from an edge list. Each edge is
// an unordered pair {u, v}. Self-loops and duplicate edges are rejected.
//
// Complexity: O(n + m log m) time (sorting each adjacency row), O(n + m)
// space, where m = len(edges).
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	g := &Graph{n: n, adj: make([][]int, n)}
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrVertexOutOfRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		key := e
		if u > v {
			key = [2]int{v, u}
		}
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateEdge
		}
		seen[key] = struct{}{}

		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	for u := 0; u < n; u++ {
		sort.Ints(g.adj[u])
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int {
	m := 0
	for u := 0; u < g.n; u++ {
		m += len(g.adj[u])
	}

	return m / 2
}

// Degree returns the number of neighbours of u.
func (g *Graph) Degree(u int) int { return len(g.adj[u]) }

// Adjacent reports whether there is an edge between u and v.
//
// Complexity: O(log degree(u)).
func (g *Graph) Adjacent(u, v int) bool {
	row := g.adj[u]
	i := sort.SearchInts(row, v)

	return i < len(row) && row[i] == v
}

// Neighbors returns u's sorted adjacency row. The returned slice is owned by
// the Graph and must not be mutated by the caller.
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }
