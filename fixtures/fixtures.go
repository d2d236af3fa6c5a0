package fixtures

import "github.com/katalvlaran/p2adm/core"

// Star returns K_{1,leaves}: a hub at vertex 0, leaves numbered 1..leaves.
func Star(leaves int) *core.Graph {
	g := core.NewGraph()
	const hub = core.VertexID(0)
	g.AddVertex(hub)
	for i := 1; i <= leaves; i++ {
		_ = g.AddEdge(hub, core.VertexID(i))
	}
	return g
}

// Path returns P_n over vertices 0..n-1 in increasing order.
func Path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexID(i))
	}
	for i := 1; i < n; i++ {
		_ = g.AddEdge(core.VertexID(i-1), core.VertexID(i))
	}
	return g
}

// Complete returns K_n over vertices 0..n-1, every pair {i,j}, i<j, joined
// exactly once.
func Complete(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexID(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(core.VertexID(i), core.VertexID(j))
		}
	}
	return g
}

// Cycle returns C_n over vertices 0..n-1, edges (i, i+1 mod n).
func Cycle(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexID(i))
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(core.VertexID(i), core.VertexID((i+1)%n))
	}
	return g
}

// StarWithRim is the literal 6-vertex graph from spec.md's first end-to-end
// scenario: a star {(1,2),(1,3),(1,4),(1,5)} plus a rim joining every leaf
// to a shared sixth vertex, {(2,6),(3,6),(4,6),(5,6)}. Admissible at p=4.
func StarWithRim() *core.Graph {
	g := core.NewGraph()
	edges := [][2]core.VertexID{
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 6}, {3, 6}, {4, 6}, {5, 6},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}

// NineVertexMixed is the literal graph named in spec.md's end-to-end
// scenarios: the smallest p for which it is admissible is 3.
func NineVertexMixed() *core.Graph {
	g := core.NewGraph()
	edges := [][2]core.VertexID{
		{1, 2}, {1, 9}, {2, 3}, {2, 9}, {3, 4}, {3, 7}, {3, 9},
		{4, 5}, {4, 6}, {5, 6}, {5, 8}, {6, 7}, {7, 8}, {8, 9},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}
	return g
}
