// Package core defines Graph, a thread-safe in-memory undirected simple
// graph over opaque integer vertex identifiers, and nothing else.
//
// Graph is deliberately narrower than a general-purpose graph type. The
// admissibility decider (package engine) is defined only for simple
// undirected graphs, so Graph carries no notion of edge weight, direction,
// multi-edges, or loops — those axes would be dead configuration space
// here. There is no GraphOption set because there is nothing to configure:
// every Graph is undirected, unweighted, loop-free and simple-edge, always.
//
// Concurrency:
//
//   - A single sync.RWMutex (muAdj) guards both the vertex set and the
//     adjacency map together, since AddVertex and AddEdge always touch
//     both at once — one lock keeps "every vertex has exactly one
//     adjacency bucket" atomic without a two-lock ordering discipline to
//     get wrong.
//   - AddVertex/AddEdge are safe to call concurrently, typically from a
//     single loader goroutine (see driver.LoadGraph).
//   - Once built, read-only methods (Adjacent, Neighbours, Degree,
//     Vertices, NumVertices, HasVertex) are safe to call concurrently from
//     many goroutines sharing one *Graph — package driver relies on this
//     when it builds and decides one subgraph per connected component in
//     parallel.
//
// Core Methods:
//
//	NewGraph() *Graph                        // O(1)
//	AddVertex(v VertexID)                    // O(1), idempotent
//	AddEdge(u, v VertexID) error             // O(1), idempotent, rejects u == v
//	HasVertex(v VertexID) bool               // O(1)
//	Adjacent(u, v VertexID) bool             // O(1)
//	Neighbours(v VertexID) []VertexID        // O(deg(v)), fresh slice
//	Degree(v VertexID) (int, bool)           // O(1)
//	Vertices() []VertexID                    // O(V log V), sorted ascending
//	NumVertices() int                        // O(1)
//
// Errors:
//
//	ErrLoopNotAllowed  – AddEdge(v, v): this Graph models simple graphs, no self-loops.
//	ErrVertexNotFound  – reserved for callers that need a typed error for a missing
//	                     vertex; Graph's own query methods report absence via a bool
//	                     or ok return instead of this sentinel.
//
// Vertices() sorts its output so that callers iterating over it see the same
// order on every run of the same graph (components orders its output by
// it). Neighbours returns map order, and engine pops candidates in map
// order, so an engine ordering is not deterministic across runs. Callers
// that don't need a sorted order should prefer Neighbours/Adjacent, which
// skip the sort.
package core
