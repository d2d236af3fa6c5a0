package augpath

import "github.com/katalvlaran/p2adm/core"

// Delta is the matching change implied by a found augmenting path: pairs to
// drop from, and pairs to add to, the pivot's M_LR. Both maps are keyed by
// the L-side vertex, matching M_LR's own orientation. Size invariant:
// len(Add) == len(Remove)+1, so applying a Delta always grows the pivot's
// matching by exactly one pair.
type Delta struct {
	Remove map[core.VertexID]core.VertexID
	Add    map[core.VertexID]core.VertexID
}

// View is the local, bounded bipartite structure a pivot vertex's matching
// state is searched over. It is built by package engine from one vertex's
// N_L/N_R/M_LR/M_RL and is discarded after a single FindAugmentingPath call.
//
//   - S: matched R-side witnesses that have a viable alternative L-partner
//     (Out[s] names that partner).
//   - T: free R-side witnesses directly reachable from the pivot.
//   - Out: for each s in S, the new L-partner s would take if the path
//     starting at s succeeds.
//   - Edges: the single alternating step available from a vertex already on
//     a path — from a matched R-witness, the L-partner being abandoned; from
//     an abandoned L-partner, every R-witness it is adjacent to (matched or
//     free; DFS tests T membership as it visits each one).
type View struct {
	S     map[core.VertexID]struct{}
	T     map[core.VertexID]struct{}
	Out   map[core.VertexID]core.VertexID
	Edges map[core.VertexID][]core.VertexID
}

// NewView returns an empty View ready for engine to populate.
func NewView() *View {
	return &View{
		S:     make(map[core.VertexID]struct{}),
		T:     make(map[core.VertexID]struct{}),
		Out:   make(map[core.VertexID]core.VertexID),
		Edges: make(map[core.VertexID][]core.VertexID),
	}
}

// shouldAttempt reports whether a search is even worth running: both
// boundary sets must be non-empty.
func (v *View) shouldAttempt() bool {
	return len(v.S) > 0 && len(v.T) > 0
}

// FindAugmentingPath searches for a single alternating path from some vertex
// in S to some vertex in T, and returns the Delta it implies. Returns
// (Delta{}, false) if S or T is empty, or if no start reaches a target.
func (v *View) FindAugmentingPath() (Delta, bool) {
	if !v.shouldAttempt() {
		return Delta{}, false
	}

	for s := range v.S {
		visited := map[core.VertexID]bool{s: true}
		if path, ok := v.dfs(s, []core.VertexID{s}, visited); ok {
			return v.extractDelta(path), true
		}
	}

	return Delta{}, false
}

// dfs walks forward from the last vertex in path along Edges, stopping as
// soon as it lands on a vertex in T. It backtracks across sibling choices at
// each step, so a dead branch doesn't rule out an alternate successor.
func (v *View) dfs(u core.VertexID, path []core.VertexID, visited map[core.VertexID]bool) ([]core.VertexID, bool) {
	if _, ok := v.T[u]; ok {
		return path, true
	}

	for _, w := range v.Edges[u] {
		if visited[w] {
			continue
		}
		visited[w] = true

		next := make([]core.VertexID, len(path), len(path)+1)
		copy(next, path)
		next = append(next, w)

		if found, ok := v.dfs(w, next, visited); ok {
			return found, true
		}
	}

	return nil, false
}

// extractDelta turns a path p0,p1,...,pN (alternating matched-R, L, matched-R,
// ..., free-R) into the matching change it realises: the matched pairs
// (p1,p0),(p3,p2),... it breaks, and the pairs (Out[p0],p0),(p1,p2),(p3,p4),...
// it forms — the last of which pairs the final abandoned L-partner with the
// free witness the path terminated on.
func (v *View) extractDelta(path []core.VertexID) Delta {
	remove := make(map[core.VertexID]core.VertexID, len(path)/2)
	for i := 0; i+1 < len(path); i += 2 {
		remove[path[i+1]] = path[i]
	}

	add := make(map[core.VertexID]core.VertexID, len(path)/2+1)
	add[v.Out[path[0]]] = path[0]
	for i := 1; i+1 < len(path); i += 2 {
		add[path[i]] = path[i+1]
	}

	return Delta{Remove: remove, Add: add}
}
