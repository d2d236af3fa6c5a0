package augcheck

import "github.com/katalvlaran/p2adm/core"

// MaxBipartiteMatching returns the size of a maximum matching in the
// bipartite graph described by adj: adj[l] lists the r-side vertices l may
// match to. Levels and blocking flow follow Dinic's algorithm specialised to
// unit capacities, which is exact and O(E*sqrt(V)) for bipartite matching.
//
// left lists every l-side vertex, including ones with no edges in adj (so
// the caller's vertex set, not just adj's keys, determines V).
func MaxBipartiteMatching(left []core.VertexID, adj map[core.VertexID][]core.VertexID) int {
	matchL := make(map[core.VertexID]core.VertexID, len(left))
	matchR := make(map[core.VertexID]core.VertexID)

	matching := 0
	for {
		dist := bfsLevels(left, adj, matchR)
		if dist == nil {
			break
		}

		iter := make(map[core.VertexID]int)
		pushed := 0
		for _, l := range left {
			if _, matched := matchL[l]; matched {
				continue
			}
			if dfsAugment(l, adj, dist, iter, matchL, matchR) {
				pushed++
			}
		}
		if pushed == 0 {
			break
		}
		matching += pushed
	}

	return matching
}

// bfsLevels builds alternating-layer distances from every free l-vertex,
// the level graph Dinic's blocking flow operates over. Returns nil once no
// free l-vertex can reach a free r-vertex.
func bfsLevels(left []core.VertexID, adj map[core.VertexID][]core.VertexID, matchR map[core.VertexID]core.VertexID) map[core.VertexID]int {
	matched := make(map[core.VertexID]bool, len(left))
	for _, l := range matchR {
		matched[l] = true
	}

	dist := make(map[core.VertexID]int)
	var queue []core.VertexID

	for _, l := range left {
		if !matched[l] {
			dist[l] = 0
			queue = append(queue, l)
		}
	}

	reachedFree := false
	for i := 0; i < len(queue); i++ {
		l := queue[i]
		for _, r := range adj[l] {
			matchedL, isMatched := matchR[r]
			if !isMatched {
				reachedFree = true
				continue
			}
			if _, seen := dist[matchedL]; seen {
				continue
			}
			dist[matchedL] = dist[l] + 1
			queue = append(queue, matchedL)
		}
	}

	if !reachedFree {
		return nil
	}
	return dist
}

func dfsAugment(
	l core.VertexID,
	adj map[core.VertexID][]core.VertexID,
	dist map[core.VertexID]int,
	iter map[core.VertexID]int,
	matchL, matchR map[core.VertexID]core.VertexID,
) bool {
	edges := adj[l]
	for ; iter[l] < len(edges); iter[l]++ {
		r := edges[iter[l]]
		matchedL, isMatched := matchR[r]

		if !isMatched {
			matchL[l] = r
			matchR[r] = l
			return true
		}

		if dist[matchedL] == dist[l]+1 && dfsAugment(matchedL, adj, dist, iter, matchL, matchR) {
			matchL[l] = r
			matchR[r] = l
			return true
		}
	}
	return false
}
