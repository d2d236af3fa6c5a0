package components

import "github.com/katalvlaran/p2adm/core"

// ConnectedComponents partitions g's vertices into connected components.
// Each component lists its vertices in DFS-discovery order; components
// themselves are ordered by the lowest VertexID they contain. The set of
// components and their order are deterministic for a given graph; the
// order of vertices inside a component follows Neighbours' map order and
// is not.
func ConnectedComponents(g *core.Graph) [][]core.VertexID {
	visited := make(map[core.VertexID]bool)
	var out [][]core.VertexID

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}

		var component []core.VertexID
		stack := []core.VertexID{start}
		visited[start] = true

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, u)

			for _, w := range g.Neighbours(u) {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}

		out = append(out, component)
	}

	return out
}
