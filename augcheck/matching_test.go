package augcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p2adm/augcheck"
	"github.com/katalvlaran/p2adm/core"
)

func TestMaxBipartiteMatchingPerfectOnTriangleToTriangle(t *testing.T) {
	left := []core.VertexID{1, 2, 3}
	adj := map[core.VertexID][]core.VertexID{
		1: {10, 11},
		2: {10, 11, 12},
		3: {12},
	}
	require.Equal(t, 3, augcheck.MaxBipartiteMatching(left, adj))
}

func TestMaxBipartiteMatchingBoundedByNarrowSide(t *testing.T) {
	left := []core.VertexID{1, 2, 3}
	adj := map[core.VertexID][]core.VertexID{
		1: {100},
		2: {100},
		3: {100},
	}
	require.Equal(t, 1, augcheck.MaxBipartiteMatching(left, adj))
}

func TestMaxBipartiteMatchingZeroWhenNoEdges(t *testing.T) {
	left := []core.VertexID{1, 2}
	require.Equal(t, 0, augcheck.MaxBipartiteMatching(left, map[core.VertexID][]core.VertexID{}))
}

func TestMaxBipartiteMatchingRequiresAugmentingSwap(t *testing.T) {
	// 1 only reaches 10; 2 reaches both 10 and 20. left lists 2 first, so a
	// greedy left-to-right assignment gives 10 to 2 and strands 1; this
	// only comes out at 2 if the solver augments 1-10-2-20.
	left := []core.VertexID{2, 1}
	adj := map[core.VertexID][]core.VertexID{
		1: {10},
		2: {10, 20},
	}
	require.Equal(t, 2, augcheck.MaxBipartiteMatching(left, adj))
}
