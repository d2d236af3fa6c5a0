package augpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/p2adm/augpath"
	"github.com/katalvlaran/p2adm/core"
)

type PathSuite struct {
	suite.Suite
}

func TestPathSuite(t *testing.T) {
	suite.Run(t, new(PathSuite))
}

func (s *PathSuite) TestEmptySOrTFailsImmediately() {
	v := augpath.NewView()
	v.T[core.VertexID(1)] = struct{}{}
	_, ok := v.FindAugmentingPath()
	require.False(s.T(), ok)

	v2 := augpath.NewView()
	v2.S[core.VertexID(1)] = struct{}{}
	_, ok = v2.FindAugmentingPath()
	require.False(s.T(), ok)
}

// TestDirectTwoHop builds the minimal non-trivial case: s(=1, matched, R) --
// abandon --> w0(=2, L) -- bridge --> t(=3, free, R). One removed pair, two
// added pairs.
func (s *PathSuite) TestDirectTwoHop() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.T[3] = struct{}{}
	v.Out[1] = 99 // s's own direct replacement candidate
	v.Edges[1] = []core.VertexID{2}
	v.Edges[2] = []core.VertexID{3}

	delta, ok := v.FindAugmentingPath()
	require.True(s.T(), ok)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{2: 1}, delta.Remove)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{99: 1, 2: 3}, delta.Add)
	require.Len(s.T(), delta.Add, len(delta.Remove)+1)
}

// TestLongerChain exercises a four-hop alternation: s(1) -> w0(2) -> y'(3,
// matched) -> w0'(4) -> t(5, free).
func (s *PathSuite) TestLongerChain() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.T[5] = struct{}{}
	v.Out[1] = 42
	v.Edges[1] = []core.VertexID{2}
	v.Edges[2] = []core.VertexID{3}
	v.Edges[3] = []core.VertexID{4}
	v.Edges[4] = []core.VertexID{5}

	delta, ok := v.FindAugmentingPath()
	require.True(s.T(), ok)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{2: 1, 4: 3}, delta.Remove)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{42: 1, 2: 3, 4: 5}, delta.Add)
}

// TestDeadEndBacktracks verifies that a branch that cannot reach T is
// abandoned in favour of a sibling successor.
func (s *PathSuite) TestDeadEndBacktracks() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.T[4] = struct{}{}
	v.Out[1] = 7
	v.Edges[1] = []core.VertexID{2}
	// 2 has two bridge options: 3 (a dead end with no further edges) and 4 (free).
	v.Edges[2] = []core.VertexID{3, 4}

	delta, ok := v.FindAugmentingPath()
	require.True(s.T(), ok)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{2: 1}, delta.Remove)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{7: 1, 2: 4}, delta.Add)
}

func (s *PathSuite) TestNoPathReturnsFalse() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.T[99] = struct{}{}
	v.Out[1] = 7
	v.Edges[1] = []core.VertexID{2}
	v.Edges[2] = []core.VertexID{3} // 3 is not in T and has no further edges

	_, ok := v.FindAugmentingPath()
	require.False(s.T(), ok)
}

func (s *PathSuite) TestCycleDoesNotHang() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.T[99] = struct{}{}
	v.Out[1] = 7
	v.Edges[1] = []core.VertexID{2}
	v.Edges[2] = []core.VertexID{1} // cycles straight back to the start

	_, ok := v.FindAugmentingPath()
	require.False(s.T(), ok)
}

func (s *PathSuite) TestMultipleStartsTriesEachUntilOneSucceeds() {
	v := augpath.NewView()
	v.S[1] = struct{}{}
	v.S[10] = struct{}{}
	v.T[5] = struct{}{}
	v.Out[1] = 7
	v.Out[10] = 8
	v.Edges[1] = []core.VertexID{2}
	v.Edges[2] = []core.VertexID{99} // dead end, not in T
	v.Edges[10] = []core.VertexID{20}
	v.Edges[20] = []core.VertexID{5} // reaches T

	delta, ok := v.FindAugmentingPath()
	require.True(s.T(), ok)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{20: 10}, delta.Remove)
	require.Equal(s.T(), map[core.VertexID]core.VertexID{8: 10, 20: 5}, delta.Add)
}
