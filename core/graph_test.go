package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/p2adm/core"
)

type GraphSuite struct {
	suite.Suite
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestAddEdgeCreatesBothEndpoints() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge(1, 2))

	require.True(s.T(), g.HasVertex(1))
	require.True(s.T(), g.HasVertex(2))
	require.True(s.T(), g.Adjacent(1, 2))
	require.True(s.T(), g.Adjacent(2, 1))
}

func (s *GraphSuite) TestAddEdgeRejectsSelfLoop() {
	g := core.NewGraph()
	err := g.AddEdge(1, 1)
	require.ErrorIs(s.T(), err, core.ErrLoopNotAllowed)
	require.False(s.T(), g.HasVertex(1))
}

func (s *GraphSuite) TestAddEdgeIdempotent() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge(1, 2))
	require.NoError(s.T(), g.AddEdge(1, 2))

	deg, ok := g.Degree(1)
	require.True(s.T(), ok)
	require.Equal(s.T(), 1, deg)
}

func (s *GraphSuite) TestNeighboursReturnsCopy() {
	g := core.NewGraph()
	require.NoError(s.T(), g.AddEdge(1, 2))
	require.NoError(s.T(), g.AddEdge(1, 3))

	nbrs := g.Neighbours(1)
	require.ElementsMatch(s.T(), []core.VertexID{2, 3}, nbrs)

	nbrs[0] = 99 // mutate the copy
	require.ElementsMatch(s.T(), []core.VertexID{2, 3}, g.Neighbours(1))
}

func (s *GraphSuite) TestNeighboursOfUnknownVertexIsNil() {
	g := core.NewGraph()
	require.Nil(s.T(), g.Neighbours(42))
}

func (s *GraphSuite) TestVerticesSortedAscending() {
	g := core.NewGraph()
	g.AddVertex(3)
	g.AddVertex(1)
	g.AddVertex(2)

	require.Equal(s.T(), []core.VertexID{1, 2, 3}, g.Vertices())
	require.Equal(s.T(), 3, g.NumVertices())
}

func (s *GraphSuite) TestAdjacentFalseForUnknownVertices() {
	g := core.NewGraph()
	require.False(s.T(), g.Adjacent(1, 2))
}
