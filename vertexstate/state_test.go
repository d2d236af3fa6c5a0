package vertexstate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/p2adm/augpath"
	"github.com/katalvlaran/p2adm/core"
	"github.com/katalvlaran/p2adm/vertexstate"
)

type StateSuite struct {
	suite.Suite
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateSuite))
}

func (s *StateSuite) TestConstructSeedsNL() {
	st := vertexstate.New(1, []core.VertexID{2, 3, 4})
	require.Equal(s.T(), 3, st.NLLen())
	require.True(s.T(), st.NL(2))
	require.False(s.T(), st.NR(2))
}

func (s *StateSuite) TestMoveNeighbourLToR() {
	st := vertexstate.New(1, []core.VertexID{2})
	require.NoError(s.T(), st.MoveNeighbourLToR(2))
	require.False(s.T(), st.NL(2))
	require.True(s.T(), st.NR(2))
}

func (s *StateSuite) TestMoveNeighbourLToRRejectsNonMember() {
	st := vertexstate.New(1, nil)
	require.ErrorIs(s.T(), st.MoveNeighbourLToR(99), vertexstate.ErrNotAnLNeighbour)
}

func (s *StateSuite) TestCanAddToMConjunction() {
	st := vertexstate.New(1, []core.VertexID{2})
	require.NoError(s.T(), st.AddMatching(5, 6))

	require.False(s.T(), st.CanAddToM(2)) // direct L-neighbour
	require.False(s.T(), st.CanAddToM(5)) // already a matching key
	require.False(s.T(), st.CanAddToM(1)) // self
	require.True(s.T(), st.CanAddToM(7))  // fresh candidate
}

func (s *StateSuite) TestAddMatchingPreconditions() {
	st := vertexstate.New(1, []core.VertexID{2})

	require.ErrorIs(s.T(), st.AddMatching(2, 10), vertexstate.ErrLNeighbourAsKey)
	require.ErrorIs(s.T(), st.AddMatching(1, 10), vertexstate.ErrSelfAsKey)

	require.NoError(s.T(), st.AddMatching(5, 6))
	require.ErrorIs(s.T(), st.AddMatching(5, 7), vertexstate.ErrAlreadyMatchedL)
	require.ErrorIs(s.T(), st.AddMatching(8, 6), vertexstate.ErrAlreadyMatchedR)

	y, ok := st.MLR(5)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.VertexID(6), y)
	x, ok := st.MRL(6)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.VertexID(5), x)
}

func (s *StateSuite) TestRemoveMatching() {
	st := vertexstate.New(1, nil)
	require.NoError(s.T(), st.AddMatching(5, 6))

	y, ok := st.RemoveMatching(5)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.VertexID(6), y)
	require.Equal(s.T(), 0, st.MLRLen())

	_, ok = st.RemoveMatching(5)
	require.False(s.T(), ok)
}

func (s *StateSuite) TestApplyDeltaGrowsMatchingByOne() {
	st := vertexstate.New(1, nil)
	require.NoError(s.T(), st.AddMatching(2, 3))

	delta := augpath.Delta{
		Remove: map[core.VertexID]core.VertexID{2: 3},
		Add: map[core.VertexID]core.VertexID{
			99: 3,
			2:  5,
		},
	}
	require.NoError(s.T(), st.ApplyDelta(delta))
	require.Equal(s.T(), 2, st.MLRLen())

	y, ok := st.MLR(99)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.VertexID(3), y)
	y, ok = st.MLR(2)
	require.True(s.T(), ok)
	require.Equal(s.T(), core.VertexID(5), y)
}

func (s *StateSuite) TestApplyDeltaRejectsMissingRemoveTarget() {
	st := vertexstate.New(1, nil)
	delta := augpath.Delta{
		Remove: map[core.VertexID]core.VertexID{2: 3},
		Add:    map[core.VertexID]core.VertexID{},
	}
	require.ErrorIs(s.T(), st.ApplyDelta(delta), vertexstate.ErrMatchingNotFound)
}

func (s *StateSuite) TestLocalBudgetAtMostP() {
	st := vertexstate.New(1, []core.VertexID{2, 3})
	require.True(s.T(), st.LocalBudgetAtMostP(2))
	require.False(s.T(), st.LocalBudgetAtMostP(1))

	require.NoError(s.T(), st.AddMatching(5, 6))
	require.False(s.T(), st.LocalBudgetAtMostP(2))
	require.True(s.T(), st.LocalBudgetAtMostP(3))
}

func (s *StateSuite) TestDeleteMClearsMatchingAndFlags() {
	st := vertexstate.New(1, nil)
	require.NoError(s.T(), st.AddMatching(5, 6))

	st.DeleteM()
	require.True(s.T(), st.Deleted())
	require.Equal(s.T(), 0, st.MLRLen())
	_, ok := st.MLR(5)
	require.False(s.T(), ok)
}
