package edgestore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgestore"
)

func TestAdd_BuildsCargoVector(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	idx, err := s.Add(0, 1, 15)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	e := s.Edge(idx)
	require.Equal(t, core.City(0), e.From)
	require.Equal(t, core.City(1), e.To)
	require.Equal(t, []int64{0, 15, 0}, e.Cargo)
	require.Equal(t, int64(15), s.Remaining(idx))
}

func TestAdd_RejectsLoop(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	_, err := s.Add(1, 1, 5)
	require.ErrorIs(t, err, edgestore.ErrLoopEdge)
}

func TestAdd_RejectsNonPositiveAmount(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	_, err := s.Add(0, 1, 0)
	require.ErrorIs(t, err, edgestore.ErrNonPositiveAmount)
}

func TestAdd_RejectsOverCapacity(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	_, err := s.Add(0, 1, 31)
	require.ErrorIs(t, err, edgestore.ErrCapacityExceeded)
}

func TestIncrement_AddsToExistingEdge(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	idx, err := s.Add(0, 1, 10)
	require.NoError(t, err)

	require.NoError(t, s.Increment(idx, 2, 15))
	e := s.Edge(idx)
	require.Equal(t, []int64{0, 10, 15}, e.Cargo)
	require.Equal(t, int64(5), s.Remaining(idx))
}

func TestIncrement_RejectsOverCapacity(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	idx, _ := s.Add(0, 1, 25)
	err := s.Increment(idx, 2, 10)
	require.ErrorIs(t, err, edgestore.ErrCapacityExceeded)
}

func TestIncrement_RejectsSelfCargo(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	idx, _ := s.Add(0, 1, 10)
	err := s.Increment(idx, 0, 5)
	require.ErrorIs(t, err, edgestore.ErrSelfCargo)
}

func TestIncrement_RejectsUnknownIndex(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	err := s.Increment(99, 1, 5)
	require.ErrorIs(t, err, edgestore.ErrEdgeNotFound)
}

func TestOutEdgesInEdges_InsertionOrder(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	e0, _ := s.Add(0, 1, 5)
	e1, _ := s.Add(0, 2, 5)
	e2, _ := s.Add(2, 1, 5)

	require.Equal(t, []int{e0, e1}, s.OutEdges(0))
	require.Equal(t, []int{e0, e2}, s.InEdges(1))
	require.Equal(t, 3, s.Len())
}

func TestEdge_ReturnsIndependentCopy(t *testing.T) {
	s := edgestore.NewStore(30, 3)
	idx, _ := s.Add(0, 1, 5)
	e := s.Edge(idx)
	e.Cargo[1] = 999

	fresh := s.Edge(idx)
	require.Equal(t, int64(5), fresh.Cargo[1])
}
