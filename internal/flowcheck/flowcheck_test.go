package flowcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/internal/flowcheck"
)

func TestConservationHolds_DirectEdge(t *testing.T) {
	m, err := core.NewMatrix(2)
	require.NoError(t, err)
	m.Set(0, 1, 15)
	inst, err := core.NewInstance(30, m, []core.City{0})
	require.NoError(t, err)

	flights := []core.Flight{
		{Plane: 0, From: 0, To: 1, Cargo: []int64{0, 15}},
	}

	require.True(t, flowcheck.ConservationHolds(inst, flights, 1))
}

func TestConservationHolds_ChainedTransshipment(t *testing.T) {
	m, err := core.NewMatrix(3)
	require.NoError(t, err)
	m.Set(0, 2, 5)
	inst, err := core.NewInstance(30, m, []core.City{0})
	require.NoError(t, err)

	flights := []core.Flight{
		{Plane: 0, From: 0, To: 1, Cargo: []int64{0, 0, 5}},
		{Plane: 0, From: 1, To: 2, Cargo: []int64{0, 0, 5}},
	}

	require.True(t, flowcheck.ConservationHolds(inst, flights, 2))
}

func TestConservationHolds_IgnoresRepositioningFlights(t *testing.T) {
	m, err := core.NewMatrix(2)
	require.NoError(t, err)
	m.Set(0, 1, 15)
	inst, err := core.NewInstance(30, m, []core.City{0})
	require.NoError(t, err)

	flights := []core.Flight{
		{Plane: 0, From: 0, To: 1, Cargo: []int64{0, 15}},
		{Plane: 0, From: 1, To: 0, Cargo: []int64{0, 0}},
	}

	require.True(t, flowcheck.ConservationHolds(inst, flights, 1))
}

func TestConservationHolds_DetectsShortfall(t *testing.T) {
	m, err := core.NewMatrix(2)
	require.NoError(t, err)
	m.Set(0, 1, 15)
	inst, err := core.NewInstance(30, m, []core.City{0})
	require.NoError(t, err)

	flights := []core.Flight{
		{Plane: 0, From: 0, To: 1, Cargo: []int64{0, 10}}, // short by 5
	}

	require.False(t, flowcheck.ConservationHolds(inst, flights, 1))
}
