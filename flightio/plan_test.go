package flightio_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/flightio"
	"github.com/avionops/crateplan/flightplan"
)

func buildTestPlan(t *testing.T) (*core.Instance, *flightplan.Plan) {
	t.Helper()
	m, err := core.NewMatrix(2)
	require.NoError(t, err)
	m.Set(0, 1, 15)
	inst, err := core.NewInstance(30, m, []core.City{0})
	require.NoError(t, err)
	plan, err := flightplan.Run(inst, 1)
	require.NoError(t, err)
	return inst, plan
}

func TestEncodeDecodePlan_RoundTrips(t *testing.T) {
	inst, plan := buildTestPlan(t)

	data, err := flightio.EncodePlan(plan)
	require.NoError(t, err)

	got, err := flightio.DecodePlan(data, inst.NCities)
	require.NoError(t, err)
	require.Equal(t, plan.RunID, got.RunID)
	require.Equal(t, plan.Flights, got.Flights)
}

func TestWriteReadPlan_RoundTripsThroughDisk(t *testing.T) {
	inst, plan := buildTestPlan(t)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, flightio.WritePlan(path, plan))

	got, err := flightio.ReadPlan(path, inst.NCities)
	require.NoError(t, err)
	require.Equal(t, plan.Flights, got.Flights)
}

func TestDecodePlan_RejectsCargoLengthMismatch(t *testing.T) {
	data := []byte(`{"run_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","flights":[{"plane":0,"from":0,"to":1,"cargo":[0]}]}`)
	_, err := flightio.DecodePlan(data, 2)
	require.ErrorIs(t, err, flightio.ErrCargoLengthMismatch)
}

func TestDecodePlan_RejectsBadRunID(t *testing.T) {
	data := []byte(`{"run_id":"not-a-uuid","flights":[]}`)
	_, err := flightio.DecodePlan(data, 2)
	require.Error(t, err)
}
