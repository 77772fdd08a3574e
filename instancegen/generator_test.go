package instancegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/instancegen"
)

func TestGenerate_RejectsNilRand(t *testing.T) {
	_, err := instancegen.Generate(nil, instancegen.WithCities(3))
	require.ErrorIs(t, err, instancegen.ErrNeedRandSource)
}

func TestGenerate_RejectsTooFewCities(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instancegen.Generate(rng, instancegen.WithCities(0))
	require.ErrorIs(t, err, instancegen.ErrTooFewCities)
}

func TestGenerate_RejectsNegativePlanes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instancegen.Generate(rng, instancegen.WithPlanes(-1))
	require.ErrorIs(t, err, instancegen.ErrTooFewPlanes)
}

func TestGenerate_RejectsNonPositiveCapacity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instancegen.Generate(rng, instancegen.WithCapacity(0))
	require.ErrorIs(t, err, instancegen.ErrInvalidCapacity)
}

func TestGenerate_RejectsDensityOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instancegen.Generate(rng, instancegen.WithDemandDensity(1.5))
	require.ErrorIs(t, err, instancegen.ErrInvalidDensity)
}

func TestGenerate_RejectsNonPositiveMaxCellDemand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := instancegen.Generate(rng, instancegen.WithMaxCellDemand(0))
	require.ErrorIs(t, err, instancegen.ErrInvalidMaxCellDemand)
}

func TestGenerate_ProducesValidInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst, err := instancegen.Generate(rng,
		instancegen.WithCities(5),
		instancegen.WithPlanes(3),
		instancegen.WithCapacity(20),
		instancegen.WithDemandDensity(0.5),
		instancegen.WithMaxCellDemand(15),
	)
	require.NoError(t, err)
	require.Equal(t, 5, inst.NCities)
	require.Equal(t, 3, inst.NPlanes())
	require.Equal(t, int64(20), inst.Capacity)
	for i := 0; i < inst.NCities; i++ {
		require.Equal(t, int64(0), inst.Crates.At(core.City(i), core.City(i)))
	}
}

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	opts := []instancegen.Option{
		instancegen.WithCities(6),
		instancegen.WithPlanes(2),
		instancegen.WithCapacity(10),
		instancegen.WithDemandDensity(0.7),
		instancegen.WithMaxCellDemand(9),
	}

	rng1 := rand.New(rand.NewSource(7))
	inst1, err := instancegen.Generate(rng1, opts...)
	require.NoError(t, err)

	rng2 := rand.New(rand.NewSource(7))
	inst2, err := instancegen.Generate(rng2, opts...)
	require.NoError(t, err)

	for i := 0; i < inst1.NCities; i++ {
		for j := 0; j < inst1.NCities; j++ {
			require.Equal(t, inst1.Crates.At(core.City(i), core.City(j)), inst2.Crates.At(core.City(i), core.City(j)))
		}
	}
	require.Equal(t, inst1.PlaneStart, inst2.PlaneStart)
}
