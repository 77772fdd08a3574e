package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avionops/crateplan/core"
)

func TestFlight_IsRepositioning(t *testing.T) {
	reposition := core.Flight{Plane: 0, From: 1, To: 2, Cargo: []int64{0, 0, 0}}
	require.True(t, reposition.IsRepositioning())

	delivery := core.Flight{Plane: 0, From: 1, To: 2, Cargo: []int64{0, 0, 5}}
	require.False(t, delivery.IsRepositioning())
}
