package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range Statuses {
		require.True(t, IsValidStatus(string(s)))
	}
	require.False(t, IsValidStatus(""))
	require.False(t, IsValidStatus("pending")) // case sensitive
	require.False(t, IsValidStatus("Archived"))
}

func TestIsValidVehicleType(t *testing.T) {
	require.True(t, IsValidVehicleType("Car"))
	require.True(t, IsValidVehicleType("Pickup Truck"))
	require.False(t, IsValidVehicleType("Hovercraft"))
}

func TestDefaultFine(t *testing.T) {
	require.Equal(t, 150.00, DefaultFine("Speeding"))
	require.Equal(t, 1000.00, DefaultFine("DUI (Driving Under Influence)"))
	// Unknown types fall back to the base amount
	require.Equal(t, 100.00, DefaultFine("Jaywalking"))
}

func TestEveryViolationTypeHasDefaultFine(t *testing.T) {
	for _, vt := range ViolationTypes {
		_, ok := DefaultFines[vt]
		require.True(t, ok, "missing default fine for %q", vt)
	}
}
