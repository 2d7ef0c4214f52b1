package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstateTypeNames(t *testing.T) {
	require.Equal(t, "House", House.String())
	require.Equal(t, "Flat", Flat.String())
	require.Equal(t, "Loft", Loft.String())
	require.Equal(t, "Dacha", Dacha.String())
	require.Equal(t, "EstateType(9)", EstateType(9).String())
}

func TestAdStatusNames(t *testing.T) {
	require.Equal(t, "Opened", Opened.String())
	require.Equal(t, "Closed", Closed.String())
	require.Equal(t, "AdStatus(7)", AdStatus(7).String())
}

// The wire encodings are part of the contract interface.
func TestWireEncodings(t *testing.T) {
	require.Equal(t, uint8(0), uint8(House))
	require.Equal(t, uint8(3), uint8(Dacha))
	require.Equal(t, uint8(0), uint8(Opened))
	require.Equal(t, uint8(1), uint8(Closed))
}
