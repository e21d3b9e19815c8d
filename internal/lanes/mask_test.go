package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskBitwise(t *testing.T) {
	a := Mask(0b1010)
	b := Mask(0b0110)
	require.Equal(t, Mask(0b0010), a.And(b))
	require.Equal(t, Mask(0b1110), a.Or(b))
	require.Equal(t, Mask(0b1000), a.AndNot(b))
}

func TestMaskShift(t *testing.T) {
	m := Mask(0b0001)
	require.Equal(t, Mask(0b0010), m.ShiftLanesLeft(1))
	require.Equal(t, Mask(0b1000), m.ShiftLanesLeft(3))

	m2 := Mask(0b1000)
	require.Equal(t, Mask(0b0100), m2.ShiftLanesRight(1))
}

func TestMaskLaneAndTruncate(t *testing.T) {
	m := Mask(0b1011)
	require.True(t, m.Lane(0))
	require.False(t, m.Lane(2))
	require.True(t, m.Lane(3))

	require.Equal(t, Mask(0b011), m.Truncate(3))
	require.Equal(t, m, m.Truncate(64))
}

func TestLaneMask(t *testing.T) {
	require.Equal(t, Mask(0), LaneMask(0))
	require.Equal(t, Mask(0b111), LaneMask(3))
	require.Equal(t, ^Mask(0), LaneMask(64))
}

func TestMaskAnyNonZero(t *testing.T) {
	require.False(t, Mask(0).AnyNonZero())
	require.True(t, Mask(1).AnyNonZero())
}
