package lanes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqMaskGeneric(t *testing.T) {
	require.Equal(t, Mask(0b0100), EqMask([]byte{1, 2, 3, 1}, 3))
	require.Equal(t, Mask(0b010), EqMask([]uint16{0xAAAA, 0xD800, 0x0041}, 0xD800))
	require.Equal(t, Mask(0b001), EqMask([]uint32{7, 8, 9}, 7))
}

func TestNeqMaskGenericShorterOperandBounds(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{1, 9}
	require.Equal(t, Mask(1<<1), NeqMask(a, b), "only compares over min(len(a), len(b))")
}
