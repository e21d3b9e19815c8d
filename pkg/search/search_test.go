package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchEmptyInputs(t *testing.T) {
	require.Nil(t, Search(nil, []byte("a"), 1, 0, false, ModeFirst))
	require.Nil(t, Search([]byte("a"), nil, 1, 0, false, ModeFirst))
}

func TestSearchZeroTrailingExclusionRejected(t *testing.T) {
	require.Nil(t, Search([]byte("ABABAB"), []byte("AB"), 1, 0, true, ModeAllOverlapping))
}

func TestSearchPatternLongerThanHaystackIsEmpty(t *testing.T) {
	require.Nil(t, Search([]byte("AB"), []byte("ABCDEF"), 1, 0, false, ModeFirst))
}

func TestSearchAllNonOverlappingAndOverlapping(t *testing.T) {
	h := []byte("ABABAB")

	require.Equal(t, []int{0, 2, 4}, Search(h, []byte("AB"), 1, 0, false, ModeAllNonOverlapping))
	require.Equal(t, []int{0, 2, 4}, Search(h, []byte("AB"), 1, 0, false, ModeAllOverlapping))

	require.Equal(t, []int{0, 2}, Search(h, []byte("ABA"), 1, 0, false, ModeAllOverlapping))
	require.Equal(t, []int{0}, Search(h, []byte("ABA"), 1, 0, false, ModeAllNonOverlapping))
}

func TestSearchFirstMode(t *testing.T) {
	require.Equal(t, []int{0}, Search([]byte("ABABAB"), []byte("AB"), 1, 0, false, ModeFirst))
}

func TestSearchScalarTail(t *testing.T) {
	buf := bytes.Repeat([]byte{'X'}, 65)
	buf[64] = 'Y'
	require.Equal(t, []int{64}, Search(buf, []byte("Y"), 1, 0, false, ModeFirst))
}

func TestSearchIdenticalHaystackAndPattern(t *testing.T) {
	h := []byte("needle-in-a-haystack")
	require.Equal(t, []int{0}, Search(h, h, 1, 0, false, ModeFirst))
}

func TestSearchTrailingExclusionHidesTailMatch(t *testing.T) {
	h := []byte("AAAAABAAAA") // "AB" occurs once, at offset 4
	require.Equal(t, []int{4}, Search(h, []byte("AB"), 1, 0, false, ModeFirst))
	require.Nil(t, Search(h, []byte("AB"), 1, 5, true, ModeFirst), "excluding the last 5 bytes removes the only match")
	require.Equal(t, []int{4}, Search(h, []byte("AB"), 1, 4, true, ModeFirst), "excluding only the last 4 bytes still admits it")
}

func TestSearchWidthTwoAndFour(t *testing.T) {
	// "AB" "CD" "AB" as little-endian uint16 elements.
	h16 := []byte{'A', 'B', 'C', 'D', 'A', 'B'}
	require.Equal(t, []int{0, 4}, Search(h16, []byte{'A', 'B'}, 2, 0, false, ModeAllNonOverlapping))

	h32 := []byte{1, 2, 3, 4, 9, 9, 9, 9, 1, 2, 3, 4}
	require.Equal(t, []int{0, 8}, Search(h32, []byte{1, 2, 3, 4}, 4, 0, false, ModeAllNonOverlapping))
}

func TestSearchLongPatternAnchorAndConfirm(t *testing.T) {
	// Pattern longer than one tile (lanesPerTile=64 for width 1), to force
	// the middle-confirmation loop in searchN to actually run.
	needle := bytes.Repeat([]byte{'n'}, 70)
	needle[0] = 'X'
	needle[69] = 'Y'
	haystack := append(bytes.Repeat([]byte{'z'}, 10), needle...)
	haystack = append(haystack, bytes.Repeat([]byte{'z'}, 10)...)

	require.Equal(t, []int{10}, Search(haystack, needle, 1, 0, false, ModeFirst))

	// A near-miss that agrees on both anchors but differs in the interior
	// must not be reported.
	nearMiss := append([]byte{}, haystack...)
	nearMiss[10+35] ^= 0xFF
	require.Nil(t, Search(nearMiss, needle, 1, 0, false, ModeFirst))
}

func TestSearchPatternAsLongAsTile(t *testing.T) {
	needle := bytes.Repeat([]byte{'n'}, 64)
	needle[0] = 'X'
	needle[63] = 'Y'
	haystack := append([]byte{'z'}, needle...)
	require.Equal(t, []int{1}, Search(haystack, needle, 1, 0, false, ModeFirst))
}
