package intrinsics

import "github.com/simba-project/simba/internal/lanes"

// IsUTF16Mixed runs the carry-threaded tile loop for mixed-mode UTF-16 (spec
// §4.3, regular_only=false): elements are either BMP or form a high/low
// surrogate pair, and a pair may straddle a tile boundary via
// continuation_pending (spec §3's sole inter-block dependency).
//
// Unlike the other validators, mixed mode cannot use the four-tile/
// three-tile/two-tile/one-tile cascade from tiling.go: each physical
// lanes.Width tile needs its own carry transition, so grouping several tiles
// into one process() call (as walkTiles does) would thread the carry across
// the wrong boundaries. Spec §9 explicitly allows collapsing the tier
// cascade to a single loop provided the scalar tail is preserved; that is
// what this does — one lanes.Width-sized tile at a time, then whatever is
// left over.
//
// The spec's reference implementation special-cases "head alignment": it
// peels off the input's first (possibly irregular) tile, checks whether its
// last pair is itself a split surrogate, and defers that explicitly before
// entering a uniform tile loop. Processing every tile — including the first
// — through the same per-tile carry transition below produces the identical
// decision without a separate head case, since the first tile's trailing-high
// check (below) *is* that deferral.
func IsUTF16Mixed(data []byte, bigEndian bool) bool {
	if len(data)%2 != 0 {
		return false
	}

	var decodeBuf [lanes.LanesU16]uint16
	pending := false
	w := lanes.Width
	for len(data) >= w {
		if !mixedTileOK(decodeU16(decodeBuf[:], data[:w], bigEndian), &pending) {
			return false
		}
		data = data[w:]
	}
	if len(data) > 0 {
		if !mixedTileOK(decodeU16(decodeBuf[:], data, bigEndian), &pending) {
			return false
		}
	}
	return !pending
}

// mixedTileOK implements spec §4.3 steps 1–5 for a single tile of n <=
// lanes.LanesU16 elements, threading *pending across calls. It returns false
// the instant the tile violates the surrogate-pairing rule.
func mixedTileOK(tile []uint16, pending *bool) bool {
	n := len(tile)
	if n == 0 {
		return true
	}
	full := lanes.LaneMask(n)

	anySurrogate := lanes.AndEqMaskU16(tile, 0xF800, 0xD800).And(full)
	isLow := lanes.AndEqMaskU16(tile, 0xFC00, 0xDC00).And(full)

	if !anySurrogate.AnyNonZero() {
		return !*pending
	}

	start := 0
	if *pending {
		if !isLow.Lane(0) {
			return false
		}
		start = 1
		*pending = false
	}

	highMask := anySurrogate.AndNot(isLow)

	end := n
	if n-1 >= start && highMask.Lane(n-1) {
		end = n - 1
		*pending = true
	}

	if start >= end {
		return true
	}

	// potential_highs[i] = is_low[i+1]: lane i is expected high because the
	// lane right after it is low.
	potentialHighs := isLow.ShiftLanesRight(1)
	// potential_lows[i] = high_mask[i-1]: lane i is expected low because the
	// lane right before it is an actual (non-low) surrogate.
	potentialLows := highMask.ShiftLanesLeft(1)

	window := lanes.LaneMask(end).AndNot(lanes.LaneMask(start))

	if isLow.And(potentialHighs).And(window).AnyNonZero() {
		return false // two lows adjacent
	}
	if potentialHighs.And(window) != highMask.And(window) {
		return false
	}
	if potentialLows.And(window) != isLow.And(window) {
		return false
	}
	return true
}
