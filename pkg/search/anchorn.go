package search

import "github.com/simba-project/simba/internal/lanes"

// searchN handles a pattern of three or more elements: anchor on the first
// and last element, compare both across the tile and the tile shifted by
// P-1, AND the masks, then run the scalar confirm step (scalar.go) on every
// candidate lane before accepting it.
func searchN[T lanes.Element](haystack, pattern []T, lastStart, lanesPerTile int, mode Mode) []int {
	p := len(pattern)
	first, last := pattern[0], pattern[p-1]
	var out []int
	nextAllowed := 0
	for i := 0; i <= lastStart; i += lanesPerTile {
		end := i + lanesPerTile
		if end > lastStart+1 {
			end = lastStart + 1
		}
		n := end - i
		startTile := haystack[i : i+n]
		endTile := haystack[i+p-1 : i+p-1+n]
		m := lanes.EqMask(startTile, first).And(lanes.EqMask(endTile, last))
		for lane := 0; lane < n; lane++ {
			if !m.Lane(lane) {
				continue
			}
			idx := i + lane
			if mode == ModeAllNonOverlapping && idx < nextAllowed {
				continue
			}
			if !confirm(haystack, pattern, idx, lanesPerTile) {
				continue
			}
			out = append(out, idx)
			if mode == ModeFirst {
				return out
			}
			if mode == ModeAllNonOverlapping {
				nextAllowed = idx + p
			}
		}
	}
	return out
}
