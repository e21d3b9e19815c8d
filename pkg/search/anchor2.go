package search

import "github.com/simba-project/simba/internal/lanes"

// search2 handles a two-element pattern: broadcast pattern[0] and
// pattern[1], load the tile and the tile shifted by one element, and AND
// the two compare masks. Like search1, no separate confirmation step is
// needed — both pattern elements are anchors.
//
// nextAllowed is the carry: in all-non-overlapping mode a match at index m
// consumes two elements, so the next admissible candidate is m+2. Threading
// nextAllowed across tile iterations is the "carry_skip_one" state the
// two-anchor design describes for a match straddling a tile boundary — here
// it is a plain index comparison rather than a flag consumed by the next
// tile's first lane, since the loop already revisits every index exactly
// once in ascending order.
func search2[T lanes.Element](haystack, pattern []T, lastStart, lanesPerTile int, mode Mode) []int {
	p0, p1 := pattern[0], pattern[1]
	var out []int
	nextAllowed := 0
	for i := 0; i <= lastStart; i += lanesPerTile {
		end := i + lanesPerTile
		if end > lastStart+1 {
			end = lastStart + 1
		}
		n := end - i
		startTile := haystack[i : i+n]
		endTile := haystack[i+1 : i+1+n]
		m := lanes.EqMask(startTile, p0).And(lanes.EqMask(endTile, p1))
		for lane := 0; lane < n; lane++ {
			if !m.Lane(lane) {
				continue
			}
			idx := i + lane
			if mode == ModeAllNonOverlapping && idx < nextAllowed {
				continue
			}
			out = append(out, idx)
			if mode == ModeFirst {
				return out
			}
			if mode == ModeAllNonOverlapping {
				nextAllowed = idx + 2
			}
		}
	}
	return out
}
