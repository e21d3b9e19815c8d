package search

import "github.com/simba-project/simba/internal/lanes"

// search1 handles a single-element pattern: broadcast needle, compare each
// tile, and record every set lane in ascending order. No confirmation step
// is needed since the anchor *is* the whole pattern.
//
// The tier cascade (4x/3x/2x/1x tiles then scalar tail) collapses to one
// loop over L-wide tiles, per the staged-tiers design note's license to do
// so "at modest throughput cost": the last tile this loop sees is simply
// shorter than L, which is exactly the scalar tail's job, expressed with
// the same primitive instead of a separate byte-at-a-time path.
func search1[T lanes.Element](haystack []T, needle T, lastStart, lanesPerTile int, mode Mode) []int {
	var out []int
	for i := 0; i <= lastStart; i += lanesPerTile {
		end := i + lanesPerTile
		if end > lastStart+1 {
			end = lastStart + 1
		}
		tile := haystack[i:end]
		m := lanes.EqMask(tile, needle)
		for lane := 0; lane < len(tile); lane++ {
			if !m.Lane(lane) {
				continue
			}
			out = append(out, i+lane)
			if mode == ModeFirst {
				return out
			}
		}
	}
	return out
}
