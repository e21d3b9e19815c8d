package intrinsics

import "github.com/simba-project/simba/internal/lanes"

// walkTiles drives the four-tile → three-tile → two-tile → one-tile cascade
// from spec §3/§9 over data, calling process once per tier actually entered,
// with a chunk that is an exact multiple of lanes.Width bytes (4, 3, 2 or 1
// tile's worth). It returns the remainder — fewer than lanes.Width bytes —
// for the caller to run through its own scalar-tail path, and false as soon
// as process reports a failure (every validator here is a short-circuiting
// predicate; a single bad lane fails the whole buffer per spec §3's
// invariants).
//
// Only the outermost (four-tile) tier loops; three-tile, two-tile and
// one-tile each fire at most once, since once the remaining length drops
// below a tier's threshold the tier sequence never revisits it (spec §3:
// "the tier sequence is strictly descending").
func walkTiles(data []byte, process func(chunk []byte) bool) (rest []byte, ok bool) {
	w := lanes.Width
	for len(data) >= 4*w {
		if !process(data[:4*w]) {
			return nil, false
		}
		data = data[4*w:]
	}
	if len(data) >= 3*w {
		if !process(data[:3*w]) {
			return nil, false
		}
		data = data[3*w:]
	}
	if len(data) >= 2*w {
		if !process(data[:2*w]) {
			return nil, false
		}
		data = data[2*w:]
	}
	if len(data) >= w {
		if !process(data[:w]) {
			return nil, false
		}
		data = data[w:]
	}
	return data, true
}
