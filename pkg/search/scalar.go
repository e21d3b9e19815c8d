package search

import "github.com/simba-project/simba/internal/lanes"

// confirm runs the scalar middle/tail confirmation for a candidate match at
// haystack[idx:idx+len(pattern)] whose first and last elements are already
// known (via the anchor masks) to equal pattern's first and last elements.
//
// Middle confirmation walks the interior in lanesPerTile-wide chunks
// starting right after the anchored first element. Tail confirmation is one
// final lanesPerTile-wide compare ending exactly at the anchored last
// element; it re-reads elements the middle loop already confirmed when the
// pattern is longer than one chunk, which is harmless since they're already
// known equal, and it is the only comparison run at all when the pattern is
// shorter than one tile (tailOff clamps to 0, so hTail/pTail span exactly
// the pattern's own len(pattern) elements and no lane past the pattern is
// compared — the same effect the specified zero-padded ignore-mask would
// give, without a separate masked code path).
func confirm[T lanes.Element](haystack, pattern []T, idx, lanesPerTile int) bool {
	p := len(pattern)
	for off := 1; off+lanesPerTile <= p-1; off += lanesPerTile {
		hChunk := haystack[idx+off : idx+off+lanesPerTile]
		pChunk := pattern[off : off+lanesPerTile]
		if lanes.NeqMask(hChunk, pChunk).AnyNonZero() {
			return false
		}
	}

	tailOff := p - lanesPerTile
	if tailOff < 0 {
		tailOff = 0
	}
	hTail := haystack[idx+tailOff : idx+p]
	pTail := pattern[tailOff:p]
	return !lanes.NeqMask(hTail, pTail).AnyNonZero()
}
