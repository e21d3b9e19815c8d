package intrinsics

import "github.com/simba-project/simba/internal/lanes"

// IsASCII runs the full tile cascade over data and reports whether every byte
// has its high bit clear (spec component B / §4.2). It assumes data is
// non-empty; pkg/validate handles the empty-input contract.
func IsASCII(data []byte) bool {
	rest, ok := walkTiles(data, asciiTileOK)
	if !ok {
		return false
	}
	return asciiTileOK(rest)
}

// asciiTileOK reports whether no byte in chunk has its high bit set. chunk
// may be any length from 1 up to a four-tile (4*lanes.Width) run, or the
// empty scalar tail. A Mask only has 64 usable lanes (it's a uint64
// movemask), so a multi-tile chunk from walkTiles is walked one
// lanes.Width-sized register at a time rather than handed to TestMaskU8
// whole — the chunk's own lane count can exceed 64.
func asciiTileOK(chunk []byte) bool {
	for len(chunk) > 0 {
		n := lanes.Width
		if n > len(chunk) {
			n = len(chunk)
		}
		if lanes.TestMaskU8(chunk[:n], 0x80).AnyNonZero() {
			return false
		}
		chunk = chunk[n:]
	}
	return true
}
