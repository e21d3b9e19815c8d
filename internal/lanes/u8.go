package lanes

// LanesU8 is the number of byte lanes in one Width-byte tile when each lane
// is a single byte — i.e. Width itself.
const LanesU8 = Width

// TestMaskU8 ANDs every byte in tile with bits and returns a Mask with bit i
// set where the result is nonzero. Used by the ASCII validator to test the
// high bit of every lane in one pass (broadcast 0x80 + AND + per-lane test).
func TestMaskU8(tile []byte, bits byte) Mask {
	var m Mask
	for i, b := range tile {
		if b&bits != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// NeqMaskU8 is NeqMask[byte], the byte-width instantiation under a concrete
// name. pkg/search calls the generic NeqMask, not this wrapper.
func NeqMaskU8(a, b []byte) Mask { return NeqMask(a, b) }
