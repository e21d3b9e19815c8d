package intrinsics

import "github.com/simba-project/simba/internal/lanes"

// IsUTF16BMP runs the tile cascade for BMP-only UTF-16 (spec §4.3,
// regular_only=true, supplementary_only=false): every element must lie
// outside the surrogate block [0xD800, 0xDFFF]. An odd byte length is
// rejected.
func IsUTF16BMP(data []byte, bigEndian bool) bool {
	if len(data)%2 != 0 {
		return false
	}

	var decodeBuf [lanes.LanesU16]uint16
	rest, ok := walkTiles(data, func(chunk []byte) bool { return bmpChunkOK(chunk, bigEndian, decodeBuf[:]) })
	if !ok {
		return false
	}
	return bmpChunkOK(rest, bigEndian, decodeBuf[:])
}

// bmpChunkOK walks chunk one lanes.Width-sized register at a time: a Mask
// has only 64 usable lanes, but chunk may be a multi-tile (up to 4*
// lanes.Width) run from walkTiles, which would silently lose lanes 64 and up
// if decoded and masked in a single pass. decodeBuf is a fixed-size array
// living on the caller's stack (see IsUTF16BMP): reusing it across
// iterations instead of letting decodeU16 allocate keeps this validator
// allocation-free per spec.md §1.
func bmpChunkOK(chunk []byte, bigEndian bool, decodeBuf []uint16) bool {
	for len(chunk) > 0 {
		n := lanes.Width
		if n > len(chunk) {
			n = len(chunk)
		}
		tile := decodeU16(decodeBuf, chunk[:n], bigEndian)
		if bmpValidMask(tile) != lanes.LaneMask(len(tile)) {
			return false
		}
		chunk = chunk[n:]
	}
	return true
}

// bmpValidMask implements "(x & 0xF800) != 0xD800" per lane.
func bmpValidMask(tile []uint16) lanes.Mask {
	isSurrogate := lanes.AndEqMaskU16(tile, 0xF800, 0xD800)
	return lanes.LaneMask(len(tile)).AndNot(isSurrogate)
}

// IsUTF16Supplementary runs the tile cascade for supplementary-pair-only
// UTF-16 (spec §4.3, regular_only=true, supplementary_only=true): elements
// must form strictly alternating high/low surrogate pairs starting on an
// even lane index. data's byte length must already be a multiple of 4
// (checked by pkg/validate) and non-empty.
//
// The spec's reference implementation pads an incomplete head tile with the
// canonical (0xD800, 0xDC00, …) literal so a fixed-width comparator only
// ever evaluates real lanes. This core's range-mask primitives are already
// sized to len(tile) rather than a fixed register width, so no lane here is
// ever compared against undefined padding — canonical padding would change
// nothing observable and is omitted (see DESIGN.md).
func IsUTF16Supplementary(data []byte, bigEndian bool) bool {
	var decodeBuf [lanes.LanesU16]uint16
	rest, ok := walkTiles(data, func(chunk []byte) bool { return supplementaryChunkOK(chunk, bigEndian, decodeBuf[:]) })
	if !ok {
		return false
	}
	return supplementaryChunkOK(rest, bigEndian, decodeBuf[:])
}

// supplementaryChunkOK walks chunk one lanes.Width-sized register at a time,
// same reasoning as bmpChunkOK. lanes.Width is a multiple of 4 bytes, so
// every register boundary lands on a pair boundary and a high/low pair is
// never split across the register split introduced here.
func supplementaryChunkOK(chunk []byte, bigEndian bool, decodeBuf []uint16) bool {
	for len(chunk) > 0 {
		n := lanes.Width
		if n > len(chunk) {
			n = len(chunk)
		}
		if !supplementaryRegisterOK(chunk[:n], bigEndian, decodeBuf) {
			return false
		}
		chunk = chunk[n:]
	}
	return true
}

func supplementaryRegisterOK(chunk []byte, bigEndian bool, decodeBuf []uint16) bool {
	if len(chunk) == 0 {
		return true
	}
	tile := decodeU16(decodeBuf, chunk, bigEndian)
	n := len(tile)
	if n%2 != 0 {
		return false
	}

	highs := lanes.RangeMaskU16(tile, 0xD800, 0xDBFF)
	lows := lanes.RangeMaskU16(tile, 0xDC00, 0xDFFF)

	var wantHigh, wantLow lanes.Mask
	for i := 0; i < n; i += 2 {
		wantHigh |= 1 << uint(i)
		wantLow |= 1 << uint(i+1)
	}

	return highs == wantHigh && lows == wantLow
}

// decodeU16 decodes chunk into decodeBuf (a caller-owned, fixed-size
// destination — see IsUTF16BMP/IsUTF16Supplementary/IsUTF16Mixed) rather
// than allocating, per spec.md §1's no-heap-allocation-during-validation
// contract.
func decodeU16(decodeBuf []uint16, chunk []byte, bigEndian bool) []uint16 {
	if bigEndian {
		return lanes.DecodeU16BE(decodeBuf, chunk)
	}
	return lanes.DecodeU16LE(decodeBuf, chunk)
}
