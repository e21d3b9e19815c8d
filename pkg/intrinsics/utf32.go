package intrinsics

import "github.com/simba-project/simba/internal/lanes"

// IsUTF32 runs the tile cascade over data (byte length must already be a
// multiple of 4 — pkg/validate checks that) and reports whether every 32-bit
// element is a valid, non-surrogate Unicode scalar value (spec component D /
// §4.4).
func IsUTF32(data []byte, bigEndian bool) bool {
	// A walkTiles chunk is at most 4*lanes.Width bytes, i.e. at most
	// 4*lanes.LanesU32 elements — exactly 64 lanes at lanes.Width=64, which
	// fits a single Mask pass without the per-register looping bmpChunkOK
	// needs (see DESIGN.md §1.1).
	var decodeBuf [4 * lanes.LanesU32]uint32
	rest, ok := walkTiles(data, func(chunk []byte) bool { return utf32ChunkOK(chunk, bigEndian, decodeBuf[:]) })
	if !ok {
		return false
	}
	return utf32ChunkOK(rest, bigEndian, decodeBuf[:])
}

func utf32ChunkOK(chunk []byte, bigEndian bool, decodeBuf []uint32) bool {
	if len(chunk) == 0 {
		return true
	}
	tile := decodeU32(decodeBuf, chunk, bigEndian)
	n := len(tile)
	return utf32ValidMask(tile) == lanes.LaneMask(n)
}

// decodeU32 decodes chunk into decodeBuf (a caller-owned, fixed-size
// destination — see IsUTF32) rather than allocating, per spec.md §1's
// no-heap-allocation-during-validation contract.
func decodeU32(decodeBuf []uint32, chunk []byte, bigEndian bool) []uint32 {
	if bigEndian {
		return lanes.DecodeU32BE(decodeBuf, chunk)
	}
	return lanes.DecodeU32LE(decodeBuf, chunk)
}

// utf32ValidMask implements the per-lane predicate from spec §4.4:
//
//	(x >= 0) AND (x <= 0x10FFFF) AND NOT ((x < 0x10000) AND ((x & 0xF800) == 0xD800))
//
// x >= 0 is always true for a uint32 lane (the Rust original tests this
// because it loads the raw bits as a signed i32; decoding straight into
// uint32 here makes that comparison a tautology, so it is omitted), leaving
// three mask primitives: an over-range test, a BMP-range test, and the same
// surrogate-block test the UTF-16 BMP-only validator uses, gated by the BMP
// test so non-BMP code points are never excluded by bits they happen to
// share with the surrogate block.
func utf32ValidMask(tile []uint32) lanes.Mask {
	n := len(tile)
	full := lanes.LaneMask(n)
	withinRange := lanes.LessEqMaskU32(tile, 0x10FFFF)
	isBMP := lanes.LessMaskU32(tile, 0x10000)
	isSurrogateBlock := lanes.AndEqMaskU32(tile, 0xF800, 0xD800)
	invalidSurrogate := isBMP.And(isSurrogateBlock)
	return withinRange.AndNot(invalidSurrogate).And(full)
}
