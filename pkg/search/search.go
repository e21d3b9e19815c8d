package search

import "github.com/simba-project/simba/internal/lanes"

// Search locates pattern inside haystack, both reinterpreted as a stream of
// elementWidth-byte elements (1, 2, or 4 — the only widths the element
// constraint in internal/lanes supports), and returns the ascending byte
// offsets of every match Mode selects.
//
// trailingExclusion/hasTrailingExclusion model an optional nonnegative byte
// count that must not participate in any match; Go has no nullable-int
// primitive, so this mirrors the teacher's preference for an explicit
// "(value, present)" pair over a pointer on a path that must not allocate.
// A present trailing_exclusion of zero is reserved to mean "reject the
// search" rather than "no exclusion" — callers that mean no exclusion pass
// hasTrailingExclusion=false.
func Search(haystack, pattern []byte, elementWidth int, trailingExclusion int, hasTrailingExclusion bool, mode Mode) []int {
	if len(haystack) == 0 || len(pattern) == 0 {
		return nil
	}
	if hasTrailingExclusion && trailingExclusion == 0 {
		return nil
	}

	switch elementWidth {
	case 1:
		excl := 0
		if hasTrailingExclusion {
			excl = trailingExclusion
		}
		return search(haystack, pattern, excl, mode, lanes.LanesU8)
	case 2:
		if len(haystack)%2 != 0 || len(pattern)%2 != 0 {
			return nil
		}
		excl := 0
		if hasTrailingExclusion {
			excl = trailingExclusion / 2
		}
		// Search's allocation budget permits a single growable result
		// buffer per call (spec.md §1), unlike validation's stricter
		// zero-allocation rule, so the haystack and pattern decode buffers
		// allocated here are the documented exception (see DESIGN.md §1.1).
		hDecoded := make([]uint16, len(haystack)/2)
		pDecoded := make([]uint16, len(pattern)/2)
		idx := search(lanes.DecodeU16LE(hDecoded, haystack), lanes.DecodeU16LE(pDecoded, pattern), excl, mode, lanes.LanesU16)
		return scaleOffsets(idx, 2)
	case 4:
		if len(haystack)%4 != 0 || len(pattern)%4 != 0 {
			return nil
		}
		excl := 0
		if hasTrailingExclusion {
			excl = trailingExclusion / 4
		}
		hDecoded := make([]uint32, len(haystack)/4)
		pDecoded := make([]uint32, len(pattern)/4)
		idx := search(lanes.DecodeU32LE(hDecoded, haystack), lanes.DecodeU32LE(pDecoded, pattern), excl, mode, lanes.LanesU32)
		return scaleOffsets(idx, 4)
	default:
		return nil
	}
}

func scaleOffsets(idx []int, width int) []int {
	if idx == nil {
		return nil
	}
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v * width
	}
	return out
}

// search is the width-generic engine behind Search. haystack and pattern are
// already reinterpreted as T elements; trailingExclusionElems is the
// exclusion count in elements (not bytes); lanesPerTile is L, the number of
// T elements that fit in one lanes.Width-byte tile. It dispatches on pattern
// length exactly as spec'd: P=1 and P=2 need no middle/tail confirmation
// since the anchors alone cover the whole pattern, P>=3 does.
func search[T lanes.Element](haystack, pattern []T, trailingExclusionElems int, mode Mode, lanesPerTile int) []int {
	p := len(pattern)
	n := len(haystack) - trailingExclusionElems
	if n < 0 {
		n = 0
	}
	if p > n {
		return nil
	}
	lastStart := n - p

	switch {
	case p == 1:
		return search1(haystack, pattern[0], lastStart, lanesPerTile, mode)
	case p == 2:
		return search2(haystack, pattern, lastStart, lanesPerTile, mode)
	default:
		return searchN(haystack, pattern, lastStart, lanesPerTile, mode)
	}
}
