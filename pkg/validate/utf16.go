package validate

import "github.com/simba-project/simba/pkg/intrinsics"

// IsUTF16 reports whether b, reinterpreted as endianBig-ordered 16-bit
// elements, is well-formed UTF-16 under one of three modes selected by
// (supplementary, only) per spec.md §6:
//
//	supplementary=false, only=true:  BMP-only — no surrogate may appear.
//	supplementary=true,  only=true:  supplementary-only — every element is
//	                                 part of a strictly alternating high/low
//	                                 surrogate pair.
//	only=false (either supplementary value): mixed — BMP elements and
//	                                 surrogate pairs may both appear; "only"
//	                                 is the active switch between this and
//	                                 the two restricted modes.
//
// Empty input is false. Regular-pair modes (mixed, BMP-only) require an
// even byte length; supplementary-only requires a length that is a
// multiple of 4.
func IsUTF16(b []byte, endianBig, supplementary, only bool) bool {
	if len(b) == 0 || len(b)%2 != 0 {
		return false
	}

	if !only {
		return intrinsics.IsUTF16Mixed(b, endianBig)
	}
	if supplementary {
		if len(b)%4 != 0 {
			return false
		}
		return intrinsics.IsUTF16Supplementary(b, endianBig)
	}
	return intrinsics.IsUTF16BMP(b, endianBig)
}
