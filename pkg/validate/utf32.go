package validate

import "github.com/simba-project/simba/pkg/intrinsics"

// IsUTF32 reports whether b, reinterpreted as endianBig-ordered 32-bit
// elements, is a sequence of valid non-surrogate Unicode scalar values.
// Empty input and input whose byte length is not a multiple of 4 are false
// (spec.md §7).
func IsUTF32(b []byte, endianBig bool) bool {
	if len(b) == 0 || len(b)%4 != 0 {
		return false
	}
	return intrinsics.IsUTF32(b, endianBig)
}
