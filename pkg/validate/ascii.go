package validate

import "github.com/simba-project/simba/pkg/intrinsics"

// IsASCII reports whether every byte in b has its high bit clear. Per
// spec.md §7/§8, empty input is false by contract rather than vacuously
// true.
func IsASCII(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	return intrinsics.IsASCII(b)
}
