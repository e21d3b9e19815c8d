package intrinsics

import (
	"fmt"
	"testing"
)

// BenchmarkIsASCII sweeps the tier boundaries from spec.md §3 — 0, 1,
// lanes.Width-1, lanes.Width, and a few multiples of it — against the
// scalar byte-at-a-time reference, the same comparative shape the teacher's
// BenchmarkIsASCII uses (see _examples/miretskiy-simba/pkg/intrinsics/
// str_test.go).
func BenchmarkIsASCII(b *testing.B) {
	sizes := []int{0, 1, 63, 64, 256, 1024, 1 << 16}

	for _, sz := range sizes {
		buf := make([]byte, sz)
		for i := range buf {
			buf[i] = byte(i % 128)
		}

		b.Run(fmt.Sprintf("size=%d/Tiled", sz), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				IsASCII(buf)
			}
		})

		b.Run(fmt.Sprintf("size=%d/Scalar", sz), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				scalarIsASCII(buf)
			}
		})
	}
}
