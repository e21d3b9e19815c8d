package lanes

// Width is the logical tile width in bytes shared by every element kind (see
// the package doc for why this core fixes one width instead of modeling
// 64/32/16/8-byte registers separately).
const Width = 64

// Mask is a per-lane result register: bit i set means lane i matched. It is
// the movemask/compare-result primitive from spec component A, and doubles
// as the vector operand for the shift-by-one-lane primitive: shifting a Mask
// by one bit is exactly shifting a vector of booleans by one lane.
type Mask uint64

// And, Or and AndNot are the bitwise lane-combination primitives.
func (m Mask) And(o Mask) Mask    { return m & o }
func (m Mask) Or(o Mask) Mask     { return m | o }
func (m Mask) AndNot(o Mask) Mask { return m &^ o }

// ShiftLanesLeft shifts the mask left by n lanes — "shift-vector-by-n-
// elements-left" with the vector represented as a per-lane bit.  Lane 0
// becomes whatever shifted in (always 0, since there is no lane -1).
func (m Mask) ShiftLanesLeft(n uint) Mask { return m << n }

// ShiftLanesRight shifts the mask right by n lanes.
func (m Mask) ShiftLanesRight(n uint) Mask { return m >> n }

// AnyNonZero is the horizontal-reduce-any primitive.
func (m Mask) AnyNonZero() bool { return m != 0 }

// Lane reports whether bit i (lane i) is set.
func (m Mask) Lane(i int) bool { return m&(1<<uint(i)) != 0 }

// Truncate clears every bit at position >= n, leaving only the first n lanes
// meaningful. Used when a tile is partially filled (the indivisible head or
// scalar tail) and the trailing, padded lanes must not contribute a match.
func (m Mask) Truncate(n int) Mask {
	if n >= 64 {
		return m
	}
	return m & ((Mask(1) << uint(n)) - 1)
}

// LaneMask returns a mask with exactly the first n lanes set.  Used to build
// "ignore" masks for masked (partial-width) pattern comparisons.
func LaneMask(n int) Mask {
	if n >= 64 {
		return ^Mask(0)
	}
	return (Mask(1) << uint(n)) - 1
}
