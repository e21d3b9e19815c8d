// Package lanes is the leaf layer of the simba core: it models spec
// component A, "Lane Primitives" — load, broadcast-compare, bitwise
// and/or/andnot, byte-swap, lane-shift, and horizontal-reduce/movemask — as
// plain Go functions over fixed-width tiles. Every kernel in pkg/intrinsics is
// built exclusively out of these primitives; nothing above this package reads
// tile bytes directly.
//
// Design note: why a single 64-byte tile width
// ---------------------------------------------
//
// Real SIMD cores expose several register widths (512/256/128/64-bit, i.e.
// 64/32/16/8-byte tiles), and a production library picks the widest one the
// running CPU actually has. That selection is an explicit external
// collaborator this core does not implement (see the package comment on
// pkg/intrinsics): nothing here does per-architecture feature detection.
//
// Rather than model four register widths with no real backend to route them
// to, lanes fixes one logical tile width, Width = 64 bytes, and lets the
// four-tile/three-tile/two-tile/one-tile/scalar-tail cascade (see
// pkg/intrinsics) do its work in multiples of it. A future feature-detecting
// frontend can still slot in underneath by swapping Width's definition and
// the per-element lane counts derived from it — the primitives here don't
// care what picked the width, only that tiles are exactly Width bytes (or,
// for the indivisible head/tail, fewer).
//
// Masks are represented uniformly as a Mask (uint64), one bit per lane,
// regardless of element width — this is the same shape as a real movemask
// instruction and makes the lane-shift primitive (shifting a mask by one bit)
// exactly equivalent to shifting a vector by one lane.
package lanes
