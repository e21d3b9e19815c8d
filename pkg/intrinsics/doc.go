// Package intrinsics implements the tiered kernels described in spec
// components B–D (ASCII/UTF-16/UTF-32 validation) directly on top of
// internal/lanes. Each exported function here consumes a *whole*,
// already-shape-checked buffer (even length, multiple-of-4 length, etc. —
// whichever the caller's element width demands) and runs the complete
// four-tile → three-tile → two-tile → one-tile → scalar-tail cascade from
// spec §3/§9, except IsUTF16Mixed, which walks one tile at a time to thread
// its carry (see utf16_mixed.go). There is no scalar-only fast path for tiny
// inputs, here or in pkg/validate and pkg/search: every input, whatever its
// size, goes through the tiled code.
//
// Design note: no CPU-feature selector lives here
// -------------------------------------------------
//
// spec §6 names a "CPU feature selector" as an external collaborator that
// picks the widest tile a given machine supports and routes each operation to
// the matching specialization. That selector, and any per-architecture
// intrinsic dispatch, is explicitly out of scope (spec §1): this package
// always drives internal/lanes' single fixed tile width. Swapping in a real
// selector later only means parameterizing lanes.Width and the per-element
// lane counts derived from it; no caller of this package would need to
// change.
package intrinsics
