// Package validate is the public facade over pkg/intrinsics: it checks the
// preconditions spec.md §7 assigns to the validator boundary (empty input,
// odd/misaligned length) before handing well-shaped input down to the tile
// cascade, mirroring the teacher's pkg/algo layer sitting in front of
// pkg/intrinsics. Unlike pkg/algo, this facade carries no small-input
// scalar gate of its own — see DESIGN.md for why.
package validate
