// Package search implements the two-anchor byte-pattern search kernel:
// broadcast-compare the first and last pattern element across a haystack
// tile, then confirm each candidate lane with a scalar middle/tail check.
// It runs over elements of width 1, 2, or 4 bytes and reports ascending byte
// offsets, in one of three modes (first match, all non-overlapping, all
// overlapping).
//
// The package is split one-concern-per-file: mode.go (the result-mode enum),
// search.go (the public entry point, precondition checks, and per-width
// dispatch), anchor1.go/anchor2.go/anchorn.go (the P=1/P=2/P>=3 branches),
// and scalar.go (the scalar candidate-confirmation step used by the P>=3
// branch; P=1 and P=2 need none).
package search
