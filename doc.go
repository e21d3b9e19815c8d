// Package simba is a SIMD-style encoding-validation and byte-pattern-search
// core. It decides whether a byte buffer is well-formed ASCII, UTF-16, or
// UTF-32, and locates literal patterns inside a byte haystack, by running
// vectorized-style state machines over fixed-width lane tiles instead of a
// byte-at-a-time scalar loop. See pkg/validate and pkg/search for the public
// API; internal/lanes and pkg/intrinsics hold the tile machinery underneath.
package simba
