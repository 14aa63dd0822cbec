// Package simdops wraps the SIMD-accelerated vector primitives used by the
// grid interpolation engines. Delegating to github.com/tphakala/simd keeps
// the hot paths (stencil dot products, field reductions) on AVX2/SSE where
// available while staying pure Go.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// DotProduct computes the dot product of a and b without bounds checking.
// Both slices must have equal length; callers guarantee this by
// construction (stencil weights and gathered values are built together).
func DotProduct(a, b []float64) float64 {
	return f64.DotProductUnsafe(a, b)
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return f64.Sum(a)
}

// Scale multiplies each element of a by s into dst: dst[i] = a[i] * s.
// dst and a may be the same slice.
func Scale(dst, a []float64, s float64) {
	f64.Scale(dst, a, s)
}
