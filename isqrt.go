// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primetools

import "math"

// largest r with r*r representable in 64 bits
const maxRoot = 1<<32 - 1

// FloorSqrt returns the largest r such that r*r <= x.
// math.Sqrt supplies the estimate; above 2^53 the float64 conversion can be off by one
// in either direction so the estimate is corrected with exact integer products.
func FloorSqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	for r > maxRoot || r*r > x {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= x {
		r++
	}
	return r
}

// CeilSqrt returns the smallest r such that r*r >= x.
// It never undershoots, the result for x > (2^32-1)^2 is 2^32.
func CeilSqrt(x uint64) uint64 {
	r := FloorSqrt(x)
	if r*r < x {
		r++
	}
	return r
}
