// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primetools

import "math"

// DefaultSegment is the number of values sieved per window by Walk when no segment size is given.
const DefaultSegment = 1 << 16

// Walk calls f with each prime p, min <= p < max, in ascending order, stopping early if f returns false.
// A max of 0 means no upper bound.
// The range is sieved one window of segment values at a time so memory is bounded by
// the window and the seed primes, not by max-min.
func Walk(min, max, segment uint64, f func(p uint64) bool) {
	if segment == 0 {
		segment = DefaultSegment
	}
	end := max
	if end == 0 {
		end = math.MaxUint64
	}
	lo := min
	if lo < 2 {
		lo = 2
	}

	var seeds []uint64
	var covered uint64 // seeds hold every prime <= covered
	for lo < end {
		hi := end
		if end-lo > segment {
			hi = lo + segment
		}
		if root := FloorSqrt(hi); root > covered || seeds == nil {
			// grow ahead of need so a long walk only regenerates a few times
			covered = root * 2
			if covered > maxRoot+1 {
				covered = maxRoot + 1
			}
			seeds = primesBelow64(covered + 1)
		}

		stop := false
		offsetSieve(lo, hi, seeds).Each(func(v uint64) bool {
			if !f(v) {
				stop = true
			}
			return !stop
		})
		if stop {
			return
		}
		lo = hi
	}
}

// NextPrime returns the smallest prime >= n, or 0 if there is none below 2^64.
func NextPrime(n uint64) (p uint64) {
	// prime gaps below 2^64 are under 1600
	Walk(n, 0, 1<<12, func(v uint64) bool {
		p = v
		return false
	})
	return
}
