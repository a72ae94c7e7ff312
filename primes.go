// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package primetools generates, factors and tests prime numbers.
// Everything works on native unsigned integers, 32 bits for PrimesBelow and
// factorization, 64 bits for PrimesBetween and the primality tests.
//
// PrimesBelow runs a plain sieve of Eratosthenes over [0, x].
// PrimesBetween runs an offset sieve over [min, max) using seed primes up to sqrt(max),
// so only max-min flags are allocated no matter how large max is. It is practical up to
// roughly max = 1e17, the seed sieve alone needs 2^32 bits once max approaches 2^64.
//
// None of the functions keep state between calls, they are safe to call from
// multiple goroutines.
package primetools

import (
	"math"
	"math/bits"

	"leb.io/primetools/bitsieve"
)

// PrimesBelow returns the primes less than x in ascending order.
func PrimesBelow(x uint32) []uint32 {
	s := sieve(uint64(x))
	primes := make([]uint32, 0, s.Count())
	s.Each(func(v uint64) bool {
		if v >= uint64(x) {
			return false
		}
		primes = append(primes, uint32(v))
		return true
	})
	return primes
}

// same as PrimesBelow but for seed lists whose bound can reach 2^32
func primesBelow64(x uint64) []uint64 {
	s := sieve(x)
	primes := make([]uint64, 0, s.Count())
	s.Each(func(v uint64) bool {
		if v >= x {
			return false
		}
		primes = append(primes, v)
		return true
	})
	return primes
}

// sieve of eratosthenes over [0, x], x < 2^33
func sieve(x uint64) *bitsieve.Sieve {
	s := bitsieve.New(x)
	limit := CeilSqrt(x)
	for i := uint64(2); i <= limit; i++ {
		if !s.Test(i) {
			continue
		}
		// smaller multiples were struck by smaller factors
		for j := i * i; j <= x; j += i {
			s.Clear(j)
		}
	}
	return s
}

// PrimesBetween returns the primes p with min <= p < max in ascending order.
func PrimesBetween(min, max uint64) []uint64 {
	lo := min
	if lo < 2 {
		lo = 2
	}
	if max <= lo {
		return []uint64{}
	}
	seeds := primesBelow64(FloorSqrt(max) + 1)
	s := offsetSieve(lo, max, seeds)
	primes := make([]uint64, 0, s.Count())
	s.Each(func(v uint64) bool {
		primes = append(primes, v)
		return true
	})
	return primes
}

// offsetSieve strikes the composites of [lo, max) using seeds, which must hold every
// prime <= FloorSqrt(max). Requires 2 <= lo < max.
func offsetSieve(lo, max uint64, seeds []uint64) *bitsieve.Sieve {
	s := bitsieve.NewOffset(lo, max-1)
	root := FloorSqrt(max)
	for _, p := range seeds {
		if p > root {
			break
		}
		start, ok := firstMultiple(p, lo)
		if !ok {
			continue
		}
		for v := start; v < max; v += p {
			s.Clear(v - lo)
			if v > math.MaxUint64-p {
				break
			}
		}
	}
	return s
}

// firstMultiple returns the smallest multiple of p that is >= lo and > p.
// ok is false when that multiple doesn't fit in 64 bits.
func firstMultiple(p, lo uint64) (m uint64, ok bool) {
	q := lo / p
	if lo%p != 0 {
		q++
	}
	// p itself is prime
	if q < 2 {
		q = 2
	}
	hi, m := bits.Mul64(q, p)
	return m, hi == 0
}
