// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primetools

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("primetools: value above factor table limit")
	ErrNotFactorable = errors.New("primetools: values below 2 have no prime factors")
)

// FactorizeWithCounts returns a map of prime factor -> multiplicity for x.
// It is expected that primes comes from PrimesBelow.
//
// primes MUST contain every prime <= sqrt(x). This is not checked, with a shorter list
// the result is silently wrong (a composite can be reported as a prime factor).
// Use a FactorTable when the inputs aren't under the caller's control.
//
// For x < 2 the map is empty.
func FactorizeWithCounts(x uint32, primes []uint32) map[uint32]uint32 {
	counts := make(map[uint32]uint32)
	if x < 2 {
		return counts
	}
	rem := x
	for _, p := range primes {
		if rem == 1 || uint64(p)*uint64(p) > uint64(rem) {
			break
		}
		k := uint32(0)
		for rem%p == 0 {
			rem /= p
			k++
		}
		if k != 0 {
			counts[p] = k
		}
	}
	// what's left has no factor in the list, with a sufficient list it's prime
	if rem > 1 {
		counts[rem]++
	}
	return counts
}

// FactorTable holds the primes needed to factor every value up to a limit.
// Unlike FactorizeWithCounts it refuses values it can't factor correctly.
type FactorTable struct {
	limit  uint32
	primes []uint32
}

// NewFactorTable returns a table able to factor 2..limit.
func NewFactorTable(limit uint32) *FactorTable {
	n := CeilSqrt(uint64(limit)) + 1 // at most 65537
	return &FactorTable{limit: limit, primes: PrimesBelow(uint32(n))}
}

// Limit returns the largest value the table can factor.
func (t *FactorTable) Limit() uint32 {
	return t.limit
}

// Primes returns the table's primes. The slice is shared, don't modify it.
func (t *FactorTable) Primes() []uint32 {
	return t.primes
}

// Factorize returns the prime factor counts of x.
func (t *FactorTable) Factorize(x uint32) (map[uint32]uint32, error) {
	if x < 2 {
		return nil, fmt.Errorf("factorize %d: %w", x, ErrNotFactorable)
	}
	if x > t.limit {
		return nil, fmt.Errorf("factorize %d (limit %d): %w", x, t.limit, ErrOutOfRange)
	}
	return FactorizeWithCounts(x, t.primes), nil
}
