// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package bitsieve implements the flag table used by the prime sieves.
// A Sieve holds one flag per integer of a contiguous range [lo, hi].
// A flag is true until the integer has been proven composite, flags are only ever cleared.
// Internally the composite marks are kept in a bitset so a freshly allocated (zeroed)
// bitset reads as "every value is still a candidate".
package bitsieve

import (
	"fmt"

	"github.com/willf/bitset"
)

type Sieve struct {
	lo        uint64         // value of index 0
	n         uint64         // number of flags
	composite *bitset.BitSet // set bit == flag cleared
}

// New returns a sieve with flags for the absolute values 0..n inclusive.
// 0 and 1 are never prime so their flags start cleared.
func New(n uint64) *Sieve {
	s := NewOffset(0, n)
	s.Clear(0)
	if n >= 1 {
		s.Clear(1)
	}
	return s
}

// NewOffset returns a sieve with flags for the values lo..hi inclusive, all set.
// Nothing is cleared up front since the range may not contain 0 or 1.
func NewOffset(lo, hi uint64) *Sieve {
	if hi < lo {
		panic(fmt.Sprintf("bitsieve: hi=%d < lo=%d", hi, lo))
	}
	n := hi - lo + 1
	if n == 0 {
		// lo == 0 && hi == 1<<64-1, can't be represented
		panic("bitsieve: range too large")
	}
	return &Sieve{lo: lo, n: n, composite: bitset.New(uint(n))}
}

func (s *Sieve) check(i uint64) {
	if i >= s.n {
		panic(fmt.Sprintf("bitsieve: index %d out of range [0, %d)", i, s.n))
	}
}

// Test reports whether the flag at index i is still set.
func (s *Sieve) Test(i uint64) bool {
	s.check(i)
	return !s.composite.Test(uint(i))
}

// Clear clears the flag at index i. Clearing a cleared flag does nothing.
func (s *Sieve) Clear(i uint64) {
	s.check(i)
	s.composite.Set(uint(i))
}

// Lo returns the value represented by index 0.
func (s *Sieve) Lo() uint64 {
	return s.lo
}

// Len returns the number of flags.
func (s *Sieve) Len() uint64 {
	return s.n
}

// Value maps an index back to the value it represents.
func (s *Sieve) Value(i uint64) uint64 {
	return s.lo + i
}

// Count returns the number of flags still set.
func (s *Sieve) Count() uint64 {
	return s.n - uint64(s.composite.Count())
}

// Each calls f with the value of every flag still set, in ascending order.
// It stops early if f returns false.
func (s *Sieve) Each(f func(v uint64) bool) {
	for i := uint64(0); i < s.n; i++ {
		if s.composite.Test(uint(i)) {
			continue
		}
		if !f(s.lo + i) {
			return
		}
	}
}
