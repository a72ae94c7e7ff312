// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primetools

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// IsPrimeU32 reports whether x is prime by trial division.
func IsPrimeU32(x uint32) bool {
	return IsPrimeU64(uint64(x))
}

// IsPrimeU64 reports whether x is prime by trial division.
// After 2 and 3 only divisors of the form 6k-1, 6k+1 are tried, stepping by 2 then 4.
func IsPrimeU64(x uint64) bool {
	switch {
	case x < 2:
		return false
	case x < 4:
		return true
	case x%2 == 0 || x%3 == 0:
		return false
	}
	// d <= x/d rather than d*d <= x, the square overflows near 2^64
	for d, step := uint64(5), uint64(2); d <= x/d; d, step = d+step, 6-step {
		if x%d == 0 {
			return false
		}
	}
	return true
}

// MaxProbableRounds is the number of bases after which a strong probable prime below 2^64 is proven prime.
const MaxProbableRounds = 12

var ErrRounds = errors.New("primetools: probable rounds out of range")

var bases = [MaxProbableRounds]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// provenBelow[k-1]: every odd composite below this value fails the strong test
// for at least one of the first k bases.
var provenBelow = [MaxProbableRounds]uint64{
	2047,
	1373653,
	25326001,
	3215031751,
	2152302898747,
	3474749660383,
	341550071728321,
	341550071728321,
	3825123056546413051,
	3825123056546413051,
	3825123056546413051,
	math.MaxUint64,
}

// Config controls a Checker.
type Config struct {
	// ProbableRounds is the number of strong probable prime tests run before trial division.
	// 0 disables the fast path.
	ProbableRounds int
}

func (c Config) Validate() error {
	if c.ProbableRounds < 0 || c.ProbableRounds > MaxProbableRounds {
		return fmt.Errorf("probable rounds %d not in [0, %d]: %w", c.ProbableRounds, MaxProbableRounds, ErrRounds)
	}
	return nil
}

// A Checker tests primality with an optional probabilistic fast path in front of trial division.
// The fast path only ever shortcuts, it never changes an answer: a failed strong test proves
// x composite, and a passed one is trusted only where the bases are known to be sufficient.
// Everything else falls through to IsPrimeU64.
type Checker struct {
	rounds int
}

func NewChecker(cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Checker{rounds: cfg.ProbableRounds}, nil
}

// Rounds returns the number of probable prime rounds.
func (c *Checker) Rounds() int {
	return c.rounds
}

func (c *Checker) IsPrime(x uint64) bool {
	if c.rounds == 0 || x < 5 {
		return IsPrimeU64(x)
	}
	if x%2 == 0 {
		return false
	}
	for _, a := range bases[:c.rounds] {
		if !strongProbablePrime(x, a) {
			return false
		}
	}
	if x < provenBelow[c.rounds-1] {
		return true
	}
	return IsPrimeU64(x)
}

// strongProbablePrime runs one Miller-Rabin round with base a, n odd and > 3.
func strongProbablePrime(n, a uint64) bool {
	a %= n
	if a == 0 {
		return true
	}
	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for r := 1; r < s; r++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// a, b < m
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

func powMod(b, e, m uint64) uint64 {
	r := uint64(1)
	b %= m
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulMod(r, b, m)
		}
		b = mulMod(b, b, m)
	}
	return r
}
