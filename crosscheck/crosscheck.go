// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package crosscheck tests prime generators against each other with seeded random inputs.
// The sieve, the offset sieve, trial division and factorization are independent enough
// that agreement between them over random ranges is a strong check of all of them.
package crosscheck

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"leb.io/primetools"
	"leb.io/primetools/primelist"
)

// Generator is the surface under test.
type Generator interface {
	PrimesBelow(x uint32) []uint32
	PrimesBetween(min, max uint64) []uint64
	IsPrime(x uint64) bool
	Factorize(x uint32) (map[uint32]uint32, error)
}

// Library is the Generator backed by primetools itself.
type Library struct {
	checker *primetools.Checker
	table   *primetools.FactorTable
}

// NewLibrary returns a Generator that tests primality with cfg and factors values up to factorLimit.
func NewLibrary(cfg primetools.Config, factorLimit uint32) (*Library, error) {
	c, err := primetools.NewChecker(cfg)
	if err != nil {
		return nil, err
	}
	return &Library{checker: c, table: primetools.NewFactorTable(factorLimit)}, nil
}

func (l *Library) PrimesBelow(x uint32) []uint32 { return primetools.PrimesBelow(x) }

func (l *Library) PrimesBetween(min, max uint64) []uint64 { return primetools.PrimesBetween(min, max) }

func (l *Library) IsPrime(x uint64) bool { return l.checker.IsPrime(x) }

func (l *Library) Factorize(x uint32) (map[uint32]uint32, error) { return l.table.Factorize(x) }

// Result is the outcome of one check.
type Result struct {
	Name       string        `json:"name"`
	Checked    uint64        `json:"checked"`    // number of values compared
	Mismatches uint64        `json:"mismatches"` // number of values the two sides disagree on
	First      uint64        `json:"first"`      // first value that disagreed, valid if Mismatches > 0
	Duration   time.Duration `json:"duration"`   // wall time of the check
}

func (r Result) Failed() bool {
	return r.Mismatches > 0
}

func (r Result) String() string {
	if r.Failed() {
		return fmt.Sprintf("%s: FAIL %d/%d mismatches, first at %d (%v)", r.Name, r.Mismatches, r.Checked, r.First, r.Duration)
	}
	return fmt.Sprintf("%s: ok %d checked (%v)", r.Name, r.Checked, r.Duration)
}

func (r *Result) miss(v uint64) {
	if r.Mismatches == 0 {
		r.First = v
	}
	r.Mismatches++
}

// Tester runs checks against a Generator.
// Its random source has no lock, a Tester must not be shared between goroutines.
type Tester struct {
	Seed int64      // seed of R
	G    Generator  // generator under test
	R    *rand.Rand // input stream
}

func NewTester(g Generator, seed int64) *Tester {
	return &Tester{Seed: seed, G: g, R: rand.New(rand.NewSource(seed))}
}

// rbetween returns a random value in [a, b].
func (t *Tester) rbetween(a, b uint64) uint64 {
	span := b - a + 1
	if span == 0 {
		return t.R.Uint64()
	}
	return a + t.R.Uint64()%span
}

// BelowVsTrial compares PrimesBelow(n) with trial division of every value below n.
func (t *Tester) BelowVsTrial(n uint32) Result {
	r := Result{Name: fmt.Sprintf("below-vs-trial(%d)", n)}
	start := time.Now()
	sieved := primelist.NewSet(primelist.Widen(t.G.PrimesBelow(n)))
	trial := primelist.NewSet(nil)
	for x := uint32(0); x < n; x++ {
		if primetools.IsPrimeU32(x) {
			trial.Add(uint64(x))
		}
	}
	r.Checked = uint64(n)
	if !sieved.Equal(trial) {
		diff := append(sieved.Difference(trial), trial.Difference(sieved)...)
		for _, v := range sorted(diff) {
			r.miss(v)
		}
	}
	r.Duration = time.Since(start)
	return r
}

// OffsetVsFull compares PrimesBetween(0, n) with PrimesBelow(n).
func (t *Tester) OffsetVsFull(n uint32) Result {
	r := Result{Name: fmt.Sprintf("offset-vs-full(%d)", n)}
	start := time.Now()
	full := primelist.Widen(t.G.PrimesBelow(n))
	offset := t.G.PrimesBetween(0, uint64(n))
	r.Checked = uint64(len(full))
	if primelist.Digest(full) != primelist.Digest(offset) {
		a, b := primelist.NewSet(full), primelist.NewSet(offset)
		diff := append(a.Difference(b), b.Difference(a)...)
		for _, v := range sorted(diff) {
			r.miss(v)
		}
	}
	r.Duration = time.Since(start)
	return r
}

// RandomRanges sieves trials random windows [lo, lo+width), lo <= bound, and checks
// every value in each window with trial division.
func (t *Tester) RandomRanges(trials int, bound, width uint64) Result {
	r := Result{Name: fmt.Sprintf("random-ranges(%d, %d, %d)", trials, bound, width)}
	start := time.Now()
	for i := 0; i < trials; i++ {
		lo := t.rbetween(0, bound)
		hi := lo + width
		if hi < lo {
			hi = ^uint64(0)
		}
		got := primelist.NewSet(t.G.PrimesBetween(lo, hi))
		for v := lo; v < hi; v++ {
			r.Checked++
			if got.Contains(v) != primetools.IsPrimeU64(v) {
				r.miss(v)
			}
		}
	}
	r.Duration = time.Since(start)
	return r
}

// Factorizations factors trials random values in [2, limit] and checks the factors are
// prime and multiply back to the value.
func (t *Tester) Factorizations(trials int, limit uint32) Result {
	r := Result{Name: fmt.Sprintf("factorizations(%d, %d)", trials, limit)}
	start := time.Now()
	for i := 0; i < trials; i++ {
		x := uint32(t.rbetween(2, uint64(limit)))
		r.Checked++
		counts, err := t.G.Factorize(x)
		if err != nil {
			r.miss(uint64(x))
			continue
		}
		p := uint64(1)
		ok := true
		for f, k := range counts {
			if !primetools.IsPrimeU32(f) || k == 0 {
				ok = false
			}
			for j := uint32(0); j < k && p <= uint64(x); j++ {
				p *= uint64(f)
			}
		}
		if !ok || p != uint64(x) {
			r.miss(uint64(x))
		}
	}
	r.Duration = time.Since(start)
	return r
}

// Primality compares the generator's IsPrime with trial division for trials random values below bound.
func (t *Tester) Primality(trials int, bound uint64) Result {
	r := Result{Name: fmt.Sprintf("primality(%d, %d)", trials, bound)}
	start := time.Now()
	for i := 0; i < trials; i++ {
		x := t.rbetween(0, bound-1)
		r.Checked++
		if t.G.IsPrime(x) != primetools.IsPrimeU64(x) {
			r.miss(x)
		}
	}
	r.Duration = time.Since(start)
	return r
}

func sorted(v []uint64) []uint64 {
	slices.Sort(v)
	return v
}
