// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primelist

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// A Set is a compressed membership index over a prime list.
type Set struct {
	bm *roaring64.Bitmap
}

func NewSet(list []uint64) *Set {
	bm := roaring64.NewBitmap()
	bm.AddMany(list)
	return &Set{bm: bm}
}

// Add inserts p, used when building a set from a predicate instead of a list.
func (s *Set) Add(p uint64) {
	s.bm.Add(p)
}

func (s *Set) Contains(p uint64) bool {
	return s.bm.Contains(p)
}

func (s *Set) Len() uint64 {
	return s.bm.GetCardinality()
}

// Min returns the smallest member, 0 for an empty set.
func (s *Set) Min() uint64 {
	if s.bm.IsEmpty() {
		return 0
	}
	return s.bm.Minimum()
}

// Max returns the largest member, 0 for an empty set.
func (s *Set) Max() uint64 {
	if s.bm.IsEmpty() {
		return 0
	}
	return s.bm.Maximum()
}

func (s *Set) Equal(o *Set) bool {
	return s.bm.Equals(o.bm)
}

// Difference returns the members of s not in o, ascending.
func (s *Set) Difference(o *Set) []uint64 {
	d := s.bm.Clone()
	d.AndNot(o.bm)
	return d.ToArray()
}

// List returns the members ascending.
func (s *Set) List() []uint64 {
	return s.bm.ToArray()
}
