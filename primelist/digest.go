// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primelist

import (
	"hash"

	"github.com/spaolacci/murmur3"
)

// A Digester accumulates a checksum over primes fed to it one at a time,
// so a list streamed out of Walk can be checksummed without holding it.
// The result depends on order, two runs over the same range produce the same value.
type Digester struct {
	h     hash.Hash64
	b     [8]byte
	count uint64
	last  uint64
}

func NewDigester() *Digester {
	return &Digester{h: murmur3.New64()}
}

// Add feeds p to the checksum.
func (d *Digester) Add(p uint64) {
	d.b[0], d.b[1], d.b[2], d.b[3], d.b[4], d.b[5], d.b[6], d.b[7] =
		byte(p), byte(p>>8), byte(p>>16), byte(p>>24), byte(p>>32), byte(p>>40), byte(p>>48), byte(p>>56)
	d.h.Write(d.b[:])
	d.count++
	d.last = p
}

func (d *Digester) Sum64() uint64 {
	return d.h.Sum64()
}

// Count returns the number of primes added.
func (d *Digester) Count() uint64 {
	return d.count
}

// Last returns the last prime added.
func (d *Digester) Last() uint64 {
	return d.last
}

// Digest returns the checksum of list.
func Digest(list []uint64) uint64 {
	d := NewDigester()
	for _, p := range list {
		d.Add(p)
	}
	return d.Sum64()
}
