// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.
package primelist

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leb.io/primetools"
)

func TestWiden(t *testing.T) {
	assert.Equal(t, []uint64{2, 3, 5, 7}, Widen([]uint32{2, 3, 5, 7}))
	assert.Empty(t, Widen(nil))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(nil))
	assert.NoError(t, Check([]uint64{2, 3, 5}))
	assert.True(t, errors.Is(Check([]uint64{2, 5, 3}), ErrNotAscending))
	assert.True(t, errors.Is(Check([]uint64{2, 3, 3}), ErrNotAscending))
}

func TestMarshalRoundTrip(t *testing.T) {
	list := primetools.PrimesBetween(1e12, 1e12+1000)
	b, err := Marshal(list)
	require.NoError(t, err)
	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestUnmarshalRejectsUnordered(t *testing.T) {
	b, err := Marshal([]uint64{7, 5})
	require.NoError(t, err)
	_, err = Unmarshal(b)
	assert.True(t, errors.Is(err, ErrNotAscending))
}

func TestEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	lists := [][]uint64{
		Widen(primetools.PrimesBelow(100)),
		primetools.PrimesBetween(1000, 1100),
		{18446744073709551557},
	}
	for _, l := range lists {
		require.NoError(t, enc.Encode(l))
	}

	dec := NewDecoder(&buf)
	for _, want := range lists {
		got, err := dec.Decode()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := dec.Decode()
	assert.Equal(t, io.EOF, err)
}

func TestDigest(t *testing.T) {
	a := Widen(primetools.PrimesBelow(1000))
	assert.Equal(t, Digest(a), Digest(primetools.PrimesBetween(0, 1000)))

	// order and content matter
	b := append([]uint64{}, a...)
	b[0], b[1] = b[1], b[0]
	assert.NotEqual(t, Digest(a), Digest(b))
	assert.NotEqual(t, Digest(a), Digest(a[:len(a)-1]))
}

func TestDigesterStreams(t *testing.T) {
	d := NewDigester()
	primetools.Walk(0, 1000, 37, func(p uint64) bool {
		d.Add(p)
		return true
	})
	assert.Equal(t, uint64(168), d.Count())
	assert.Equal(t, uint64(997), d.Last())
	assert.Equal(t, Digest(Widen(primetools.PrimesBelow(1000))), d.Sum64())
}

func TestSet(t *testing.T) {
	s := NewSet(Widen(primetools.PrimesBelow(10000)))
	assert.Equal(t, uint64(1229), s.Len())
	assert.Equal(t, uint64(2), s.Min())
	assert.Equal(t, uint64(9973), s.Max())
	assert.True(t, s.Contains(9973))
	assert.False(t, s.Contains(9971))

	o := NewSet(nil)
	for x := uint64(0); x < 10000; x++ {
		if primetools.IsPrimeU64(x) {
			o.Add(x)
		}
	}
	assert.True(t, s.Equal(o))
	assert.Empty(t, s.Difference(o))

	o.Add(9999)
	assert.False(t, s.Equal(o))
	assert.Equal(t, []uint64{9999}, o.Difference(s))
	assert.Len(t, o.List(), 1230)

	e := NewSet(nil)
	assert.Equal(t, uint64(0), e.Min())
	assert.Equal(t, uint64(0), e.Max())
}
