// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.
package bitsieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClearsZeroAndOne(t *testing.T) {
	s := New(10)
	require.Equal(t, uint64(11), s.Len())
	assert.False(t, s.Test(0))
	assert.False(t, s.Test(1))
	for i := uint64(2); i <= 10; i++ {
		assert.True(t, s.Test(i), "index %d", i)
	}
	assert.Equal(t, uint64(9), s.Count())
}

func TestNewSmall(t *testing.T) {
	s := New(0)
	assert.Equal(t, uint64(1), s.Len())
	assert.False(t, s.Test(0))
	assert.Equal(t, uint64(0), s.Count())

	s = New(1)
	assert.Equal(t, uint64(2), s.Len())
	assert.Equal(t, uint64(0), s.Count())
}

func TestNewOffset(t *testing.T) {
	s := NewOffset(100, 109)
	require.Equal(t, uint64(10), s.Len())
	assert.Equal(t, uint64(100), s.Lo())
	assert.Equal(t, uint64(105), s.Value(5))
	assert.Equal(t, uint64(10), s.Count())

	// offset sieves containing 0 and 1 don't clear them
	z := NewOffset(0, 3)
	assert.True(t, z.Test(0))
	assert.True(t, z.Test(1))
}

func TestClearIdempotent(t *testing.T) {
	s := NewOffset(0, 63)
	s.Clear(7)
	s.Clear(7)
	assert.False(t, s.Test(7))
	assert.Equal(t, uint64(63), s.Count())
}

func TestEach(t *testing.T) {
	s := NewOffset(20, 29)
	for _, v := range []uint64{20, 21, 22, 24, 25, 26, 27, 28} {
		s.Clear(v - s.Lo())
	}
	var got []uint64
	s.Each(func(v uint64) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []uint64{23, 29}, got)

	got = got[:0]
	s.Each(func(v uint64) bool {
		got = append(got, v)
		return false
	})
	assert.Equal(t, []uint64{23}, got)
}

func TestPanics(t *testing.T) {
	assert.Panics(t, func() { NewOffset(5, 4) })
	assert.Panics(t, func() { NewOffset(0, 1<<64-1) })
	s := NewOffset(0, 9)
	assert.Panics(t, func() { s.Test(10) })
	assert.Panics(t, func() { s.Clear(10) })
}

func BenchmarkClear(b *testing.B) {
	s := NewOffset(0, 1<<20-1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clear(uint64(i) & (1<<20 - 1))
	}
}
