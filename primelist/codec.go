// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package primelist stores, checksums and indexes lists of primes produced by primetools.
// A list is a strictly increasing []uint64, 32 bit lists are widened with Widen first.
package primelist

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/binary"
)

var ErrNotAscending = errors.New("primelist: list is not strictly increasing")

// Widen converts a 32 bit list as returned by PrimesBelow.
func Widen(list []uint32) []uint64 {
	w := make([]uint64, len(list))
	for i, v := range list {
		w[i] = uint64(v)
	}
	return w
}

// Check returns ErrNotAscending if list isn't strictly increasing.
func Check(list []uint64) error {
	for i := 1; i < len(list); i++ {
		if list[i] <= list[i-1] {
			return fmt.Errorf("index %d: %d after %d: %w", i, list[i], list[i-1], ErrNotAscending)
		}
	}
	return nil
}

// Marshal encodes list as a length prefixed sequence of little endian uint64s.
func Marshal(list []uint64) ([]byte, error) {
	return binary.Marshal(list)
}

// Unmarshal decodes a list written by Marshal or an Encoder.
func Unmarshal(b []byte) ([]uint64, error) {
	var list []uint64
	if err := binary.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("primelist: unmarshal: %w", err)
	}
	if err := Check(list); err != nil {
		return nil, err
	}
	return list, nil
}

// An Encoder writes lists to a stream, one after another.
type Encoder struct {
	enc *binary.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: binary.NewEncoder(w)}
}

func (e *Encoder) Encode(list []uint64) error {
	if err := e.enc.Encode(list); err != nil {
		return fmt.Errorf("primelist: encode: %w", err)
	}
	return nil
}

// A Decoder reads lists written by an Encoder.
type Decoder struct {
	dec *binary.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: binary.NewDecoder(r)}
}

// Decode reads the next list. It returns io.EOF when the stream is exhausted.
func (d *Decoder) Decode() ([]uint64, error) {
	var list []uint64
	if err := d.dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("primelist: decode: %w", err)
	}
	if err := Check(list); err != nil {
		return nil, err
	}
	return list, nil
}
