//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

const (
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19
)

// _K holds the round constants: the first 32 bits of the fractional
// parts of the cube roots of the first 64 primes.
var _K = [Rounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// K returns the round constant of round t.
func K(t int) uint32 {
	return _K[t]
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^
		bits.RotateLeft32(x, -22)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^
		bits.RotateLeft32(x, -25)
}

func choice(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// State holds the hash registers h0...h7 of one digest computation.
type State struct {
	h [8]uint32
}

// NewState creates a new State initialized to the SHA-256 initial
// hash value.
func NewState() *State {
	s := new(State)
	s.Reset()
	return s
}

// Reset sets the registers to the initial hash value.
func (s *State) Reset() {
	s.h = [8]uint32{init0, init1, init2, init3, init4, init5, init6, init7}
}

// Registers returns a copy of the hash registers.
func (s *State) Registers() [8]uint32 {
	return s.h
}

// Block processes one block and folds the result into the registers.
func (s *State) Block(block *[BlockSize]byte) {
	s.compress(block, nil)
}

// RoundFunc receives the message schedule word w and the working
// variables a...h after round t.
type RoundFunc func(t int, w uint32, v [8]uint32)

// Trace processes one block like Block and calls fn after every
// round.
func (s *State) Trace(block *[BlockSize]byte, fn RoundFunc) {
	s.compress(block, fn)
}

func (s *State) compress(block *[BlockSize]byte, trace RoundFunc) {
	w := Expand(block)

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3],
		s.h[4], s.h[5], s.h[6], s.h[7]

	for t := 0; t < Rounds; t++ {
		t1 := h + sigma1(e) + choice(e, f, g) + _K[t] + w[t]
		t2 := sigma0(a) + majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		if trace != nil {
			trace(t, w[t], [8]uint32{a, b, c, d, e, f, g, h})
		}
	}

	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
}

// Sum returns the registers as a big-endian byte array.
func (s *State) Sum() [Size]byte {
	var digest [Size]byte

	for i, v := range s.h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest
}

// Hex returns the registers as 64 lowercase hexadecimal characters.
func (s *State) Hex() string {
	sum := s.Sum()
	return hex.EncodeToString(sum[:])
}
