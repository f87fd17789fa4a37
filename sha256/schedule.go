//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"math/bits"
)

func phi0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func phi1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// Expand returns the message schedule of the block. The first 16
// words are the block read as big-endian 32-bit integers and the
// remaining words follow from the schedule recurrence.
func Expand(block *[BlockSize]byte) [Rounds]uint32 {
	var w [Rounds]uint32

	for t := 0; t < 16; t++ {
		w[t] = binary.BigEndian.Uint32(block[t*4:])
	}
	for t := 16; t < Rounds; t++ {
		w[t] = phi1(w[t-2]) + w[t-7] + phi0(w[t-15]) + w[t-16]
	}
	return w
}
