//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"fmt"
)

// lengthBytes is the size of the big-endian bit length suffix.
const lengthBytes = 8

// NumBlocks returns the number of blocks in the padded form of an
// n-byte message, ceil((8n+65)/512), computed without the bit length
// so that it does not overflow for large n.
func NumBlocks(n int) int {
	return (n+lengthBytes)/BlockSize + 1
}

// Pad returns a new slice holding data followed by the SHA-256
// padding: a 0x80 byte, zero bytes until the length is 56 mod 64, and
// the bit length of data as a 64-bit big-endian integer. The length of
// the result is a multiple of BlockSize. Pad panics if the bit length
// of data does not fit in 64 bits.
func Pad(data []byte) []byte {
	length := uint64(len(data))
	if err := CheckLength(length); err != nil {
		panic(err)
	}

	// Padding.  Add a 1 bit and 0 bits until 56 bytes mod 64.
	var t uint64
	if length%BlockSize < BlockSize-lengthBytes {
		t = BlockSize - lengthBytes - length%BlockSize
	} else {
		t = BlockSize + BlockSize - lengthBytes - length%BlockSize
	}

	padded := make([]byte, length+t+lengthBytes)
	copy(padded, data)
	padded[length] = 0x80

	// Length in bits.
	binary.BigEndian.PutUint64(padded[length+t:], length<<3)

	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("sha256: padded length %d", len(padded)))
	}
	return padded
}
