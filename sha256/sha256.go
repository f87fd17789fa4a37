//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4. The implementation keeps the three stages of the
// algorithm visible: Pad converts the message into whole 64-byte
// blocks, Expand derives the 64-word message schedule of a block, and
// State runs the compression function over the blocks.
//
// Each digest computation owns its State so independent computations
// may run in parallel without coordination.
package sha256

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// The size of a SHA-256 checksum in bytes.
const Size = 32

// The blocksize of SHA-256 in bytes.
const BlockSize = 64

// Rounds is the number of compression rounds and message schedule
// words per block.
const Rounds = 64

// MaxInput is the largest input in bytes whose bit length fits in
// the 64-bit length field of the padding.
const MaxInput = 1<<61 - 1

// ErrTooLarge is returned when the input length exceeds MaxInput.
var ErrTooLarge = errors.New("sha256: input too large")

// CheckLength tests if an input of n bytes can be hashed.
func CheckLength(n uint64) error {
	if n > MaxInput {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, n)
	}
	return nil
}

// Sum returns the SHA-256 checksum of the data.
func Sum(data []byte) [Size]byte {
	state := NewState()
	padded := Pad(data)

	for len(padded) >= BlockSize {
		state.Block((*[BlockSize]byte)(padded))
		padded = padded[BlockSize:]
	}
	return state.Sum()
}

// Digest returns the SHA-256 checksum of the data as 64 lowercase
// hexadecimal characters.
func Digest(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}
