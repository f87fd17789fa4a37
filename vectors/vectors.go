//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package vectors provides SHA-256 known-answer vectors and a
// deterministic message generator for tests and self-checks.
package vectors

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20"
)

// Vector is a known-answer test vector.
type Vector struct {
	Name    string
	Message []byte
	Digest  string
}

func (v Vector) String() string {
	return fmt.Sprintf("%s (%d bytes)", v.Name, len(v.Message))
}

// NIST returns the FIPS 180-2 example vectors. The million-byte
// vector is included only if long is true.
func NIST(long bool) []Vector {
	result := []Vector{
		{
			Name:    "empty",
			Message: []byte{},
			Digest:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			Name:    "abc",
			Message: []byte("abc"),
			Digest:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			Name:    "two-block",
			Message: []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			Digest:  "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
	}
	if long {
		result = append(result, Vector{
			Name:    "million-a",
			Message: []byte(strings.Repeat("a", 1000000)),
			Digest:  "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		})
	}
	return result
}

// Generate returns n pseudorandom bytes derived from seed. The same
// seed always produces the same bytes.
func Generate(seed uint64, n int) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	binary.BigEndian.PutUint64(key[:], seed)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	result := make([]byte, n)
	c.XORKeyStream(result, result)

	return result
}
