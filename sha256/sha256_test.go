//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"testing"

	"github.com/markkurossi/sha256ref/vectors"
)

func TestNIST(t *testing.T) {
	for _, v := range vectors.NIST(!testing.Short()) {
		if got := Digest(v.Message); got != v.Digest {
			t.Errorf("%v: digest mismatch\nhave %s\nwant %s", v, got, v.Digest)
		}
	}
}

func TestReference(t *testing.T) {
	for n := 0; n <= 1024; n++ {
		data := vectors.Generate(uint64(n)+1000, n)
		got := Sum(data)
		want := sha256.Sum256(data)
		if !bytes.Equal(got[:], want[:]) {
			t.Fatalf("n=%d: digest mismatch\nhave %x\nwant %x", n, got, want)
		}
	}
}

func TestDigestFormat(t *testing.T) {
	for n := 0; n < 200; n += 7 {
		d := Digest(vectors.Generate(uint64(n), n))
		if len(d) != 2*Size {
			t.Fatalf("n=%d: digest length %d", n, len(d))
		}
		for _, r := range d {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Fatalf("n=%d: invalid digest character %q", n, r)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	data := vectors.Generate(99, 777)
	first := Digest(data)
	for i := 0; i < 10; i++ {
		if d := Digest(data); d != first {
			t.Fatalf("digest changed between calls: %s vs %s", first, d)
		}
	}
}

func TestAvalanche(t *testing.T) {
	for seed := uint64(0); seed < 16; seed++ {
		data := vectors.Generate(seed, 64)
		base := Digest(data)

		for bit := 0; bit < len(data)*8; bit += 37 {
			flipped := append([]byte(nil), data...)
			flipped[bit/8] ^= 1 << uint(bit%8)

			d := Digest(flipped)
			var diff int
			for i := range d {
				if d[i] != base[i] {
					diff++
				}
			}
			if diff < 32 {
				t.Fatalf("seed=%d bit=%d: only %d hex characters changed",
					seed, bit, diff)
			}
		}
	}
}

func TestParallel(t *testing.T) {
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for n := 0; n < 256; n += 13 {
				data := vectors.Generate(seed*1000+uint64(n), n)
				want := sha256.Sum256(data)
				if got := Sum(data); got != want {
					errs <- fmt.Errorf("seed=%d n=%d: %x != %x",
						seed, n, got, want)
					return
				}
			}
		}(uint64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestTraceABC(t *testing.T) {
	padded := Pad([]byte("abc"))
	state := NewState()
	iv := state.Registers()

	var rounds int
	var first, last [8]uint32
	state.Trace((*[BlockSize]byte)(padded), func(r int, w uint32, v [8]uint32) {
		if r != rounds {
			t.Fatalf("round %d reported as %d", rounds, r)
		}
		if r == 0 {
			first = v
		}
		last = v
		rounds++
	})
	if rounds != Rounds {
		t.Fatalf("got %d rounds, want %d", rounds, Rounds)
	}

	want0 := [8]uint32{
		0x5d6aebcd, 0x6a09e667, 0xbb67ae85, 0x3c6ef372,
		0xfa2a4622, 0x510e527f, 0x9b05688c, 0x1f83d9ab,
	}
	if first != want0 {
		t.Errorf("round 0:\nhave %08x\nwant %08x", first, want0)
	}
	want63 := [8]uint32{
		0x506e3058, 0xd39a2165, 0x04d24d6c, 0xb85e2ce9,
		0x5ef50f24, 0xfb121210, 0x948d25b6, 0x961f4894,
	}
	if last != want63 {
		t.Errorf("round 63:\nhave %08x\nwant %08x", last, want63)
	}

	regs := state.Registers()
	for i := range regs {
		if regs[i] != iv[i]+last[i] {
			t.Errorf("h%d=%08x, want %08x", i, regs[i], iv[i]+last[i])
		}
	}
	if got := state.Hex(); got != vectors.NIST(false)[1].Digest {
		t.Errorf("trace digest mismatch: %s", got)
	}
}

func TestBlockMatchesTrace(t *testing.T) {
	padded := Pad(vectors.Generate(5, 200))

	s1 := NewState()
	s2 := NewState()
	for len(padded) >= BlockSize {
		block := (*[BlockSize]byte)(padded)
		s1.Block(block)
		s2.Trace(block, func(int, uint32, [8]uint32) {})
		padded = padded[BlockSize:]
	}
	if s1.Registers() != s2.Registers() {
		t.Fatalf("Block and Trace diverged")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.Block((*[BlockSize]byte)(Pad(nil)))
	if got := s.Hex(); got != vectors.NIST(false)[0].Digest {
		t.Fatalf("empty digest mismatch: %s", got)
	}
	s.Reset()
	if s.Registers() != NewState().Registers() {
		t.Fatalf("Reset did not restore the initial hash value")
	}
}

func TestRoundConstants(t *testing.T) {
	if K(0) != 0x428a2f98 || K(Rounds-1) != 0xc67178f2 {
		t.Fatalf("round constants: K(0)=%08x K(63)=%08x", K(0), K(Rounds-1))
	}
	sum := Sum(nil)
	if hex.EncodeToString(sum[:]) != Digest(nil) {
		t.Fatalf("Sum and Digest disagree")
	}
}
