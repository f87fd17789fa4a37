//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"

	"github.com/markkurossi/sha256ref/sha256"
)

// Tracer prints the message schedule and working variables of
// compression rounds.
type Tracer struct {
	out    io.Writer
	source string
	block  int
}

// NewTracer creates a tracer for the named input.
func NewTracer(out io.Writer, source string) *Tracer {
	return &Tracer{
		out:    out,
		source: source,
	}
}

// Block runs one compression on state and prints its rounds.
func (tr *Tracer) Block(state *sha256.State, block *[sha256.BlockSize]byte) {
	tr.block++
	loc := Point{
		Source: tr.source,
		Block:  tr.block,
		Round:  -1,
	}
	h := state.Registers()
	fmt.Fprintf(tr.out, "%s: h%s=%08x\n", loc, superscript.Itoa(tr.block-1), h)

	state.Trace(block, func(t int, w uint32, v [8]uint32) {
		loc.Round = t
		fmt.Fprintf(tr.out, "%s: W%s=%08x K=%08x a-h=%08x\n",
			loc, superscript.Itoa(t), w, sha256.K(t), v)
	})

	loc.Round = -1
	fmt.Fprintf(tr.out, "%s: h%s=%08x\n", loc, superscript.Itoa(tr.block),
		state.Registers())
}
