//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"time"

	"github.com/markkurossi/sha256ref/env"
	"github.com/markkurossi/sha256ref/input"
	"github.com/markkurossi/sha256ref/sha256"
	"github.com/markkurossi/sha256ref/timing"
	"github.com/markkurossi/sha256ref/utils"
)

// maxBlockSamples limits the per-block rows of the timing report.
// Blocks past the limit are reported as one row.
const maxBlockSamples = 8

// hash computes the digest of the source, tracing and timing the
// stages as configured. The timing t covers the input acquisition of
// src.
func hash(config *env.Config, log *utils.Logger, t *timing.Timing,
	src *input.Source) string {

	t.Bytes = uint64(len(src.Data))

	padded := sha256.Pad(src.Data)
	blocks := len(padded) / sha256.BlockSize
	t.Blocks = blocks
	t.Sample("Pad", []string{timing.FileSize(len(padded)).String()})

	log.Verbosef(utils.Point{Source: src.Name},
		"%d bytes, %d blocks", len(src.Data), blocks)

	var tracer *utils.Tracer
	if config.Trace {
		tracer = utils.NewTracer(config.GetDiag(), src.Name)
	}

	var ends []time.Time
	state := sha256.NewState()
	for i := 0; len(padded) >= sha256.BlockSize; i++ {
		block := (*[sha256.BlockSize]byte)(padded)
		if tracer != nil {
			tracer.Block(state, block)
		} else {
			state.Block(block)
		}
		padded = padded[sha256.BlockSize:]

		if config.Timing && (i < maxBlockSamples || i == blocks-1) {
			ends = append(ends, time.Now())
		}
	}
	sample := t.Sample("Compress", []string{fmt.Sprintf("%d blocks", blocks)})
	for idx, end := range ends {
		sample.SubSample(blockLabel(idx, blocks), end)
	}

	digest := state.Hex()
	t.Sample("Render", nil)

	if config.Timing {
		t.Print(config.GetDiag())
	}
	return digest
}

// blockLabel names the idx:th per-block timing sample.
func blockLabel(idx, blocks int) string {
	if idx < maxBlockSamples || blocks == maxBlockSamples+1 {
		return fmt.Sprintf("Block %d", idx+1)
	}
	return fmt.Sprintf("Blocks %d-%d", maxBlockSamples+1, blocks)
}
