//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the run configuration of the digest tools.
package env

import (
	"io"
	"os"

	"github.com/markkurossi/sha256ref/sha256"
)

// Config defines the configuration for the digest front ends. Config
// must not be modified after being passed to any component. It is
// safe for concurrent use by multiple components as they do not
// modify it.
type Config struct {
	// In is the standard input stream.
	In io.Reader

	// Out receives the digests.
	Out io.Writer

	// Diag receives diagnostics, traces, and timing reports.
	Diag io.Writer

	// Verbose enables informational diagnostics.
	Verbose bool

	// Trace dumps the message schedule and the working variables of
	// every compression round.
	Trace bool

	// Timing prints a per-stage profiling report.
	Timing bool

	// MaxInput limits the input size in bytes. The zero value means
	// sha256.MaxInput.
	MaxInput uint64
}

// GetIn returns the standard input stream.
func (config *Config) GetIn() io.Reader {
	if config.In != nil {
		return config.In
	}
	return os.Stdin
}

// GetOut returns the digest output writer.
func (config *Config) GetOut() io.Writer {
	if config.Out != nil {
		return config.Out
	}
	return os.Stdout
}

// GetDiag returns the diagnostics writer.
func (config *Config) GetDiag() io.Writer {
	if config.Diag != nil {
		return config.Diag
	}
	return os.Stderr
}

// GetMaxInput returns the input size limit.
func (config *Config) GetMaxInput() uint64 {
	if config.MaxInput != 0 && config.MaxInput < sha256.MaxInput {
		return config.MaxInput
	}
	return sha256.MaxInput
}
