//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package input acquires the message bytes for digest computations
// from command line arguments, files, and streams.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/markkurossi/sha256ref/env"
	"github.com/markkurossi/sha256ref/sha256"
)

// Stdin is the source name that selects the standard input.
const Stdin = "-"

// Source is a named message.
type Source struct {
	Name string
	Data []byte
}

func (s *Source) String() string {
	return s.Name
}

// Message returns the raw bytes of the message string. It returns an
// error wrapping sha256.ErrTooLarge if the message exceeds the
// configured input limit.
func Message(config *env.Config, msg string) (*Source, error) {
	if max := config.GetMaxInput(); uint64(len(msg)) > max {
		return nil, fmt.Errorf("input: message: %w: limit %d bytes",
			sha256.ErrTooLarge, max)
	}
	return &Source{
		Name: "message",
		Data: []byte(msg),
	}, nil
}

// Read reads the message from the reader. It returns an error
// wrapping sha256.ErrTooLarge if the message exceeds the configured
// input limit.
func Read(config *env.Config, name string, r io.Reader) (*Source, error) {
	max := config.GetMaxInput()

	data, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", name, err)
	}
	if uint64(len(data)) > max {
		return nil, fmt.Errorf("input: %s: %w: limit %d bytes",
			name, sha256.ErrTooLarge, max)
	}
	return &Source{
		Name: name,
		Data: data,
	}, nil
}

// Open reads the named file. The name Stdin reads the configured
// standard input.
func Open(config *env.Config, name string) (*Source, error) {
	if name == Stdin {
		return Read(config, name, config.GetIn())
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		if uint64(fi.Size()) > config.GetMaxInput() {
			return nil, fmt.Errorf("input: %s: %w: %d bytes",
				name, sha256.ErrTooLarge, fi.Size())
		}
	}
	return Read(config, name, f)
}
