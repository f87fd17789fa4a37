//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package input

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkurossi/sha256ref/env"
	"github.com/markkurossi/sha256ref/sha256"
)

func TestMessage(t *testing.T) {
	src, err := Message(&env.Config{}, "hé")
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if !bytes.Equal(src.Data, []byte{'h', 0xc3, 0xa9}) {
		t.Fatalf("message bytes %x", src.Data)
	}
	if src.String() != "message" {
		t.Errorf("unexpected name %s", src)
	}

	cfg := &env.Config{MaxInput: 2}
	if _, err := Message(cfg, "ab"); err != nil {
		t.Fatalf("Message at the limit: %v", err)
	}
	_, err = Message(cfg, "abc")
	if !errors.Is(err, sha256.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestRead(t *testing.T) {
	cfg := &env.Config{MaxInput: 4}

	src, err := Read(cfg, "r", strings.NewReader("abcd"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(src.Data) != "abcd" || src.Name != "r" {
		t.Fatalf("unexpected source %s: %q", src, src.Data)
	}

	_, err = Read(cfg, "r", strings.NewReader("abcde"))
	if !errors.Is(err, sha256.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "msg")
	if err := os.WriteFile(name, []byte("abc"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := Open(&env.Config{}, name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(src.Data) != "abc" {
		t.Fatalf("unexpected data %q", src.Data)
	}

	_, err = Open(&env.Config{MaxInput: 2}, name)
	if !errors.Is(err, sha256.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	src, err = Open(&env.Config{In: strings.NewReader("xyz")}, Stdin)
	if err != nil {
		t.Fatalf("Open(stdin): %v", err)
	}
	if string(src.Data) != "xyz" || src.Name != Stdin {
		t.Fatalf("unexpected stdin source %s: %q", src, src.Data)
	}

	_, err = Open(&env.Config{}, filepath.Join(dir, "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
