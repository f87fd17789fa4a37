//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/markkurossi/sha256ref/env"
	"github.com/markkurossi/sha256ref/input"
	"github.com/markkurossi/sha256ref/timing"
	"github.com/markkurossi/sha256ref/utils"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var message string
	var maxInput uint64
	var selftest bool

	config := &env.Config{
		In:   stdin,
		Out:  stdout,
		Diag: stderr,
	}

	flags := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&message, "message", "m", "", "message to hash")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&config.Trace, "trace", false,
		"trace message schedules and compression rounds")
	flags.BoolVar(&config.Timing, "timing", false, "print timing report")
	flags.Uint64Var(&maxInput, "max-input", 0,
		"maximum input size in bytes (0 for no limit)")
	flags.BoolVar(&selftest, "selftest", false, "run known-answer tests")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sha256sum [options] [file...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	config.MaxInput = maxInput

	log := utils.NewLogger(config.GetDiag(), config.Verbose)

	if selftest {
		if err := selfTest(config, log); err != nil {
			return exitFailure
		}
		return exitOK
	}

	if flags.Changed("message") {
		if flags.NArg() > 0 {
			log.Errorf(utils.Point{Source: "sha256sum"},
				"--message and file arguments are mutually exclusive")
			return exitUsage
		}
		t := timing.NewTiming()
		src, err := input.Message(config, message)
		if err != nil {
			log.Errorf(utils.Point{Source: "message"}, "%s", err)
			return exitFailure
		}
		t.Sample("Read", nil)
		fmt.Fprintln(config.GetOut(), hash(config, log, t, src))
		return exitOK
	}

	names := flags.Args()
	if len(names) == 0 {
		names = []string{input.Stdin}
	}

	status := exitOK
	var stdinRead bool
	for _, name := range names {
		if name == input.Stdin {
			if stdinRead {
				log.Warningf(utils.Point{Source: name},
					"standard input already consumed, hashing empty input")
			}
			stdinRead = true
		}
		t := timing.NewTiming()
		src, err := input.Open(config, name)
		if err != nil {
			log.Errorf(utils.Point{Source: name}, "%s", err)
			status = exitFailure
			continue
		}
		t.Sample("Read", nil)
		fmt.Fprintf(config.GetOut(), "%s  %s\n", hash(config, log, t, src),
			name)
	}
	return status
}
