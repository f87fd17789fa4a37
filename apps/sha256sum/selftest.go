//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	stdsha256 "crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/markkurossi/sha256ref/env"
	"github.com/markkurossi/sha256ref/sha256"
	"github.com/markkurossi/sha256ref/utils"
	"github.com/markkurossi/sha256ref/vectors"
)

const selfTestMessages = 300

// selfTest checks the known-answer vectors and generated messages
// against the standard library.
func selfTest(config *env.Config, log *utils.Logger) error {
	var failed int

	for _, v := range vectors.NIST(true) {
		loc := utils.Point{Source: v.Name}
		if got := sha256.Digest(v.Message); got != v.Digest {
			log.Errorf(loc, "digest mismatch: got %s, want %s", got, v.Digest)
			failed++
		} else {
			log.Verbosef(loc, "ok")
		}
	}
	for n := 0; n < selfTestMessages; n++ {
		data := vectors.Generate(uint64(n), n)
		sum := stdsha256.Sum256(data)
		want := hex.EncodeToString(sum[:])
		if got := sha256.Digest(data); got != want {
			log.Errorf(utils.Point{Source: fmt.Sprintf("generated/%d", n)},
				"digest mismatch: got %s, want %s", got, want)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("selftest: %d failures", failed)
	}
	fmt.Fprintf(config.GetOut(), "selftest: %d vectors ok\n",
		len(vectors.NIST(true))+selfTestMessages)
	return nil
}
