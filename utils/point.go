//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"fmt"
)

// Point specifies a position in a digest computation.
type Point struct {
	Source string
	Block  int // 1-based
	Round  int // 0-based, -1 for the whole block
}

func (p Point) String() string {
	if p.Round < 0 {
		return fmt.Sprintf("%s:%d", p.Source, p.Block)
	}
	return fmt.Sprintf("%s:%d:%d", p.Source, p.Block, p.Round)
}

// Undefined tests if the position is undefined.
func (p Point) Undefined() bool {
	return p.Block == 0
}
