// SPDX-License-Identifier: MIT

package encfmt

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparsegraph/format"
)

// Stats counts how edge lists were encoded in one file.
type Stats struct {
	// Empty is the number of nodes without edges.
	Empty int

	// Lists holds, per discriminator, the number of non-empty edge lists.
	Lists [format.CostByGroup + 1]int
}

// Count returns the number of edge lists stored with d.
func (s Stats) Count(d format.Discriminator) int {
	if !d.Valid() {
		return 0
	}
	return s.Lists[d]
}

func (s *Stats) add(d format.Discriminator) { s.Lists[d]++ }

// MarshalZerologObject lets Stats be attached to a log event with Object.
func (s Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Int("empty", s.Empty)
	for d := format.NoCost; d <= format.CostByGroup; d++ {
		e.Int(d.String(), s.Lists[d])
	}
}
