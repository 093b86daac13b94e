// SPDX-License-Identifier: MIT

package encfmt

import (
	"github.com/katalvlaran/sparsegraph/core"
	"github.com/katalvlaran/sparsegraph/format"
)

// minGroupSize is the smallest bucket CostByGroup accepts.
const minGroupSize = 2

// costBuckets summarizes the distinct costs of one edge list. Scanning stops
// as soon as a third cost shows up, since no rule cares about more than two.
type costBuckets struct {
	costs  [2]int32
	counts [2]int
	n      int  // distinct costs seen, capped at 2
	more   bool // a third distinct cost exists
}

func bucketize(edges []core.Edge) costBuckets {
	var b costBuckets
	for _, e := range edges {
		switch {
		case b.n > 0 && e.Cost == b.costs[0]:
			b.counts[0]++
		case b.n > 1 && e.Cost == b.costs[1]:
			b.counts[1]++
		case b.n < 2:
			b.costs[b.n] = e.Cost
			b.counts[b.n] = 1
			b.n++
		default:
			b.more = true
			return b
		}
	}
	return b
}

// Classify returns the sub-encoding the writer uses for edges.
// ok is false for an empty list, which is stored without a discriminator.
func Classify(edges []core.Edge) (d format.Discriminator, ok bool) {
	d, _ = plan(edges)
	return d, len(edges) > 0
}

func plan(edges []core.Edge) (format.Discriminator, costBuckets) {
	if len(edges) <= 1 {
		return format.UniqueCosts, costBuckets{}
	}
	b := bucketize(edges)
	switch {
	case b.n == 1 && b.costs[0] == 0:
		return format.NoCost, b
	case b.n == 1:
		return format.SameCost, b
	case b.n == 2 && !b.more && b.counts[0] >= minGroupSize && b.counts[1] >= minGroupSize:
		if b.costs[1] < b.costs[0] {
			b.costs[0], b.costs[1] = b.costs[1], b.costs[0]
			b.counts[0], b.counts[1] = b.counts[1], b.counts[0]
		}
		return format.CostByGroup, b
	default:
		return format.UniqueCosts, b
	}
}

// sharedCostDiscriminator is the group tag for a bucket with the given cost.
func sharedCostDiscriminator(cost int32) format.Discriminator {
	if cost == 0 {
		return format.NoCost
	}
	return format.SameCost
}
