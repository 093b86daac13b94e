// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeCost is the cost of every edge when no CostFn is set.
const DefaultEdgeCost int32 = 1

// CostFn produces an edge cost from an optional RNG. With a nil RNG it must
// still return a deterministic value.
type CostFn func(rng *rand.Rand) int32

// DefaultCostFn always returns DefaultEdgeCost.
func DefaultCostFn(_ *rand.Rand) int32 { return DefaultEdgeCost }

// ConstantCost returns a CostFn that always yields c.
func ConstantCost(c int32) CostFn {
	return func(_ *rand.Rand) int32 { return c }
}

// UniformCost samples uniformly from [min, max]. Panics if max < min.
// A nil RNG yields min.
func UniformCost(min, max int32) CostFn {
	if max < min {
		panic(fmt.Sprintf("builder: UniformCost: max=%d < min=%d", max, min))
	}
	span := int64(max) - int64(min) + 1
	return func(rng *rand.Rand) int32 {
		if rng == nil || span == 1 {
			return min
		}
		return int32(int64(min) + rng.Int63n(span))
	}
}

// BimodalCost yields a with probability p and b otherwise.
// Panics if p is outside [0,1]. A nil RNG yields a.
func BimodalCost(a, b int32, p float64) CostFn {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: BimodalCost: p=%g not in [0,1]", p))
	}
	return func(rng *rand.Rand) int32 {
		if rng == nil || rng.Float64() < p {
			return a
		}
		return b
	}
}
