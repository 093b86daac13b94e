// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Cost generator for every appended edge.
	costFn CostFn
}

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// cost draws the next edge cost.
func (c builderConfig) cost() int32 { return c.costFn(c.rng) }
