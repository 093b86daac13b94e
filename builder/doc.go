// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.SparseWeightDirected fixtures
// for tests, benchmarks and the swdgraph gen command.
//
// A Constructor grows the target graph to at least n nodes and appends edges.
// BuildGraph applies constructors in order to one fresh graph, so topologies
// compose over the shared id range [0, n).
//
// Topologies:
//   - Path(n):           0→1→…→n-1
//   - Cycle(n):          Path plus n-1→0
//   - Star(n):           0→i for every i in [1, n)
//   - Complete(n):       i→j for every i != j
//   - RandomSparse(n,p): each ordered pair (i,j), self-loops included, with probability p
//
// Costs come from a CostFn (WithCostFn):
//   - ConstantCost(c):       every edge costs c (exercises NoCost / SameCost)
//   - UniformCost(min,max):  uniform in [min, max] (exercises UniqueCosts)
//   - BimodalCost(a,b,p):    a with probability p, else b (exercises CostByGroup)
//
// Determinism: fixed trial order (i asc, j asc) plus WithSeed gives identical
// graphs across runs.
//
// Errors:
//
//	ErrTooFewVertices     - n below the topology minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrNeedRandSource     - 0 < p < 1 without WithSeed/WithRand.
//	ErrConstructFailed    - nil constructor.
package builder
