// SPDX-License-Identifier: MIT
// Package: sparsegraph/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Public constructors live in impl_*.go and share the Constructor signature.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsegraph/core"
)

// Constructor grows g and appends edges using the resolved configuration.
// Implementations must not panic; they return sentinel-wrapped errors.
type Constructor func(g *core.SparseWeightDirected, cfg builderConfig) error

// BuildGraph creates an empty graph and applies cons in order.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.SparseWeightDirected, error) {
	g := core.New(0)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// ensureNodes grows g to at least n nodes.
func ensureNodes(g *core.SparseWeightDirected, n int) error {
	if g.NodeCount() >= n {
		return nil
	}
	return g.Resize(n)
}
