// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates n is smaller than the topology allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
