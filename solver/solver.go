// SPDX-License-Identifier: MIT
// Package: credrank/solver
//
// solver.go — power iteration with functional options and sentinel errors.
//
// Determinism:
//   • Pure function of (chain, options): fixed initial vector, fixed
//     accumulation order (node order, then in-edge order).

package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/markov"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultMaxIterations bounds the power iteration.
	DefaultMaxIterations = 255

	// DefaultTolerance is the L1 convergence threshold.
	DefaultTolerance = 1e-7
)

// ErrEmptyChain indicates a chain with no nodes.
var ErrEmptyChain = errors.New("solver: chain has no nodes")

// ErrNotConverged indicates the iteration budget was exhausted before the
// L1 change dropped below tolerance.
// Usage: if errors.Is(err, ErrNotConverged) { /* raise budget or tolerance */ }.
var ErrNotConverged = errors.New("solver: power iteration did not converge")

// Option configures the solver.
type Option func(*config)

type config struct {
	maxIterations int
	tolerance     float64
}

// WithMaxIterations overrides the iteration budget. Panics on n < 1
// (programmer error at configuration time, per option-constructor policy).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("solver: max iterations must be >= 1, got %d", n))
	}
	return func(c *config) { c.maxIterations = n }
}

// WithTolerance overrides the L1 convergence threshold. Panics on a
// non-positive or non-finite value.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("solver: tolerance must be finite and > 0, got %v", eps))
	}
	return func(c *config) { c.tolerance = eps }
}

// StationaryDistribution computes the stationary probability vector of the
// chain, aligned with its node order. The result sums to 1.
func StationaryDistribution(chain *markov.SparseChain, opts ...Option) ([]float64, error) {
	cfg := config{maxIterations: DefaultMaxIterations, tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(chain.NodeOrder)
	if n == 0 {
		return nil, ErrEmptyChain
	}

	pi := make([]float64, n)
	for i := range pi {
		pi[i] = 1 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < cfg.maxIterations; iter++ {
		// next = ½(pi + pi · P), computed through the in-edge lists. The lazy
		// chain ½(I + P) has the same stationary distribution as P and is
		// aperiodic, so periodic chains converge instead of oscillating.
		var mass float64
		for i := range next {
			in := chain.In[i]
			var sum float64
			for j, nb := range in.Neighbor {
				sum += in.Weight[j] * pi[nb]
			}
			next[i] = (sum + pi[i]) / 2
			mass += next[i]
		}
		// Renormalize: the chain is row-stochastic within tolerance, so the
		// correction is tiny but keeps drift from compounding.
		for i := range next {
			next[i] /= mass
		}

		var diff float64
		for i := range next {
			diff += math.Abs(next[i] - pi[i])
		}
		pi, next = next, pi
		if diff < cfg.tolerance {
			return pi, nil
		}
	}
	return nil, fmt.Errorf("after %d iterations (tolerance %v): %w",
		cfg.maxIterations, cfg.tolerance, ErrNotConverged)
}
