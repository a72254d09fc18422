// SPDX-License-Identifier: MIT
// Package: credrank/weights
//
// evaluator.go — node and edge weight evaluators.
//
// Design:
//   • Resolution walks the prefix chain of the queried address and multiplies
//     every configured entry; O(depth) exact lookups per miss.
//   • Resolved weights are memoized in a bounded LRU keyed by canonical
//     address key; the cache is an internal detail and does not change
//     observable behavior.
//   • Validation is eager: a negative or non-finite entry fails the lookup
//     with a sentinel naming the offending address.

package weights

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
)

// defaultCacheSize bounds the per-evaluator memo. Sized for typical
// contribution graphs (tens of thousands of addresses) without letting a
// pathological input grow the memo unboundedly.
const defaultCacheSize = 4096

// Option configures an evaluator.
type Option func(*config)

type config struct {
	cacheSize int
}

// WithCacheSize overrides the memo capacity. Panics on n < 1 (programmer
// error at configuration time, per option-constructor policy).
func WithCacheSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("weights: cache size must be >= 1, got %d", n))
	}
	return func(c *config) { c.cacheSize = n }
}

func newConfig(opts []Option) config {
	cfg := config{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NodeEvaluator resolves node weights with prefix inheritance.
type NodeEvaluator struct {
	weights *graph.Weights
	memo    *lru.Cache[string, float64]
}

// NewNodeEvaluator builds an evaluator over the given configuration.
// The configuration must not be mutated while the evaluator is in use.
func NewNodeEvaluator(w *graph.Weights, opts ...Option) *NodeEvaluator {
	cfg := newConfig(opts)
	memo, err := lru.New[string, float64](cfg.cacheSize)
	if err != nil {
		// lru.New fails only on non-positive size, which WithCacheSize
		// already excludes.
		panic(err)
	}
	return &NodeEvaluator{weights: w, memo: memo}
}

// Weight resolves the inherited weight of a node address.
// Returns ErrInvalidNodeWeight for negative or non-finite results.
func (ev *NodeEvaluator) Weight(a addr.NodeAddress) (float64, error) {
	key := a.Key()
	if cached, ok := ev.memo.Get(key); ok {
		return cached, nil
	}

	product := 1.0
	parts := a.Parts()
	for i := 0; i <= len(parts); i++ {
		prefix := addr.NodeAddress(parts[:i])
		entry, found := ev.weights.NodeWeight(prefix)
		if !found {
			continue
		}
		if err := validWeight(entry); err != nil {
			return 0, fmt.Errorf("node prefix %s (weight %v): %w", prefix, entry, ErrInvalidNodeWeight)
		}
		product *= entry
	}
	if err := validWeight(product); err != nil {
		return 0, fmt.Errorf("node %s (resolved %v): %w", a, product, ErrInvalidNodeWeight)
	}

	ev.memo.Add(key, product)
	return product, nil
}

// EdgeEvaluator resolves directional edge weights with prefix inheritance.
type EdgeEvaluator struct {
	weights *graph.Weights
	memo    *lru.Cache[string, graph.EdgeWeight]
}

// NewEdgeEvaluator builds an evaluator over the given configuration.
// The configuration must not be mutated while the evaluator is in use.
func NewEdgeEvaluator(w *graph.Weights, opts ...Option) *EdgeEvaluator {
	cfg := newConfig(opts)
	memo, err := lru.New[string, graph.EdgeWeight](cfg.cacheSize)
	if err != nil {
		panic(err)
	}
	return &EdgeEvaluator{weights: w, memo: memo}
}

// Weight resolves the inherited (forwards, backwards) weights of an edge
// address. Returns ErrInvalidEdgeWeight for negative or non-finite results.
func (ev *EdgeEvaluator) Weight(a addr.EdgeAddress) (graph.EdgeWeight, error) {
	key := a.Key()
	if cached, ok := ev.memo.Get(key); ok {
		return cached, nil
	}

	resolved := graph.EdgeWeight{Forwards: 1, Backwards: 1}
	parts := a.Parts()
	for i := 0; i <= len(parts); i++ {
		prefix := addr.EdgeAddress(parts[:i])
		entry, found := ev.weights.EdgeWeight(prefix)
		if !found {
			continue
		}
		if err := validWeight(entry.Forwards); err != nil {
			return graph.EdgeWeight{}, fmt.Errorf("edge prefix %s (forwards %v): %w", prefix, entry.Forwards, ErrInvalidEdgeWeight)
		}
		if err := validWeight(entry.Backwards); err != nil {
			return graph.EdgeWeight{}, fmt.Errorf("edge prefix %s (backwards %v): %w", prefix, entry.Backwards, ErrInvalidEdgeWeight)
		}
		resolved.Forwards *= entry.Forwards
		resolved.Backwards *= entry.Backwards
	}
	if validWeight(resolved.Forwards) != nil || validWeight(resolved.Backwards) != nil {
		return graph.EdgeWeight{}, fmt.Errorf("edge %s (resolved %+v): %w", a, resolved, ErrInvalidEdgeWeight)
	}

	ev.memo.Add(key, resolved)
	return resolved, nil
}

// validWeight accepts finite, non-negative scalars.
func validWeight(w float64) error {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight %v out of domain", w)
	}
	return nil
}
