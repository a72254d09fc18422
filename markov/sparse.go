// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// sparse.go — the compact in-edge representation handed to the stationary
// distribution solver.
//
// Layout mirrors the serialization: a node order plus, per node, the
// indices of its in-neighbors and the corresponding transition
// probabilities. Duplicate and parallel edges stay distinct entries; the
// exporter never regroups by source.

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/credrank/addr"
)

// SumTolerance bounds the allowed deviation of a node's outgoing
// probability mass from 1 at export time.
const SumTolerance = 1e-3

// InEdges lists the in-neighbors of one node, aligned pairwise: Neighbor[i]
// is an index into the chain's NodeOrder, Weight[i] the transition
// probability of that edge.
type InEdges struct {
	Neighbor []int
	Weight   []float64
}

// SparseChain is the solver-facing representation of the graph.
type SparseChain struct {
	// NodeOrder is the canonical node order of the source graph.
	NodeOrder []addr.NodeAddress

	// In holds the in-edge lists, aligned with NodeOrder.
	In []InEdges
}

// ToSparseChain exports the chain after verifying that every node's
// outgoing probabilities sum to 1 within SumTolerance; a violation is fatal
// and names the offending node.
func (g *Graph) ToSparseChain() (*SparseChain, error) {
	outMass := make(map[string]float64, len(g.nodeOrder))
	for e := range g.Edges() {
		outMass[e.Src.Key()] += e.TransitionProbability
	}
	for _, a := range g.nodeOrder {
		if mass := outMass[a.Key()]; math.Abs(mass-1) > SumTolerance {
			return nil, fmt.Errorf("node %s (out mass %v): %w", a, mass, ErrSumCheck)
		}
	}

	chain := &SparseChain{
		NodeOrder: g.NodeOrder(),
		In:        make([]InEdges, len(g.nodeOrder)),
	}
	for e := range g.Edges() {
		srcIdx, ok := g.NodeIndex(e.Src)
		if !ok {
			return nil, fmt.Errorf("edge %s src %s not in node order: %w", e.Address, e.Src, ErrBadDocument)
		}
		dstIdx, ok := g.NodeIndex(e.Dst)
		if !ok {
			return nil, fmt.Errorf("edge %s dst %s not in node order: %w", e.Address, e.Dst, ErrBadDocument)
		}
		in := &chain.In[dstIdx]
		in.Neighbor = append(in.Neighbor, srcIdx)
		in.Weight = append(in.Weight, e.TransitionProbability)
	}
	return chain, nil
}
