// SPDX-License-Identifier: MIT
// Package: credrank/graph
//
// weights.go — weight configuration with prefix-based inheritance.
//
// Semantics:
//   • A weight set on an address applies to every address it prefixes;
//     weights along the prefix chain combine multiplicatively.
//   • Resolution itself lives in the weights package evaluator; this type
//     only stores the raw per-prefix entries.

package graph

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/credrank/addr"
)

// EdgeWeight carries the two directional weights of an edge prefix.
type EdgeWeight struct {
	// Forwards weights flow src → dst.
	Forwards float64

	// Backwards weights flow dst → src.
	Backwards float64
}

// Weights stores per-prefix node and edge weight entries. The zero weight
// is meaningful (it suppresses minting / flow); absence means "inherit".
type Weights struct {
	node *redblacktree.Tree // node addr key → float64
	edge *redblacktree.Tree // edge addr key → EdgeWeight
}

// NewWeights creates an empty weight configuration.
func NewWeights() *Weights {
	return &Weights{
		node: redblacktree.NewWithStringComparator(),
		edge: redblacktree.NewWithStringComparator(),
	}
}

// SetNode assigns a node weight to a prefix, overwriting a prior entry.
func (w *Weights) SetNode(prefix addr.NodeAddress, weight float64) {
	w.node.Put(prefix.Key(), weight)
}

// SetEdge assigns directional edge weights to a prefix, overwriting a prior
// entry.
func (w *Weights) SetEdge(prefix addr.EdgeAddress, weight EdgeWeight) {
	w.edge.Put(prefix.Key(), weight)
}

// NodeWeight returns the exact entry for a prefix, if set. No inheritance
// is applied here.
func (w *Weights) NodeWeight(prefix addr.NodeAddress) (float64, bool) {
	v, found := w.node.Get(prefix.Key())
	if !found {
		return 0, false
	}
	return v.(float64), true
}

// EdgeWeight returns the exact entry for a prefix, if set. No inheritance
// is applied here.
func (w *Weights) EdgeWeight(prefix addr.EdgeAddress) (EdgeWeight, bool) {
	v, found := w.edge.Get(prefix.Key())
	if !found {
		return EdgeWeight{}, false
	}
	return v.(EdgeWeight), true
}

// NodeEntries iterates (prefix, weight) node entries in canonical order.
func (w *Weights) NodeEntries() iter.Seq2[addr.NodeAddress, float64] {
	return func(yield func(addr.NodeAddress, float64) bool) {
		it := w.node.Iterator()
		for it.Next() {
			a, err := addr.ParseNodeKey(it.Key().(string))
			if err != nil {
				// Keys are produced by addr.Key; a parse failure here is a
				// programmer error, not a user condition.
				panic(err)
			}
			if !yield(a, it.Value().(float64)) {
				return
			}
		}
	}
}

// EdgeEntries iterates (prefix, weight) edge entries in canonical order.
func (w *Weights) EdgeEntries() iter.Seq2[addr.EdgeAddress, EdgeWeight] {
	return func(yield func(addr.EdgeAddress, EdgeWeight) bool) {
		it := w.edge.Iterator()
		for it.Next() {
			a, err := addr.ParseEdgeKey(it.Key().(string))
			if err != nil {
				panic(err)
			}
			if !yield(a, it.Value().(EdgeWeight)) {
				return
			}
		}
	}
}
