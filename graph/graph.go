// SPDX-License-Identifier: MIT
// Package: credrank/graph
//
// graph.go — the weighted contribution graph container.
//
// Design:
//   • Node and edge catalogs are red-black trees keyed by canonical address
//     keys, so iteration order is the canonical address order by
//     construction — no separate sort pass, no order drift.
//   • AddNode/AddEdge reject duplicates with sentinels; there is no removal:
//     the container is append-only and frozen by convention once handed to
//     the builder.
//   • Edges() filters dangling edges unless ShowDangling is set.

package graph

import (
	"fmt"
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/credrank/addr"
)

// Node is an input contribution node.
type Node struct {
	// Address uniquely identifies the node within the graph.
	Address addr.NodeAddress

	// Description is free-form text carried through to reports.
	Description string
}

// Edge is an input contribution edge. Both directions of an edge may carry
// weight; direction handling belongs to the weight evaluator, not here.
type Edge struct {
	// Address uniquely identifies the edge within the graph.
	Address addr.EdgeAddress

	// Src and Dst are node addresses; they need not be present in the node
	// catalog (such an edge is dangling and filtered by default).
	Src, Dst addr.NodeAddress

	// TimestampMs places the edge in time; it selects the epoch when an
	// endpoint is fibrated across epochs.
	TimestampMs int64
}

// EdgesOptions configures edge iteration.
type EdgesOptions struct {
	// ShowDangling includes edges with an endpoint absent from the node
	// catalog. Default false: downstream layers require non-dangling input.
	ShowDangling bool
}

// Graph is the append-only contribution graph catalog.
type Graph struct {
	nodes *redblacktree.Tree // addr key → Node
	edges *redblacktree.Tree // addr key → Edge
}

// New creates an empty contribution graph.
func New() *Graph {
	return &Graph{
		nodes: redblacktree.NewWithStringComparator(),
		edges: redblacktree.NewWithStringComparator(),
	}
}

// AddNode inserts a node; a duplicate address yields ErrNodeConflict.
func (g *Graph) AddNode(n Node) error {
	key := n.Address.Key()
	if _, found := g.nodes.Get(key); found {
		return fmt.Errorf("node %s: %w", n.Address, ErrNodeConflict)
	}
	g.nodes.Put(key, n)
	return nil
}

// AddEdge inserts an edge; a duplicate address yields ErrEdgeConflict.
// Dangling endpoints are accepted here and filtered on iteration.
func (g *Graph) AddEdge(e Edge) error {
	key := e.Address.Key()
	if _, found := g.edges.Get(key); found {
		return fmt.Errorf("edge %s: %w", e.Address, ErrEdgeConflict)
	}
	g.edges.Put(key, e)
	return nil
}

// Node returns the stored node for the address, if present.
func (g *Graph) Node(a addr.NodeAddress) (Node, bool) {
	v, found := g.nodes.Get(a.Key())
	if !found {
		return Node{}, false
	}
	return v.(Node), true
}

// HasNode reports node membership by address.
func (g *Graph) HasNode(a addr.NodeAddress) bool {
	_, found := g.nodes.Get(a.Key())
	return found
}

// NodeCount returns the number of stored nodes.
func (g *Graph) NodeCount() int { return g.nodes.Size() }

// EdgeCount returns the number of stored edges, dangling included.
func (g *Graph) EdgeCount() int { return g.edges.Size() }

// Nodes iterates stored nodes lazily in canonical address order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		it := g.nodes.Iterator()
		for it.Next() {
			if !yield(it.Value().(Node)) {
				return
			}
		}
	}
}

// Edges iterates stored edges lazily in canonical address order, filtering
// dangling edges unless opts.ShowDangling is set.
func (g *Graph) Edges(opts EdgesOptions) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		it := g.edges.Iterator()
		for it.Next() {
			e := it.Value().(Edge)
			if !opts.ShowDangling && (!g.HasNode(e.Src) || !g.HasNode(e.Dst)) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Weighted bundles a contribution graph with its weight configuration; this
// is the shape the builder consumes.
type Weighted struct {
	Graph   *Graph
	Weights *Weights
}
