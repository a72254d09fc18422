// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// graph.go — the immutable chain view over the built node and edge maps.
//
// Determinism:
//   • NodeOrder is real nodes in address order, then the seed, then one
//     accumulator per boundary in boundary order.
//   • EdgeOrder is the Markov-address order (direction part first, then the
//     edge address parts).
// Concurrency:
//   • The graph is frozen at construction; every accessor is read-only and
//     safe for concurrent use without locks.

package markov

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/credrank/addr"
)

// newAddressTree backs every address-keyed catalog: canonical keys sort
// byte-wise exactly like addresses sort part-wise, so in-order traversal is
// the canonical iteration order.
func newAddressTree() *redblacktree.Tree {
	return redblacktree.NewWithStringComparator()
}

// Graph is the frozen Markov process graph.
type Graph struct {
	nodes        *redblacktree.Tree // address key → *Node (real nodes only)
	edges        *redblacktree.Tree // markov address key → *Edge
	participants []Participant
	boundaries   []int64 // full sequence, ±∞ sentinels included

	// Precomputed at finalize/decode time; read-only afterwards.
	nodeOrder   []addr.NodeAddress
	nodeIndex   map[string]int // address key → position in nodeOrder
	boundarySet map[int64]bool
	inEdges     map[string][]*Edge // dst address key → edges in edge order
}

// index precomputes the canonical node order, its inverse, and the
// in-neighbor lists. Called before the graph escapes: once by finalize, and
// by the decoder once after nodes and again after edges are loaded.
func (g *Graph) index() {
	g.nodeOrder = make([]addr.NodeAddress, 0, g.nodes.Size()+1+len(g.boundaries))
	it := g.nodes.Iterator()
	for it.Next() {
		g.nodeOrder = append(g.nodeOrder, it.Value().(*Node).Address)
	}
	g.nodeOrder = append(g.nodeOrder, Seed.ToRaw())
	for _, b := range g.boundaries {
		g.nodeOrder = append(g.nodeOrder, EpochAccumulator.ToRaw(b))
	}

	g.nodeIndex = make(map[string]int, len(g.nodeOrder))
	for i, a := range g.nodeOrder {
		g.nodeIndex[a.Key()] = i
	}

	g.boundarySet = make(map[int64]bool, len(g.boundaries))
	for _, b := range g.boundaries {
		g.boundarySet[b] = true
	}

	g.inEdges = make(map[string][]*Edge)
	eit := g.edges.Iterator()
	for eit.Next() {
		e := eit.Value().(*Edge)
		key := e.Dst.Key()
		g.inEdges[key] = append(g.inEdges[key], e)
	}
}

// NodeOrder returns the canonical node order as a fresh slice: real nodes
// sorted by address, then the seed, then accumulators in boundary order.
func (g *Graph) NodeOrder() []addr.NodeAddress {
	out := make([]addr.NodeAddress, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// NodeCount returns the size of the full node order, virtual nodes included.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// Node returns the node at the address, synthesizing virtual nodes (seed,
// accumulators) on demand. Returns nil for addresses outside the graph.
func (g *Graph) Node(a addr.NodeAddress) *Node {
	if v, found := g.nodes.Get(a.Key()); found {
		n := v.(*Node)
		cp := *n
		return &cp
	}
	if Seed.Matches(a) {
		return Seed.Materialize()
	}
	if a.HasPrefix(EpochAccumulator.Prefix()) {
		boundary, err := EpochAccumulator.FromRaw(a)
		if err == nil && g.boundarySet[boundary] {
			return EpochAccumulator.Materialize(boundary)
		}
	}
	return nil
}

// Nodes iterates nodes lazily in canonical order, filtered by address
// prefix. An empty prefix yields every node, virtual ones included.
func (g *Graph) Nodes(prefix addr.NodeAddress) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, a := range g.nodeOrder {
			if !a.HasPrefix(prefix) {
				continue
			}
			if !yield(*g.Node(a)) {
				return
			}
		}
	}
}

// EdgeOrder returns the canonical edge order (by Markov address) as a fresh
// slice of Markov addresses.
func (g *Graph) EdgeOrder() []addr.EdgeAddress {
	out := make([]addr.EdgeAddress, 0, g.edges.Size())
	it := g.edges.Iterator()
	for it.Next() {
		e := it.Value().(*Edge)
		out = append(out, e.MarkovAddress())
	}
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges.Size() }

// Edge returns the edge stored under the given Markov address, or nil.
func (g *Graph) Edge(markovAddress addr.EdgeAddress) *Edge {
	v, found := g.edges.Get(markovAddress.Key())
	if !found {
		return nil
	}
	e := v.(*Edge)
	cp := *e
	return &cp
}

// Edges iterates edges lazily in canonical edge order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		it := g.edges.Iterator()
		for it.Next() {
			if !yield(*it.Value().(*Edge)) {
				return
			}
		}
	}
}

// InNeighbors iterates the edges pointing at the address, in edge order.
func (g *Graph) InNeighbors(a addr.NodeAddress) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.inEdges[a.Key()] {
			if !yield(*e) {
				return
			}
		}
	}
}

// Participants returns the participants in their original caller order.
func (g *Graph) Participants() []Participant {
	out := make([]Participant, len(g.participants))
	copy(out, g.participants)
	return out
}

// EpochBoundaries returns the full boundary sequence, ±∞ sentinels
// included.
func (g *Graph) EpochBoundaries() []int64 {
	out := make([]int64, len(g.boundaries))
	copy(out, g.boundaries)
	return out
}

// NodeIndex resolves an address to its position in the canonical node
// order; false for addresses outside the graph.
func (g *Graph) NodeIndex(a addr.NodeAddress) (int, bool) {
	i, ok := g.nodeIndex[a.Key()]
	return i, ok
}
