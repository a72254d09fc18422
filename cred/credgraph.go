// SPDX-License-Identifier: MIT
// Package: credrank/cred
//
// credgraph.go — the score binding and its reporting surface.
//
// Determinism:
//   • All iteration orders are inherited from the underlying chain.
//   • Participant reports follow the original participant order; per-epoch
//     entries follow boundary order.

package cred

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/markov"
)

// Node is a chain node with its cred score attached.
type Node struct {
	markov.Node

	// Cred is the stationary probability mass of the node.
	Cred float64
}

// Edge is a chain edge with its steady-state cred flow attached.
type Edge struct {
	markov.Edge

	// CredFlow is cred(src) · transitionProbability: the mass traversing
	// the edge per step in steady state.
	CredFlow float64
}

// ParticipantCred is one participant's score report.
type ParticipantCred struct {
	markov.Participant

	// Cred is the participant's total: the sum of CredPerEpoch.
	Cred float64

	// CredPerEpoch is aligned with the chain's epoch boundaries; entry i is
	// the cred flowing through the payout edge at boundary i.
	CredPerEpoch []float64
}

// Graph binds a score vector in node order onto a frozen chain.
type Graph struct {
	mpg    *markov.Graph
	scores []float64
}

// New validates and binds scores onto the chain. The vector must align with
// the chain's full node order and contain only finite, non-negative values.
func New(mpg *markov.Graph, scores []float64) (*Graph, error) {
	if len(scores) != mpg.NodeCount() {
		return nil, fmt.Errorf("got %d scores for %d nodes: %w",
			len(scores), mpg.NodeCount(), ErrScoreMismatch)
	}
	for i, s := range scores {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("score[%d] = %v: %w", i, s, ErrBadScore)
		}
	}
	bound := make([]float64, len(scores))
	copy(bound, scores)
	return &Graph{mpg: mpg, scores: bound}, nil
}

// MarkovGraph returns the underlying chain.
func (g *Graph) MarkovGraph() *markov.Graph { return g.mpg }

// Scores returns a copy of the bound score vector, aligned with the chain's
// node order.
func (g *Graph) Scores() []float64 {
	out := make([]float64, len(g.scores))
	copy(out, g.scores)
	return out
}

// cred resolves a node address to its score; false for foreign addresses.
func (g *Graph) cred(a addr.NodeAddress) (float64, bool) {
	i, ok := g.mpg.NodeIndex(a)
	if !ok {
		return 0, false
	}
	return g.scores[i], true
}

// Node returns the scored node at the address, virtual nodes included, or
// nil for addresses outside the graph.
func (g *Graph) Node(a addr.NodeAddress) *Node {
	n := g.mpg.Node(a)
	if n == nil {
		return nil
	}
	score, _ := g.cred(a)
	return &Node{Node: *n, Cred: score}
}

// Nodes iterates scored nodes lazily in canonical order, filtered by
// address prefix.
func (g *Graph) Nodes(prefix addr.NodeAddress) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n := range g.mpg.Nodes(prefix) {
			score, _ := g.cred(n.Address)
			if !yield(Node{Node: n, Cred: score}) {
				return
			}
		}
	}
}

// Edges iterates scored edges lazily in canonical edge order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.mpg.Edges() {
			score, _ := g.cred(e.Src)
			if !yield(Edge{Edge: e, CredFlow: score * e.TransitionProbability}) {
				return
			}
		}
	}
}

// InNeighbors iterates the scored edges pointing at the address.
func (g *Graph) InNeighbors(a addr.NodeAddress) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.mpg.InNeighbors(a) {
			score, _ := g.cred(e.Src)
			if !yield(Edge{Edge: e, CredFlow: score * e.TransitionProbability}) {
				return
			}
		}
	}
}

// Participants reports every participant's cred: the flow through its
// payout edge at each boundary, summed into a total.
func (g *Graph) Participants() ([]ParticipantCred, error) {
	boundaries := g.mpg.EpochBoundaries()
	out := make([]ParticipantCred, 0, len(g.mpg.Participants()))

	for _, p := range g.mpg.Participants() {
		perEpoch := make([]float64, len(boundaries))
		total := 0.0
		for i, boundary := range boundaries {
			k := markov.EpochKey{Owner: p.ID, EpochStart: boundary}
			payout := markov.Payout.Materialize(k, 0)
			e := g.mpg.Edge(payout.MarkovAddress())
			if e == nil {
				return nil, fmt.Errorf("participant %s at %d: %w", p.ID, boundary, ErrMissingPayout)
			}
			score, _ := g.cred(e.Src)
			perEpoch[i] = score * e.TransitionProbability
			total += perEpoch[i]
		}
		out = append(out, ParticipantCred{Participant: p, Cred: total, CredPerEpoch: perEpoch})
	}
	return out, nil
}
