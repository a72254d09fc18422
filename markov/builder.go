// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// builder.go — New(args): six construction phases, each establishing the
// invariants the next phase relies on.
//
// Phases:
//   1. validate parameters (domain + budget) and the interval sequence
//   2. ingest base nodes (participants excluded, core prefix rejected)
//   3. build the time skeleton (user-epoch nodes, payout, webbing)
//   4. minting (seed → node edges proportional to mint share)
//   5. fibrate and absorb contribution edges (per-source budget split)
//   6. radiation (close every non-seed node's probability to 1)
//
// The builder never mutates its inputs; the returned graph is frozen.

package markov

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
	"github.com/katalvlaran/credrank/weights"
)

// probEps absorbs floating-point drift when validating probabilities and
// residuals; it is far below the 1e-3 export tolerance.
const probEps = 1e-9

// New builds the Markov process graph from the full argument set.
// All failures are construction-time and fatal; see errors.go for the
// sentinel taxonomy.
func New(args Args) (*Graph, error) {
	// Phase 1 — validate parameters and the time partition.
	remainder, err := args.Parameters.validate()
	if err != nil {
		return nil, err
	}
	if err = args.Intervals.Validate(); err != nil {
		return nil, err
	}

	b := &builder{
		args:         args,
		remainder:    remainder,
		boundaries:   epochBoundaries(args.Intervals),
		participants: make(map[string]Participant, len(args.Participants)),
		nodes:        newAddressTree(),
		edges:        newAddressTree(),
		outMass:      make(map[string]float64),
		nodeEval:     weights.NewNodeEvaluator(args.WeightedGraph.Weights),
		edgeEval:     weights.NewEdgeEvaluator(args.WeightedGraph.Weights),
	}

	for _, p := range args.Participants {
		key := p.Address.Key()
		if _, dup := b.participants[key]; dup {
			return nil, fmt.Errorf("participant %s: %w", p.Address, ErrNodeConflict)
		}
		b.participants[key] = p
	}

	for _, phase := range []func() error{
		b.ingestBaseNodes,
		b.buildTimeSkeleton,
		b.mint,
		b.fibrateContributions,
		b.radiate,
	} {
		if err = phase(); err != nil {
			return nil, err
		}
	}

	return b.finalize(), nil
}

// builder carries the mutable construction state; it is discarded once
// finalize hands out the frozen graph.
type builder struct {
	args         Args
	remainder    float64
	boundaries   []int64
	participants map[string]Participant // address key → participant

	nodes   *redblacktree.Tree // address key → *Node
	edges   *redblacktree.Tree // markov address key → *Edge
	outMass map[string]float64 // src address key → emitted probability

	nodeEval *weights.NodeEvaluator
	edgeEval *weights.EdgeEvaluator
}

// addNode inserts a node, rejecting duplicates.
func (b *builder) addNode(n *Node) error {
	key := n.Address.Key()
	if _, found := b.nodes.Get(key); found {
		return fmt.Errorf("node %s: %w", n.Address, ErrNodeConflict)
	}
	b.nodes.Put(key, n)
	return nil
}

// addEdge validates the transition probability, inserts the edge under its
// Markov address, and accumulates the source's outgoing mass.
func (b *builder) addEdge(e *Edge) error {
	p := e.TransitionProbability
	if !(p >= 0 && p <= 1+probEps) {
		return fmt.Errorf("edge %s (p=%v): %w", e.Address, p, ErrInvalidProbability)
	}
	if p > 1 {
		p = 1
		e.TransitionProbability = p
	}
	key := e.MarkovAddress().Key()
	if _, found := b.edges.Get(key); found {
		return fmt.Errorf("edge %s (reversed=%v): %w", e.Address, e.Reversed, ErrEdgeConflict)
	}
	b.edges.Put(key, e)
	b.outMass[e.Src.Key()] += p
	return nil
}

// ingestBaseNodes is phase 2: every input node that is neither a scoring
// participant nor core-prefixed becomes a base node minting its resolved
// weight.
func (b *builder) ingestBaseNodes() error {
	for n := range b.args.WeightedGraph.Graph.Nodes() {
		if _, isParticipant := b.participants[n.Address.Key()]; isParticipant {
			continue
		}
		if n.Address.HasPrefix(CoreNodePrefix) {
			return fmt.Errorf("input node %s: %w", n.Address, ErrCoreAddressReserved)
		}
		mint, err := b.nodeEval.Weight(n.Address)
		if err != nil {
			return err
		}
		if err = b.addNode(&Node{
			Address:     n.Address,
			Description: n.Description,
			Mint:        mint,
		}); err != nil {
			return err
		}
	}
	return nil
}

// buildTimeSkeleton is phase 3: user-epoch nodes per (participant,
// boundary), payout edges to the per-boundary accumulators, and temporal
// webbing between consecutive boundaries. Accumulators themselves stay
// virtual.
func (b *builder) buildTimeSkeleton() error {
	params := b.args.Parameters
	for _, p := range b.args.Participants {
		for i, boundary := range b.boundaries {
			k := EpochKey{Owner: p.ID, EpochStart: boundary}
			if err := b.addNode(UserEpoch.Materialize(k)); err != nil {
				return err
			}
			if err := b.addEdge(Payout.Materialize(k, params.Beta)); err != nil {
				return err
			}
			if i > 0 {
				prev := b.boundaries[i-1]
				if err := b.addEdge(ForwardWebbing.Materialize(p.ID, prev, boundary, params.GammaForward)); err != nil {
					return err
				}
				if err := b.addEdge(BackwardWebbing.Materialize(p.ID, prev, boundary, params.GammaBackward)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// mint is phase 4: seed → node edges proportional to each node's share of
// the total mint. A graph without any minting node cannot route seed
// outflow and is rejected.
func (b *builder) mint() error {
	var totalMint float64
	it := b.nodes.Iterator()
	for it.Next() {
		totalMint += it.Value().(*Node).Mint
	}
	if totalMint == 0 {
		return ErrNoMintingSource
	}

	it = b.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		if n.Mint <= 0 {
			continue
		}
		if err := b.addEdge(SeedMint.Materialize(n.Address, n.Mint/totalMint)); err != nil {
			return err
		}
	}
	return nil
}

// contributionCandidate is one direction of a weighted input edge after
// endpoint rewriting.
type contributionCandidate struct {
	edge   graph.Edge
	rev    bool
	src    addr.NodeAddress
	dst    addr.NodeAddress
	weight float64
}

// fibrateContributions is phase 5: split each non-dangling input edge into
// its two directed candidates, rewrite participant endpoints onto the
// user-epoch node of the edge's timestamp, then apportion each source's
// out-budget across its candidates proportionally to weight.
func (b *builder) fibrateContributions() error {
	var (
		candidates []contributionCandidate
		groupTotal = make(map[string]float64) // rewritten src key → Σ weight
	)

	for e := range b.args.WeightedGraph.Graph.Edges(graph.EdgesOptions{}) {
		w, err := b.edgeEval.Weight(e.Address)
		if err != nil {
			return err
		}
		src := b.rewriteEpochEndpoint(e.Src, e.TimestampMs)
		dst := b.rewriteEpochEndpoint(e.Dst, e.TimestampMs)
		if w.Forwards > 0 {
			candidates = append(candidates, contributionCandidate{
				edge: e, rev: false, src: src, dst: dst, weight: w.Forwards,
			})
			groupTotal[src.Key()] += w.Forwards
		}
		if w.Backwards > 0 {
			candidates = append(candidates, contributionCandidate{
				edge: e, rev: true, src: dst, dst: src, weight: w.Backwards,
			})
			groupTotal[dst.Key()] += w.Backwards
		}
	}

	for _, c := range candidates {
		budget := 1 - b.args.Parameters.Alpha
		if c.src.HasPrefix(UserEpoch.Prefix()) {
			budget = b.remainder
		}
		prob := c.weight / groupTotal[c.src.Key()] * budget
		if err := b.addEdge(&Edge{
			Address:               c.edge.Address,
			Reversed:              c.rev,
			Src:                   c.src,
			Dst:                   c.dst,
			TransitionProbability: prob,
		}); err != nil {
			return err
		}
	}
	return nil
}

// rewriteEpochEndpoint maps a participant address onto the user-epoch node
// of the boundary immediately preceding t; any other address is unchanged.
func (b *builder) rewriteEpochEndpoint(a addr.NodeAddress, t int64) addr.NodeAddress {
	p, isParticipant := b.participants[a.Key()]
	if !isParticipant {
		return a
	}
	return UserEpoch.ToRaw(EpochKey{Owner: p.ID, EpochStart: boundaryFor(b.boundaries, t)})
}

// radiate is phase 6: every node except the seed closes its outgoing mass
// to exactly 1 with a radiation edge routed through the gadget matching its
// class. A user-epoch node with no outgoing contributions therefore sends
// its whole leftover budget (remainder plus unspent headroom) to the seed.
func (b *builder) radiate() error {
	it := b.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		residual, err := b.residual(n.Address)
		if err != nil {
			return err
		}
		switch {
		case n.Address.HasPrefix(UserEpoch.Prefix()):
			k, kerr := UserEpoch.FromRaw(n.Address)
			if kerr != nil {
				return kerr
			}
			err = b.addEdge(EpochRadiation.Materialize(k, residual))
		case n.Address.HasPrefix(CoreNodePrefix):
			// Stored nodes under the core prefix can only be user-epoch;
			// anything else slipped past ingestion and is a hard fault.
			return fmt.Errorf("unclassifiable core node %s: %w", n.Address, ErrCoreAddressReserved)
		default:
			err = b.addEdge(ContributionRadiation.Materialize(n.Address, residual))
		}
		if err != nil {
			return err
		}
	}

	// Virtual accumulators: no other out-edges, so radiation carries 1.
	for _, boundary := range b.boundaries {
		residual, err := b.residual(EpochAccumulator.ToRaw(boundary))
		if err != nil {
			return err
		}
		if err = b.addEdge(AccumulatorRadiation.Materialize(boundary, residual)); err != nil {
			return err
		}
	}
	return nil
}

// residual computes 1 − outMass for a node, rejecting over-committed
// sources and clamping floating-point dust to zero.
func (b *builder) residual(a addr.NodeAddress) (float64, error) {
	p := 1 - b.outMass[a.Key()]
	if p < -probEps {
		return 0, fmt.Errorf("node %s over-committed (out mass %v): %w",
			a, b.outMass[a.Key()], ErrInvalidProbability)
	}
	if p < 0 {
		p = 0
	}
	return p, nil
}

// finalize freezes the construction state into the public Graph and
// precomputes the canonical node order and in-edge index.
func (b *builder) finalize() *Graph {
	participants := make([]Participant, len(b.args.Participants))
	copy(participants, b.args.Participants)

	g := &Graph{
		nodes:        b.nodes,
		edges:        b.edges,
		participants: participants,
		boundaries:   b.boundaries,
	}
	g.index()
	return g
}
