// SPDX-License-Identifier: MIT
// Package markov_test — chain view contract: canonical orders, virtual node
// synthesis, prefix iteration, in-neighbors, sparse export.

package markov_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/markov"
)

// TestNodeOrder_RealThenVirtual asserts the canonical order: real nodes by
// address, then the seed, then accumulators in boundary order.
func TestNodeOrder_RealThenVirtual(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	order := g.NodeOrder()
	require.Len(t, order, 8)

	// Real nodes, address-sorted: the core/USER_EPOCH fiber precedes the
	// repo-rooted base node.
	for _, a := range order[:3] {
		require.True(t, a.HasPrefix(markov.UserEpoch.Prefix()))
	}
	require.True(t, order[3].Eq(baseAddr))
	for i := 1; i < 4; i++ {
		require.Negative(t, order[i-1].Compare(order[i]))
	}

	// Virtual tail: seed, then accumulators chronologically.
	require.True(t, order[4].Eq(markov.Seed.ToRaw()))
	require.True(t, order[5].Eq(markov.EpochAccumulator.ToRaw(markov.BoundaryNegInf)))
	require.True(t, order[6].Eq(markov.EpochAccumulator.ToRaw(0)))
	require.True(t, order[7].Eq(markov.EpochAccumulator.ToRaw(markov.BoundaryPosInf)))
}

// TestNode_SynthesizesVirtualNodes asserts on-demand materialization of the
// seed and in-range accumulators, and nil for everything else.
func TestNode_SynthesizesVirtualNodes(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	seed := g.Node(markov.Seed.ToRaw())
	require.NotNil(t, seed)
	require.Equal(t, 0.0, seed.Mint)

	acc := g.Node(markov.EpochAccumulator.ToRaw(0))
	require.NotNil(t, acc)
	require.Equal(t, 0.0, acc.Mint)

	// An accumulator outside the boundary set does not exist.
	require.Nil(t, g.Node(markov.EpochAccumulator.ToRaw(555)))
	require.Nil(t, g.Node(addr.MustNodeAddress("absent")))
}

// TestNodes_PrefixFilterIsLazy asserts prefix filtering and early
// termination of the lazy sequence.
func TestNodes_PrefixFilterIsLazy(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	var epochs int
	for range g.Nodes(markov.UserEpoch.Prefix()) {
		epochs++
	}
	require.Equal(t, 3, epochs)

	// Early break: consume exactly one element. The first node in canonical
	// order is the earliest user-epoch of the fiber.
	var first *markov.Node
	for n := range g.Nodes(addr.NodeAddress{}) {
		cp := n
		first = &cp
		break
	}
	require.NotNil(t, first)
	require.True(t, first.Address.Eq(
		markov.UserEpoch.ToRaw(markov.EpochKey{Owner: "alice-id", EpochStart: markov.BoundaryNegInf})))
}

// TestEdgeOrder_IsSorted asserts the canonical Markov-address edge order.
func TestEdgeOrder_IsSorted(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	order := g.EdgeOrder()
	require.Equal(t, g.EdgeCount(), len(order))
	for i := 1; i < len(order); i++ {
		require.Negative(t, order[i-1].Compare(order[i]),
			"edge order must be strictly ascending at %d", i)
	}
}

// TestInNeighbors asserts dst-keyed lookup: the seed collects every
// radiation edge.
func TestInNeighbors(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	var radiationIn int
	for e := range g.InNeighbors(markov.Seed.ToRaw()) {
		require.True(t, e.Dst.Eq(markov.Seed.ToRaw()))
		radiationIn++
	}
	// 3 epoch + 1 contribution + 3 accumulator radiation edges.
	require.Equal(t, 7, radiationIn)

	// A node with no in-edges yields an empty sequence, not nil panic.
	for range g.InNeighbors(addr.MustNodeAddress("absent")) {
		t.Fatal("absent node must have no in-neighbors")
	}
}

// TestToSparseChain_Alignment asserts the in-edge lists are aligned with
// the node order and reproduce the per-node inflow.
func TestToSparseChain_Alignment(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	chain, err := g.ToSparseChain()
	require.NoError(t, err)
	require.Len(t, chain.In, len(chain.NodeOrder))

	total := 0.0
	for i, in := range chain.In {
		require.Len(t, in.Weight, len(in.Neighbor), "node %s", chain.NodeOrder[i])
		for j, nb := range in.Neighbor {
			require.GreaterOrEqual(t, nb, 0)
			require.Less(t, nb, len(chain.NodeOrder))
			total += in.Weight[j]
		}
	}
	// Row-stochastic chain: total mass equals the node count minus nothing
	// (every node emits exactly 1).
	require.InDelta(t, float64(len(chain.NodeOrder)), total, 1e-6)
}

// TestToSparseChain_SumCheckViolation asserts the fatal export check on a
// tampered document.
func TestToSparseChain_SumCheckViolation(t *testing.T) {
	g, err := markov.New(minimalArgs(t))
	require.NoError(t, err)

	tampered := tamperFirstProbability(t, g, 0.42)
	bad, err := markov.FromJSON(tampered)
	require.NoError(t, err, "decoding does not re-validate the sum")

	_, err = bad.ToSparseChain()
	require.True(t, errors.Is(err, markov.ErrSumCheck))
}
