// SPDX-License-Identifier: MIT
// Package graph_test verifies catalog uniqueness, canonical iteration order,
// dangling-edge filtering, and interval validation.

package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
)

func node(parts ...string) graph.Node {
	return graph.Node{Address: addr.MustNodeAddress(parts...)}
}

// TestGraph_DuplicateNodeAndEdge asserts the conflict sentinels.
func TestGraph_DuplicateNodeAndEdge(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(node("repo", "issue", "1")))

	err := g.AddNode(node("repo", "issue", "1"))
	require.True(t, errors.Is(err, graph.ErrNodeConflict))

	e := graph.Edge{
		Address: addr.MustEdgeAddress("authors", "1"),
		Src:     addr.MustNodeAddress("repo", "issue", "1"),
		Dst:     addr.MustNodeAddress("repo", "issue", "1"),
	}
	require.NoError(t, g.AddEdge(e))
	require.True(t, errors.Is(g.AddEdge(e), graph.ErrEdgeConflict))
}

// TestGraph_NodesIterateInAddressOrder asserts canonical ordering without an
// explicit sort call: the catalog order IS the address order.
func TestGraph_NodesIterateInAddressOrder(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(node("b")))
	require.NoError(t, g.AddNode(node("a", "z")))
	require.NoError(t, g.AddNode(node("a")))

	var got []string
	for n := range g.Nodes() {
		got = append(got, n.Address.String())
	}
	require.Equal(t, []string{"a", "a/z", "b"}, got)
}

// TestGraph_EdgesFilterDangling asserts that edges with a missing endpoint
// are hidden by default and visible with ShowDangling.
func TestGraph_EdgesFilterDangling(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode(node("present")))

	ok := graph.Edge{
		Address: addr.MustEdgeAddress("loop"),
		Src:     addr.MustNodeAddress("present"),
		Dst:     addr.MustNodeAddress("present"),
	}
	dangling := graph.Edge{
		Address: addr.MustEdgeAddress("dangling"),
		Src:     addr.MustNodeAddress("present"),
		Dst:     addr.MustNodeAddress("absent"),
	}
	require.NoError(t, g.AddEdge(ok))
	require.NoError(t, g.AddEdge(dangling))

	count := 0
	for range g.Edges(graph.EdgesOptions{}) {
		count++
	}
	require.Equal(t, 1, count, "dangling edge must be filtered by default")

	count = 0
	for range g.Edges(graph.EdgesOptions{ShowDangling: true}) {
		count++
	}
	require.Equal(t, 2, count)
}

// TestIntervals_Validate covers ordered/contiguous acceptance and the three
// rejection classes.
func TestIntervals_Validate(t *testing.T) {
	cases := []struct {
		name    string
		spans   graph.Intervals
		wantErr bool
	}{
		{"empty is valid", graph.Intervals{}, false},
		{"single", graph.Intervals{{0, 10}}, false},
		{"contiguous pair", graph.Intervals{{0, 10}, {10, 20}}, false},
		{"gap", graph.Intervals{{0, 10}, {15, 20}}, true},
		{"overlap", graph.Intervals{{0, 10}, {5, 20}}, true},
		{"empty span", graph.Intervals{{10, 10}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spans.Validate()
			if tc.wantErr {
				require.True(t, errors.Is(err, graph.ErrBadInterval))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestWeights_ExactLookup asserts store/lookup without inheritance (the
// evaluator owns inheritance).
func TestWeights_ExactLookup(t *testing.T) {
	w := graph.NewWeights()
	w.SetNode(addr.MustNodeAddress("repo"), 2.5)
	w.SetEdge(addr.MustEdgeAddress("authors"), graph.EdgeWeight{Forwards: 1, Backwards: 0.5})

	got, found := w.NodeWeight(addr.MustNodeAddress("repo"))
	require.True(t, found)
	require.Equal(t, 2.5, got)

	_, found = w.NodeWeight(addr.MustNodeAddress("repo", "issue"))
	require.False(t, found, "exact lookup must not inherit")

	ew, found := w.EdgeWeight(addr.MustEdgeAddress("authors"))
	require.True(t, found)
	require.Equal(t, 0.5, ew.Backwards)
}

// TestWeights_EntriesIterateInCanonicalOrder asserts the entry sequences
// yield (prefix, weight) pairs in address order.
func TestWeights_EntriesIterateInCanonicalOrder(t *testing.T) {
	w := graph.NewWeights()
	w.SetNode(addr.MustNodeAddress("b"), 2)
	w.SetNode(addr.MustNodeAddress("a"), 1)
	w.SetEdge(addr.MustEdgeAddress("z"), graph.EdgeWeight{Forwards: 3})

	var nodePrefixes []string
	for prefix, weight := range w.NodeEntries() {
		nodePrefixes = append(nodePrefixes, prefix.String())
		require.Positive(t, weight)
	}
	require.Equal(t, []string{"a", "b"}, nodePrefixes)

	var edgeCount int
	for prefix, ew := range w.EdgeEntries() {
		require.Equal(t, "z", prefix.String())
		require.Equal(t, 3.0, ew.Forwards)
		edgeCount++
	}
	require.Equal(t, 1, edgeCount)
}
