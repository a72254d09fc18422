// SPDX-License-Identifier: MIT
// Package markov_test — codec contract: byte-stable encoding, structural
// round-trips, and envelope rejection.

package markov_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
	"github.com/katalvlaran/credrank/markov"
)

// nontrivialGraph builds a fixture with contributions, fibration, and
// reversed edges — enough structure to make round-trip failures visible.
func nontrivialGraph(t *testing.T) *markov.Graph {
	t.Helper()
	args := minimalArgs(t)
	g := args.WeightedGraph.Graph
	require.NoError(t, g.AddNode(graph.Node{Address: participantAddr, Description: "alice"}))
	require.NoError(t, g.AddNode(graph.Node{Address: addr.MustNodeAddress("repo", "post", "2"), Description: "another post"}))
	require.NoError(t, g.AddEdge(graph.Edge{
		Address: addr.MustEdgeAddress("authored", "1"), Src: participantAddr, Dst: baseAddr, TimestampMs: -5,
	}))
	require.NoError(t, g.AddEdge(graph.Edge{
		Address: addr.MustEdgeAddress("authored", "2"), Src: participantAddr, Dst: baseAddr, TimestampMs: 5,
	}))
	require.NoError(t, g.AddEdge(graph.Edge{
		Address:     addr.MustEdgeAddress("references", "1"),
		Src:         addr.MustNodeAddress("repo", "post", "2"),
		Dst:         baseAddr,
		TimestampMs: 7,
	}))
	args.WeightedGraph.Weights.SetEdge(addr.MustEdgeAddress("references"), graph.EdgeWeight{Forwards: 2, Backwards: 0.5})

	built, err := markov.New(args)
	require.NoError(t, err)
	return built
}

// tamperFirstProbability re-encodes the graph with the first indexed edge's
// probability replaced, bypassing the builder's invariants.
func tamperFirstProbability(t *testing.T, g *markov.Graph, p float64) []byte {
	t.Helper()
	data, err := g.ToJSON()
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env["payload"], &payload))
	var edges []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["indexedEdges"], &edges))
	require.NotEmpty(t, edges)
	edges[0]["transitionProbability"] = p

	payload["indexedEdges"], err = json.Marshal(edges)
	require.NoError(t, err)
	env["payload"], err = json.Marshal(payload)
	require.NoError(t, err)
	out, err := json.Marshal(env)
	require.NoError(t, err)
	return out
}

// TestCodec_RoundTrip asserts decode(encode(G)) ≡ G structurally: node
// order, edge order, and every transition probability bit-for-bit.
func TestCodec_RoundTrip(t *testing.T) {
	g := nontrivialGraph(t)

	data, err := g.ToJSON()
	require.NoError(t, err)

	back, err := markov.FromJSON(data)
	require.NoError(t, err)

	wantNodes, gotNodes := g.NodeOrder(), back.NodeOrder()
	require.Equal(t, len(wantNodes), len(gotNodes))
	for i := range wantNodes {
		require.True(t, wantNodes[i].Eq(gotNodes[i]), "node order diverges at %d", i)
	}

	wantEdges, gotEdges := g.EdgeOrder(), back.EdgeOrder()
	require.Equal(t, len(wantEdges), len(gotEdges))
	for i := range wantEdges {
		require.True(t, wantEdges[i].Eq(gotEdges[i]), "edge order diverges at %d", i)
		// Bit-for-bit probability equality, not within-tolerance.
		require.Equal(t,
			g.Edge(wantEdges[i]).TransitionProbability,
			back.Edge(gotEdges[i]).TransitionProbability)
	}

	require.Equal(t, g.Participants(), back.Participants())
	require.Equal(t, g.EpochBoundaries(), back.EpochBoundaries())
}

// TestCodec_ByteStable asserts identical bytes across rebuild and across
// re-encoding of a decoded graph.
func TestCodec_ByteStable(t *testing.T) {
	first, err := nontrivialGraph(t).ToJSON()
	require.NoError(t, err)
	second, err := nontrivialGraph(t).ToJSON()
	require.NoError(t, err)
	require.Equal(t, first, second, "identical inputs must encode to identical bytes")

	decoded, err := markov.FromJSON(first)
	require.NoError(t, err)
	reencoded, err := decoded.ToJSON()
	require.NoError(t, err)
	require.Equal(t, first, reencoded, "decode/encode must be byte-stable")
}

// TestCodec_RejectsUnknownEnvelope asserts ErrVersionMismatch for foreign
// type and version strings.
func TestCodec_RejectsUnknownEnvelope(t *testing.T) {
	data, err := nontrivialGraph(t).ToJSON()
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))

	for field, value := range map[string]string{
		"type":    "sourcecred/somethingElse",
		"version": "9.9.9",
	} {
		mutated := make(map[string]json.RawMessage, len(env))
		for k, v := range env {
			mutated[k] = v
		}
		raw, merr := json.Marshal(value)
		require.NoError(t, merr)
		mutated[field] = raw
		bad, merr := json.Marshal(mutated)
		require.NoError(t, merr)

		_, derr := markov.FromJSON(bad)
		require.True(t, errors.Is(derr, markov.ErrVersionMismatch), "mutated %s", field)
	}
}

// TestCodec_RejectsOutOfRangeIndex asserts ErrBadDocument on a corrupted
// endpoint index.
func TestCodec_RejectsOutOfRangeIndex(t *testing.T) {
	data, err := nontrivialGraph(t).ToJSON()
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env["payload"], &payload))
	var edges []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["indexedEdges"], &edges))
	edges[0]["src"] = 10_000

	payload["indexedEdges"], err = json.Marshal(edges)
	require.NoError(t, err)
	env["payload"], err = json.Marshal(payload)
	require.NoError(t, err)
	bad, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = markov.FromJSON(bad)
	require.True(t, errors.Is(err, markov.ErrBadDocument))
}
