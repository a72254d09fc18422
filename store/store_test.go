// SPDX-License-Identifier: MIT
// Package store_test verifies the content-addressed catalog: idempotent
// puts, round-trip gets, key listing, and the not-found sentinel.

package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/cred"
	"github.com/katalvlaran/credrank/graph"
	"github.com/katalvlaran/credrank/markov"
	"github.com/katalvlaran/credrank/store"
)

// scoredFixture builds a small scored graph.
func scoredFixture(t *testing.T) *cred.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode(graph.Node{
		Address:     addr.MustNodeAddress("repo", "post", "1"),
		Description: "a post",
	}))
	built, err := markov.New(markov.Args{
		WeightedGraph: graph.Weighted{Graph: g, Weights: graph.NewWeights()},
		Participants: []markov.Participant{
			{Address: addr.MustNodeAddress("identity", "alice"), Description: "alice", ID: "alice-id"},
		},
		Intervals:  graph.Intervals{{StartTimeMs: 0, EndTimeMs: 10}},
		Parameters: markov.Parameters{Alpha: 0.2, Beta: 0.3, GammaForward: 0.1, GammaBackward: 0.1},
	})
	require.NoError(t, err)

	scores := make([]float64, built.NodeCount())
	for i := range scores {
		scores[i] = 1
	}
	cg, err := cred.New(built, scores)
	require.NoError(t, err)
	return cg
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

// TestStore_PutGetRoundTrip asserts storage and full decode recovery.
func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openStore(t)
	cg := scoredFixture(t)

	key, err := s.Put(cg)
	require.NoError(t, err)
	require.Len(t, key, 64, "hex sha256 key")

	back, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, cg.Scores(), back.Scores())

	wantDoc, err := cg.ToJSON()
	require.NoError(t, err)
	gotDoc, err := back.ToJSON()
	require.NoError(t, err)
	require.Equal(t, wantDoc, gotDoc)
}

// TestStore_PutIsIdempotent asserts content addressing: same graph, same
// key, one entry.
func TestStore_PutIsIdempotent(t *testing.T) {
	s := openStore(t)
	cg := scoredFixture(t)

	k1, err := s.Put(cg)
	require.NoError(t, err)
	k2, err := s.Put(cg)
	require.NoError(t, err)
	require.Equal(t, k1, k2)

	keys, err := s.Keys()
	require.NoError(t, err)
	require.Equal(t, []string{k1}, keys)
}

// TestStore_GetMissing asserts the ErrNotFound sentinel.
func TestStore_GetMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.Get("0000000000000000000000000000000000000000000000000000000000000000")
	require.True(t, errors.Is(err, store.ErrNotFound))
}
