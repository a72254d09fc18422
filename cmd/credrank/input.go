package main

import (
	"encoding/json"
	"os"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
	"github.com/katalvlaran/credrank/markov"
)

// scoringInput is the on-disk shape of a scoring request: the contribution
// graph, its weight configuration, the participants, and the time partition.
// Transition parameters come from flags/config, not from the document.
type scoringInput struct {
	Nodes []struct {
		Address     []string `json:"address"`
		Description string   `json:"description"`
	} `json:"nodes"`
	Edges []struct {
		Address     []string `json:"address"`
		Src         []string `json:"src"`
		Dst         []string `json:"dst"`
		TimestampMs int64    `json:"timestampMs"`
	} `json:"edges"`
	Weights struct {
		Nodes []struct {
			Prefix []string `json:"prefix"`
			Weight float64  `json:"weight"`
		} `json:"nodes"`
		Edges []struct {
			Prefix    []string `json:"prefix"`
			Forwards  float64  `json:"forwards"`
			Backwards float64  `json:"backwards"`
		} `json:"edges"`
	} `json:"weights"`
	Participants []struct {
		Address     []string `json:"address"`
		Description string   `json:"description"`
		ID          string   `json:"id"`
	} `json:"participants"`
	Intervals []struct {
		StartTimeMs int64 `json:"startTimeMs"`
		EndTimeMs   int64 `json:"endTimeMs"`
	} `json:"intervals"`
}

// loadScoringInput reads and materializes a scoring request. Parameters are
// left zero for the caller to fill.
func loadScoringInput(path string) (markov.Args, error) {
	var args markov.Args

	data, err := os.ReadFile(path)
	if err != nil {
		return args, pkgerrors.Wrapf(err, "reading scoring input %s", path)
	}
	var in scoringInput
	if err = json.Unmarshal(data, &in); err != nil {
		return args, pkgerrors.Wrapf(err, "decoding scoring input %s", path)
	}

	g := graph.New()
	for _, n := range in.Nodes {
		a, aerr := addr.NewNodeAddress(n.Address...)
		if aerr != nil {
			return args, aerr
		}
		if err = g.AddNode(graph.Node{Address: a, Description: n.Description}); err != nil {
			return args, err
		}
	}
	for _, e := range in.Edges {
		a, aerr := addr.NewEdgeAddress(e.Address...)
		if aerr != nil {
			return args, aerr
		}
		src, aerr := addr.NewNodeAddress(e.Src...)
		if aerr != nil {
			return args, aerr
		}
		dst, aerr := addr.NewNodeAddress(e.Dst...)
		if aerr != nil {
			return args, aerr
		}
		if err = g.AddEdge(graph.Edge{Address: a, Src: src, Dst: dst, TimestampMs: e.TimestampMs}); err != nil {
			return args, err
		}
	}

	w := graph.NewWeights()
	for _, nw := range in.Weights.Nodes {
		a, aerr := addr.NewNodeAddress(nw.Prefix...)
		if aerr != nil {
			return args, aerr
		}
		w.SetNode(a, nw.Weight)
	}
	for _, ew := range in.Weights.Edges {
		a, aerr := addr.NewEdgeAddress(ew.Prefix...)
		if aerr != nil {
			return args, aerr
		}
		w.SetEdge(a, graph.EdgeWeight{Forwards: ew.Forwards, Backwards: ew.Backwards})
	}

	args.WeightedGraph = graph.Weighted{Graph: g, Weights: w}

	for _, p := range in.Participants {
		a, aerr := addr.NewNodeAddress(p.Address...)
		if aerr != nil {
			return args, aerr
		}
		args.Participants = append(args.Participants, markov.Participant{
			Address:     a,
			Description: p.Description,
			ID:          p.ID,
		})
	}
	for _, iv := range in.Intervals {
		args.Intervals = append(args.Intervals, graph.Interval{
			StartTimeMs: iv.StartTimeMs,
			EndTimeMs:   iv.EndTimeMs,
		})
	}
	return args, nil
}
