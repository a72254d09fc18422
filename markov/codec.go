// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// codec.go — versioned, byte-stable JSON serialization.
//
// Document shape:
//   • envelope {type, version, payload}
//   • payload.sortedNodes: real nodes in address order (virtual nodes are
//     recomputed, never stored)
//   • payload.indexedEdges: edges in Markov-address order; src/dst are
//     indices into the FULL node order to avoid repeating address strings
//   • payload.participants: original caller order
//   • payload.finiteEpochBoundaries: boundary array with the ±∞ sentinels
//     stripped; the decoder re-inserts them
//
// Determinism: encoding is a pure function of the graph; identical inputs
// produce identical bytes (struct field order is fixed, float64 rendering
// is shortest-round-trip).

package markov

import (
	"encoding/json"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/credrank/addr"
)

// Document identity of the Markov process graph envelope.
const (
	DocumentType    = "sourcecred/markovProcessGraph"
	DocumentVersion = "0.1.0"
)

type jsonEnvelope struct {
	Type    string          `json:"type"`
	Version string          `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

type jsonNode struct {
	Address     []string `json:"address"`
	Description string   `json:"description"`
	Mint        float64  `json:"mint"`
}

type jsonEdge struct {
	Address               []string `json:"address"`
	Reversed              bool     `json:"reversed"`
	Src                   int      `json:"src"`
	Dst                   int      `json:"dst"`
	TransitionProbability float64  `json:"transitionProbability"`
}

type jsonParticipant struct {
	Address     []string `json:"address"`
	Description string   `json:"description"`
	ID          string   `json:"id"`
}

type jsonPayload struct {
	SortedNodes           []jsonNode        `json:"sortedNodes"`
	IndexedEdges          []jsonEdge        `json:"indexedEdges"`
	Participants          []jsonParticipant `json:"participants"`
	FiniteEpochBoundaries []int64           `json:"finiteEpochBoundaries"`
}

// ToJSON encodes the graph into its canonical document bytes.
func (g *Graph) ToJSON() ([]byte, error) {
	payload := jsonPayload{
		SortedNodes:           make([]jsonNode, 0, g.nodes.Size()),
		IndexedEdges:          make([]jsonEdge, 0, g.edges.Size()),
		Participants:          make([]jsonParticipant, 0, len(g.participants)),
		FiniteEpochBoundaries: g.finiteBoundaries(),
	}

	it := g.nodes.Iterator()
	for it.Next() {
		n := it.Value().(*Node)
		payload.SortedNodes = append(payload.SortedNodes, jsonNode{
			Address:     n.Address.Parts(),
			Description: n.Description,
			Mint:        n.Mint,
		})
	}

	eit := g.edges.Iterator()
	for eit.Next() {
		e := eit.Value().(*Edge)
		src, ok := g.NodeIndex(e.Src)
		if !ok {
			return nil, fmt.Errorf("edge %s src %s not in node order: %w", e.Address, e.Src, ErrBadDocument)
		}
		dst, ok := g.NodeIndex(e.Dst)
		if !ok {
			return nil, fmt.Errorf("edge %s dst %s not in node order: %w", e.Address, e.Dst, ErrBadDocument)
		}
		payload.IndexedEdges = append(payload.IndexedEdges, jsonEdge{
			Address:               e.Address.Parts(),
			Reversed:              e.Reversed,
			Src:                   src,
			Dst:                   dst,
			TransitionProbability: e.TransitionProbability,
		})
	}

	for _, p := range g.participants {
		payload.Participants = append(payload.Participants, jsonParticipant{
			Address:     p.Address.Parts(),
			Description: p.Description,
			ID:          p.ID,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding markov process graph payload")
	}
	out, err := json.Marshal(jsonEnvelope{Type: DocumentType, Version: DocumentVersion, Payload: raw})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding markov process graph envelope")
	}
	return out, nil
}

// FromJSON decodes canonical document bytes back into a graph,
// reconstructing the virtual node order deterministically. Unknown type or
// version strings are rejected with ErrVersionMismatch.
func FromJSON(data []byte) (*Graph, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding markov process graph envelope")
	}
	if env.Type != DocumentType || env.Version != DocumentVersion {
		return nil, fmt.Errorf("got %q/%q, want %q/%q: %w",
			env.Type, env.Version, DocumentType, DocumentVersion, ErrVersionMismatch)
	}
	var payload jsonPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding markov process graph payload")
	}
	return graphFromPayload(payload)
}

// graphFromPayload rebuilds the frozen graph: nodes and boundaries first
// (which fix the full node order), then edges resolved through that order.
func graphFromPayload(payload jsonPayload) (*Graph, error) {
	g := &Graph{
		nodes:        newAddressTree(),
		edges:        newAddressTree(),
		participants: make([]Participant, 0, len(payload.Participants)),
	}

	for _, jn := range payload.SortedNodes {
		a, err := addr.NewNodeAddress(jn.Address...)
		if err != nil {
			return nil, err
		}
		key := a.Key()
		if _, dup := g.nodes.Get(key); dup {
			return nil, fmt.Errorf("node %s: %w", a, ErrNodeConflict)
		}
		g.nodes.Put(key, &Node{Address: a, Description: jn.Description, Mint: jn.Mint})
	}

	g.boundaries = make([]int64, 0, len(payload.FiniteEpochBoundaries)+2)
	g.boundaries = append(g.boundaries, BoundaryNegInf)
	g.boundaries = append(g.boundaries, payload.FiniteEpochBoundaries...)
	g.boundaries = append(g.boundaries, BoundaryPosInf)

	for _, jp := range payload.Participants {
		a, err := addr.NewNodeAddress(jp.Address...)
		if err != nil {
			return nil, err
		}
		g.participants = append(g.participants, Participant{
			Address:     a,
			Description: jp.Description,
			ID:          jp.ID,
		})
	}

	// Fix the full node order before resolving edge endpoint indices.
	g.index()

	for _, je := range payload.IndexedEdges {
		a, err := addr.NewEdgeAddress(je.Address...)
		if err != nil {
			return nil, err
		}
		if je.Src < 0 || je.Src >= len(g.nodeOrder) || je.Dst < 0 || je.Dst >= len(g.nodeOrder) {
			return nil, fmt.Errorf("edge %s endpoint index out of range [%d, %d): %w",
				a, 0, len(g.nodeOrder), ErrBadDocument)
		}
		e := &Edge{
			Address:               a,
			Reversed:              je.Reversed,
			Src:                   g.nodeOrder[je.Src],
			Dst:                   g.nodeOrder[je.Dst],
			TransitionProbability: je.TransitionProbability,
		}
		key := e.MarkovAddress().Key()
		if _, dup := g.edges.Get(key); dup {
			return nil, fmt.Errorf("edge %s (reversed=%v): %w", a, je.Reversed, ErrEdgeConflict)
		}
		g.edges.Put(key, e)
	}

	// Re-index to pick up the in-edge lists now that edges exist.
	g.index()
	return g, nil
}

// finiteBoundaries strips the ±∞ sentinels for serialization.
func (g *Graph) finiteBoundaries() []int64 {
	out := make([]int64, 0, len(g.boundaries))
	for _, b := range g.boundaries {
		if b == BoundaryNegInf || b == BoundaryPosInf {
			continue
		}
		out = append(out, b)
	}
	return out
}
