// SPDX-License-Identifier: MIT
// Package: credrank/cred
//
// codec.go — the versioned cred graph document.
//
// Document shape: envelope {type, version, payload} with payload
// {mpg, scores}, where mpg is the full Markov process graph document and
// scores is the vector aligned to its full node order. Field names are the
// encoder's canonical set; the decoder accepts exactly those.

package cred

import (
	"encoding/json"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/credrank/markov"
)

// Document identity of the cred graph envelope.
const (
	DocumentType    = "sourcecred/credGraph"
	DocumentVersion = "0.1.0"
)

type jsonEnvelope struct {
	Type    string          `json:"type"`
	Version string          `json:"version"`
	Payload json.RawMessage `json:"payload"`
}

type jsonPayload struct {
	Mpg    json.RawMessage `json:"mpg"`
	Scores []float64       `json:"scores"`
}

// ToJSON encodes the cred graph into its canonical document bytes,
// embedding the chain's own document unchanged.
func (g *Graph) ToJSON() ([]byte, error) {
	mpg, err := g.mpg.ToJSON()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(jsonPayload{Mpg: mpg, Scores: g.scores})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding cred graph payload")
	}
	out, err := json.Marshal(jsonEnvelope{Type: DocumentType, Version: DocumentVersion, Payload: raw})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encoding cred graph envelope")
	}
	return out, nil
}

// FromJSON decodes canonical document bytes back into a cred graph,
// delegating chain reconstruction to the markov codec. Unknown type or
// version strings are rejected with ErrVersionMismatch.
func FromJSON(data []byte) (*Graph, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding cred graph envelope")
	}
	if env.Type != DocumentType || env.Version != DocumentVersion {
		return nil, fmt.Errorf("got %q/%q, want %q/%q: %w",
			env.Type, env.Version, DocumentType, DocumentVersion, ErrVersionMismatch)
	}
	var payload jsonPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return nil, pkgerrors.Wrap(err, "decoding cred graph payload")
	}
	mpg, err := markov.FromJSON(payload.Mpg)
	if err != nil {
		return nil, err
	}
	return New(mpg, payload.Scores)
}
