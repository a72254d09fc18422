// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// errors.go — sentinel errors for graph construction, export, and codec.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Construction failures are fatal and carry the offending address or
//     value via %w wrapping at the call site; nothing is retried.
//   • The codec attaches I/O context with pkg/errors at the boundary while
//     preserving the sentinel chain.

package markov

import "errors"

// ErrInvalidParameter indicates a transition parameter outside [0,1] or a
// parameter sum above 1.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* fix alpha/beta/gamma */ }.
var ErrInvalidParameter = errors.New("markov: invalid transition parameter")

// ErrCoreAddressReserved indicates an input node carrying the reserved
// structural prefix; only gadgets may synthesize such addresses.
// Usage: if errors.Is(err, ErrCoreAddressReserved) { /* reject input */ }.
var ErrCoreAddressReserved = errors.New("markov: reserved core address in input")

// ErrNodeConflict indicates a node address added twice during construction.
var ErrNodeConflict = errors.New("markov: node address already present")

// ErrEdgeConflict indicates a Markov edge address added twice during
// construction (same input address, same direction).
var ErrEdgeConflict = errors.New("markov: edge address already present")

// ErrNoMintingSource indicates that total mint weight is zero, leaving the
// seed node with no outgoing flow.
var ErrNoMintingSource = errors.New("markov: no node with positive mint")

// ErrInvalidProbability indicates a transition probability computed outside
// [0,1].
var ErrInvalidProbability = errors.New("markov: transition probability out of range")

// ErrSumCheck indicates a node whose outgoing probabilities deviate from 1
// beyond tolerance at chain export.
// Usage: if errors.Is(err, ErrSumCheck) { /* construction bug upstream */ }.
var ErrSumCheck = errors.New("markov: outgoing probabilities do not sum to 1")

// ErrAddressParse indicates a structural address that fails a gadget's
// inverse parse (wrong prefix, arity, or boundary rendering).
var ErrAddressParse = errors.New("markov: structural address parse failed")

// ErrVersionMismatch indicates a serialized envelope with an unknown type or
// version string.
var ErrVersionMismatch = errors.New("markov: unknown document type or version")

// ErrBadDocument indicates a structurally invalid payload (an edge endpoint
// index out of range) in an otherwise well-versioned document, or an edge
// endpoint missing from the node order at encoding or chain export.
var ErrBadDocument = errors.New("markov: malformed document payload")
