// SPDX-License-Identifier: MIT
// Package: credrank/graph
//
// errors.go — sentinel errors for the input graph container.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • The offending address is attached via %w wrapping at the call site.

package graph

import "errors"

// ErrNodeConflict indicates that a node address was added twice.
// Usage: if errors.Is(err, ErrNodeConflict) { /* duplicate input node */ }.
var ErrNodeConflict = errors.New("graph: node address already present")

// ErrEdgeConflict indicates that an edge address was added twice.
// Usage: if errors.Is(err, ErrEdgeConflict) { /* duplicate input edge */ }.
var ErrEdgeConflict = errors.New("graph: edge address already present")

// ErrBadInterval indicates a malformed interval sequence: unordered,
// overlapping, non-contiguous, or empty spans.
// Usage: if errors.Is(err, ErrBadInterval) { /* fix the time partition */ }.
var ErrBadInterval = errors.New("graph: invalid interval sequence")
