// SPDX-License-Identifier: MIT
// Package: credrank/weights
//
// errors.go — sentinel errors for weight resolution.

package weights

import "errors"

// ErrInvalidNodeWeight indicates a negative or non-finite node weight,
// either configured directly or produced by prefix combination.
// Usage: if errors.Is(err, ErrInvalidNodeWeight) { /* bad weight config */ }.
var ErrInvalidNodeWeight = errors.New("weights: invalid node weight")

// ErrInvalidEdgeWeight indicates a negative or non-finite edge weight,
// either configured directly or produced by prefix combination.
// Usage: if errors.Is(err, ErrInvalidEdgeWeight) { /* bad weight config */ }.
var ErrInvalidEdgeWeight = errors.New("weights: invalid edge weight")
