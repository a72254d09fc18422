// SPDX-License-Identifier: MIT
// Package: credrank/cred
//
// errors.go — sentinel errors for score binding and the cred document.

package cred

import "errors"

// ErrScoreMismatch indicates a score vector whose length does not match the
// chain's full node order.
// Usage: if errors.Is(err, ErrScoreMismatch) { /* wrong solver output */ }.
var ErrScoreMismatch = errors.New("cred: score vector does not match node order")

// ErrBadScore indicates a negative or non-finite score entry.
var ErrBadScore = errors.New("cred: invalid score value")

// ErrMissingPayout indicates a participant/boundary pair without its payout
// edge; the underlying graph was not produced by the builder.
var ErrMissingPayout = errors.New("cred: payout edge missing for epoch")

// ErrVersionMismatch indicates a cred document with an unknown type or
// version string.
var ErrVersionMismatch = errors.New("cred: unknown document type or version")
