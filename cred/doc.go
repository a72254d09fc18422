// Package cred overlays a stationary score vector onto a Markov process
// graph and reports cred: per-node scores, per-edge cred flow
// (cred(src) · transitionProbability), and per-participant epoch breakdowns
// collected from the payout edges.
//
// A cred graph is an immutable binding of two immutable values; it is safe
// to share across readers and serializes alongside the underlying chain.
package cred
