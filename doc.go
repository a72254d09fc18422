// Package credrank turns a weighted, timestamped contribution graph into a
// discrete-time Markov chain whose stationary distribution scores every
// contribution and every participant-epoch.
//
// 🚀 What is credrank?
//
//	A deterministic scoring engine built from small, composable packages:
//		• addr    — hierarchical node/edge addresses with prefix algebra
//		• graph   — the weighted contribution graph and interval sequences
//		• weights — prefix-inheriting node/edge weight evaluators
//		• markov  — the Markov process graph: gadgets, builder, chain view, codec
//		• cred    — stationary scores bound back onto the chain
//		• solver  — power iteration for the stationary distribution
//		• store   — content-addressed catalog of scored graphs
//
// ✨ Why choose credrank?
//
//   - Deterministic by construction – canonical orders, byte-stable JSON
//   - Rock-solid guarantees – every node's out-probabilities sum to one
//   - Explicit errors – sentinel taxonomy, errors.Is everywhere
//   - Immutable results – graphs are frozen after construction and safely
//     shareable across readers
//
// Data flows left to right:
//
//	(graph, participants, intervals, parameters)
//	    → markov.New        (build the process graph)
//	    → SparseChain       (compact in-edge representation)
//	    → solver            (stationary distribution)
//	    → cred.New          (scores joined onto the chain)
//
// See each package's doc.go for its contract, and cmd/credrank for the CLI.
package credrank
