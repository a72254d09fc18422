// Package markov builds and exposes the Markov process graph at the heart
// of the engine: the transformation of a weighted, timestamped contribution
// graph into a row-stochastic transition structure whose stationary
// distribution is the cred score.
//
// 🚀 What happens here?
//
//	Three tightly coupled layers, one package:
//	  • Gadgets — the single source of truth for structural addresses:
//	    the seed node, per-epoch accumulators, per-(participant, epoch)
//	    user-epoch nodes, and the seven structural edge kinds.
//	  • Builder — New(args) runs six phases (parameter validation, base-node
//	    ingestion, time skeleton, minting, fibration, radiation), each
//	    establishing the invariants the next one relies on.
//	  • Chain view — deterministic node/edge orders, lazy iteration,
//	    in-neighbor lookup, the sparse in-edge export consumed by the
//	    stationary-distribution solver, and a byte-stable JSON codec.
//
// Guarantees after construction:
//
//   - Every node's outgoing transition probabilities sum to 1 (checked at
//     export within 1e-3).
//   - Node order is canonical: real nodes sorted by address, then the seed,
//     then one accumulator per epoch boundary in boundary order.
//   - The graph is immutable and safely shareable across readers.
//
// Seed and accumulator nodes are virtual: deterministic functions of the
// participants and boundaries, synthesized on demand rather than stored.
package markov
