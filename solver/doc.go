// Package solver computes the stationary distribution of a sparse Markov
// chain by deterministic power iteration.
//
// The chain arrives in the engine's in-edge layout, so one iteration is a
// single pass over the in-edge lists: next[i] = ½(π[i] + Σ weight·π[neighbor]),
// a step of the lazy chain ½(I + P). The lazy chain has the same stationary
// distribution as P and is aperiodic even where P is periodic (an engine
// chain whose only minting node has no contributions cycles seed → node →
// seed). The iterate starts uniform, is renormalized every step to contain
// floating-point drift, and converges when the L1 change drops below the
// configured tolerance; exhausting the iteration budget is a reported error,
// never a silently degraded result.
package solver
