// Package graph holds the weighted contribution graph consumed by the
// engine: nodes and timestamped edges keyed by hierarchical addresses, a
// weight configuration with prefix-based inheritance, and the contiguous
// interval sequences that partition time into epochs.
//
// The container is a plain catalog, not an algorithm surface: it enforces
// address uniqueness, answers membership queries, and iterates nodes and
// edges in canonical address order. Dangling edges (an endpoint absent from
// the node catalog) may be stored but are filtered out by default on
// iteration; downstream layers never see them unless explicitly requested.
package graph
