// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// types.go — node, edge, participant, and parameter types, plus epoch
// boundary helpers.
//
// Determinism:
//   • Markov edge identity is (address, reversed); the canonical Markov edge
//     address prepends a direction part so that both directions of one input
//     edge stay distinct and totally ordered.
//   • Epoch boundaries are int64 milliseconds; the ±∞ sentinels are the
//     int64 extremes and render as "-Infinity"/"Infinity" in structural
//     addresses.

package markov

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/credrank/addr"
	"github.com/katalvlaran/credrank/graph"
)

// BoundaryNegInf and BoundaryPosInf are the −∞/+∞ epoch boundary sentinels.
const (
	BoundaryNegInf int64 = math.MinInt64
	BoundaryPosInf int64 = math.MaxInt64
)

// Boundary sentinel renderings used inside structural addresses.
const (
	negInfPart = "-Infinity"
	posInfPart = "Infinity"
)

// Direction parts prefixing canonical Markov edge addresses.
const (
	forwardPart  = "F"
	backwardPart = "B"
)

// Node is a node of the Markov process graph.
type Node struct {
	// Address uniquely identifies the node.
	Address addr.NodeAddress

	// Description is free-form text for reporting.
	Description string

	// Mint is the node's share weight of seed outflow; zero for structural
	// nodes and for nodes not eligible to mint.
	Mint float64
}

// Edge is a directed transition of the Markov process graph.
type Edge struct {
	// Address is the input edge address, or a gadget-generated structural
	// address.
	Address addr.EdgeAddress

	// Reversed distinguishes the two directions contributed by one weighted
	// input edge. Structural edges are never reversed.
	Reversed bool

	// Src and Dst are node addresses present in the graph.
	Src, Dst addr.NodeAddress

	// TransitionProbability is the row-stochastic weight in [0,1].
	TransitionProbability float64
}

// MarkovAddress returns the canonical composite address (direction part
// followed by the edge address parts). It is unique per (address, reversed)
// pair and defines the edge order.
func (e *Edge) MarkovAddress() addr.EdgeAddress {
	dir := forwardPart
	if e.Reversed {
		dir = backwardPart
	}
	return addr.EdgeAddress{dir}.Append(e.Address.Parts()...)
}

// Participant is a scoring participant. Its original node address never
// appears in the Markov graph; the engine fibrates it into one user-epoch
// node per boundary, keyed by the stable opaque ID.
type Participant struct {
	Address     addr.NodeAddress
	Description string
	ID          string
}

// Parameters are the four transition probabilities. They must each lie in
// [0,1] and sum to at most 1; the leftover is the per-epoch contribution
// budget.
type Parameters struct {
	// Alpha is the radiation probability: the chance of jumping to the seed
	// from any organic source.
	Alpha float64

	// Beta is the payout probability from a user-epoch node to its epoch
	// accumulator.
	Beta float64

	// GammaForward and GammaBackward are the temporal webbing probabilities
	// between consecutive user-epoch nodes of one participant.
	GammaForward  float64
	GammaBackward float64
}

// validate checks the parameter domain and returns the epoch transition
// remainder 1 − α − β − γf − γb.
func (p Parameters) validate() (float64, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"alpha", p.Alpha},
		{"beta", p.Beta},
		{"gammaForward", p.GammaForward},
		{"gammaBackward", p.GammaBackward},
	} {
		// The negated comparison also rejects NaN.
		if !(f.value >= 0 && f.value <= 1) {
			return 0, fmt.Errorf("%s = %v: %w", f.name, f.value, ErrInvalidParameter)
		}
	}
	sum := p.Alpha + p.Beta + p.GammaForward + p.GammaBackward
	if sum > 1 {
		return 0, fmt.Errorf("alpha+beta+gammaForward+gammaBackward = %v > 1: %w", sum, ErrInvalidParameter)
	}
	return 1 - sum, nil
}

// Args is the full input of the graph builder.
type Args struct {
	// WeightedGraph is the contribution graph plus its weight configuration.
	// Dangling edges are filtered on ingestion per the graph contract.
	WeightedGraph graph.Weighted

	// Participants are the scoring participants, in caller order (the order
	// is preserved through serialization).
	Participants []Participant

	// Intervals is the contiguous time partition producing epoch boundaries.
	Intervals graph.Intervals

	// Parameters tunes the transition budget.
	Parameters Parameters
}

// formatBoundary renders an epoch boundary for structural addresses.
func formatBoundary(ms int64) string {
	switch ms {
	case BoundaryNegInf:
		return negInfPart
	case BoundaryPosInf:
		return posInfPart
	default:
		return strconv.FormatInt(ms, 10)
	}
}

// parseBoundary inverts formatBoundary.
func parseBoundary(s string) (int64, error) {
	switch s {
	case negInfPart:
		return BoundaryNegInf, nil
	case posInfPart:
		return BoundaryPosInf, nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("boundary %q: %w", s, ErrAddressParse)
	}
	return ms, nil
}

// epochBoundaries derives the full boundary sequence [−∞, start₀, …, +∞].
func epochBoundaries(intervals graph.Intervals) []int64 {
	out := make([]int64, 0, len(intervals)+2)
	out = append(out, BoundaryNegInf)
	out = append(out, intervals.StartTimes()...)
	out = append(out, BoundaryPosInf)
	return out
}

// boundaryFor returns the boundary immediately preceding t: the largest
// boundary ≤ t. boundaries must be ascending and start at −∞, so a result
// always exists.
func boundaryFor(boundaries []int64, t int64) int64 {
	lo, hi := 0, len(boundaries)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if boundaries[mid] <= t {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return boundaries[lo]
}
