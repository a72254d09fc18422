// SPDX-License-Identifier: MIT
// Package: credrank/markov
//
// gadget.go — the structural gadget registry.
//
// A gadget bundles, for one structural role: a reserved address prefix, a
// key→address synthesis function, its inverse parse, and a factory for the
// corresponding node or edge. Gadgets are the single source of truth for
// structural naming; no other code synthesizes core-prefixed addresses.
//
// The gadget set is closed: three node kinds (seed, epoch accumulator,
// user-epoch) and seven edge kinds (seed mint, payout, forward/backward
// webbing, contribution/epoch/accumulator radiation). The builder dispatches
// on it during radiation, the codec during decoding.

package markov

import (
	"fmt"

	"github.com/katalvlaran/credrank/addr"
)

// Reserved address parts. These are compile-time constants, not state.
const (
	corePart = "core"

	seedPart             = "SEED"
	epochAccumulatorPart = "EPOCH_ACCUMULATOR"
	userEpochPart        = "USER_EPOCH"

	seedMintPart              = "SEED_MINT"
	payoutPart                = "PAYOUT"
	forwardWebbingPart        = "FORWARD_WEBBING"
	backwardWebbingPart       = "BACKWARD_WEBBING"
	contributionRadiationPart = "CONTRIBUTION_RADIATION"
	epochRadiationPart        = "EPOCH_RADIATION"
	accumulatorRadiationPart  = "ACCUMULATOR_RADIATION"
)

// CoreNodePrefix is the reserved node prefix; input nodes under it are
// rejected with ErrCoreAddressReserved.
var CoreNodePrefix = addr.NodeAddress{corePart}

// CoreEdgePrefix is the reserved edge prefix for structural edges.
var CoreEdgePrefix = addr.EdgeAddress{corePart}

// EpochKey identifies one (participant, epoch boundary) pair.
type EpochKey struct {
	// Owner is the participant's stable opaque ID.
	Owner string

	// EpochStart is the epoch boundary, sentinel values included.
	EpochStart int64
}

// Gadget singletons. Each is stateless; methods hang off the type so the
// registry reads as a closed enumeration.
var (
	Seed             SeedGadget
	EpochAccumulator EpochAccumulatorGadget
	UserEpoch        UserEpochGadget

	SeedMint              SeedMintGadget
	Payout                PayoutGadget
	ForwardWebbing        ForwardWebbingGadget
	BackwardWebbing       BackwardWebbingGadget
	ContributionRadiation ContributionRadiationGadget
	EpochRadiation        EpochRadiationGadget
	AccumulatorRadiation  AccumulatorRadiationGadget
)

// --- node gadgets -----------------------------------------------------------

// SeedGadget names the singleton seed node realizing teleportation.
type SeedGadget struct{}

// Prefix returns the reserved seed prefix (also the full seed address).
func (SeedGadget) Prefix() addr.NodeAddress { return addr.NodeAddress{corePart, seedPart} }

// ToRaw returns the seed node address.
func (g SeedGadget) ToRaw() addr.NodeAddress { return g.Prefix() }

// Matches reports whether a is the seed address.
func (g SeedGadget) Matches(a addr.NodeAddress) bool { return a.Eq(g.ToRaw()) }

// Materialize produces the seed node. The seed never mints.
func (g SeedGadget) Materialize() *Node {
	return &Node{Address: g.ToRaw(), Description: "seed", Mint: 0}
}

// EpochAccumulatorGadget names the per-boundary accumulator nodes that
// collect each epoch's payout flow.
type EpochAccumulatorGadget struct{}

// Prefix returns the reserved accumulator prefix.
func (EpochAccumulatorGadget) Prefix() addr.NodeAddress {
	return addr.NodeAddress{corePart, epochAccumulatorPart}
}

// ToRaw synthesizes the accumulator address for a boundary.
func (g EpochAccumulatorGadget) ToRaw(epochStart int64) addr.NodeAddress {
	return g.Prefix().Append(formatBoundary(epochStart))
}

// FromRaw parses an accumulator address back to its boundary.
func (g EpochAccumulatorGadget) FromRaw(a addr.NodeAddress) (int64, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 3 {
		return 0, fmt.Errorf("not an epoch accumulator address %s: %w", a, ErrAddressParse)
	}
	return parseBoundary(a[2])
}

// Materialize produces the accumulator node for a boundary.
func (g EpochAccumulatorGadget) Materialize(epochStart int64) *Node {
	return &Node{
		Address:     g.ToRaw(epochStart),
		Description: fmt.Sprintf("epoch accumulator starting %s", formatBoundary(epochStart)),
		Mint:        0,
	}
}

// UserEpochGadget names the per-(participant, boundary) user-epoch nodes
// produced by fibration.
type UserEpochGadget struct{}

// Prefix returns the reserved user-epoch prefix.
func (UserEpochGadget) Prefix() addr.NodeAddress {
	return addr.NodeAddress{corePart, userEpochPart}
}

// ToRaw synthesizes the user-epoch address for a key.
func (g UserEpochGadget) ToRaw(k EpochKey) addr.NodeAddress {
	return g.Prefix().Append(formatBoundary(k.EpochStart), k.Owner)
}

// FromRaw parses a user-epoch address back to its key.
func (g UserEpochGadget) FromRaw(a addr.NodeAddress) (EpochKey, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 4 {
		return EpochKey{}, fmt.Errorf("not a user-epoch address %s: %w", a, ErrAddressParse)
	}
	start, err := parseBoundary(a[2])
	if err != nil {
		return EpochKey{}, err
	}
	return EpochKey{Owner: a[3], EpochStart: start}, nil
}

// Materialize produces the user-epoch node for a key. User-epoch nodes
// never mint; their inflow comes through contribution edges and webbing.
func (g UserEpochGadget) Materialize(k EpochKey) *Node {
	return &Node{
		Address: g.ToRaw(k),
		Description: fmt.Sprintf("user-epoch for %s starting %s",
			k.Owner, formatBoundary(k.EpochStart)),
		Mint: 0,
	}
}

// --- edge gadgets -----------------------------------------------------------

// SeedMintGadget names the seed → node minting edges.
type SeedMintGadget struct{}

// Prefix returns the reserved seed-mint edge prefix.
func (SeedMintGadget) Prefix() addr.EdgeAddress { return addr.EdgeAddress{corePart, seedMintPart} }

// ToRaw synthesizes the mint edge address for a destination node.
func (g SeedMintGadget) ToRaw(dst addr.NodeAddress) addr.EdgeAddress {
	return g.Prefix().Append(dst.Parts()...)
}

// FromRaw parses a mint edge address back to its destination node address.
func (g SeedMintGadget) FromRaw(a addr.EdgeAddress) (addr.NodeAddress, error) {
	if !a.HasPrefix(g.Prefix()) {
		return nil, fmt.Errorf("not a seed-mint address %s: %w", a, ErrAddressParse)
	}
	return addr.NodeAddress(a[2:]).Parts(), nil
}

// Materialize produces the mint edge seed → dst with the given probability.
func (g SeedMintGadget) Materialize(dst addr.NodeAddress, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(dst),
		Reversed:              false,
		Src:                   Seed.ToRaw(),
		Dst:                   dst,
		TransitionProbability: prob,
	}
}

// PayoutGadget names the user-epoch → accumulator payout edges.
type PayoutGadget struct{}

// Prefix returns the reserved payout edge prefix.
func (PayoutGadget) Prefix() addr.EdgeAddress { return addr.EdgeAddress{corePart, payoutPart} }

// ToRaw synthesizes the payout edge address for an epoch key.
func (g PayoutGadget) ToRaw(k EpochKey) addr.EdgeAddress {
	return g.Prefix().Append(formatBoundary(k.EpochStart), k.Owner)
}

// FromRaw parses a payout edge address back to its epoch key.
func (g PayoutGadget) FromRaw(a addr.EdgeAddress) (EpochKey, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 4 {
		return EpochKey{}, fmt.Errorf("not a payout address %s: %w", a, ErrAddressParse)
	}
	start, err := parseBoundary(a[2])
	if err != nil {
		return EpochKey{}, err
	}
	return EpochKey{Owner: a[3], EpochStart: start}, nil
}

// Materialize produces the payout edge user-epoch(k) → accumulator(k).
func (g PayoutGadget) Materialize(k EpochKey, beta float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(k),
		Reversed:              false,
		Src:                   UserEpoch.ToRaw(k),
		Dst:                   EpochAccumulator.ToRaw(k.EpochStart),
		TransitionProbability: beta,
	}
}

// ForwardWebbingGadget names the temporal edges from a user-epoch node to
// its successor. The key is the later boundary.
type ForwardWebbingGadget struct{}

// Prefix returns the reserved forward webbing edge prefix.
func (ForwardWebbingGadget) Prefix() addr.EdgeAddress {
	return addr.EdgeAddress{corePart, forwardWebbingPart}
}

// ToRaw synthesizes the forward webbing address; k.EpochStart is the later
// boundary of the webbed pair.
func (g ForwardWebbingGadget) ToRaw(k EpochKey) addr.EdgeAddress {
	return g.Prefix().Append(formatBoundary(k.EpochStart), k.Owner)
}

// FromRaw parses a forward webbing address back to its key.
func (g ForwardWebbingGadget) FromRaw(a addr.EdgeAddress) (EpochKey, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 4 {
		return EpochKey{}, fmt.Errorf("not a forward webbing address %s: %w", a, ErrAddressParse)
	}
	start, err := parseBoundary(a[2])
	if err != nil {
		return EpochKey{}, err
	}
	return EpochKey{Owner: a[3], EpochStart: start}, nil
}

// Materialize produces the webbing edge user-epoch(owner, prev) →
// user-epoch(owner, next).
func (g ForwardWebbingGadget) Materialize(owner string, prev, next int64, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(EpochKey{Owner: owner, EpochStart: next}),
		Reversed:              false,
		Src:                   UserEpoch.ToRaw(EpochKey{Owner: owner, EpochStart: prev}),
		Dst:                   UserEpoch.ToRaw(EpochKey{Owner: owner, EpochStart: next}),
		TransitionProbability: prob,
	}
}

// BackwardWebbingGadget names the temporal edges from a user-epoch node to
// its predecessor. The key is the later boundary.
type BackwardWebbingGadget struct{}

// Prefix returns the reserved backward webbing edge prefix.
func (BackwardWebbingGadget) Prefix() addr.EdgeAddress {
	return addr.EdgeAddress{corePart, backwardWebbingPart}
}

// ToRaw synthesizes the backward webbing address; k.EpochStart is the later
// boundary of the webbed pair.
func (g BackwardWebbingGadget) ToRaw(k EpochKey) addr.EdgeAddress {
	return g.Prefix().Append(formatBoundary(k.EpochStart), k.Owner)
}

// FromRaw parses a backward webbing address back to its key.
func (g BackwardWebbingGadget) FromRaw(a addr.EdgeAddress) (EpochKey, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 4 {
		return EpochKey{}, fmt.Errorf("not a backward webbing address %s: %w", a, ErrAddressParse)
	}
	start, err := parseBoundary(a[2])
	if err != nil {
		return EpochKey{}, err
	}
	return EpochKey{Owner: a[3], EpochStart: start}, nil
}

// Materialize produces the webbing edge user-epoch(owner, next) →
// user-epoch(owner, prev).
func (g BackwardWebbingGadget) Materialize(owner string, prev, next int64, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(EpochKey{Owner: owner, EpochStart: next}),
		Reversed:              false,
		Src:                   UserEpoch.ToRaw(EpochKey{Owner: owner, EpochStart: next}),
		Dst:                   UserEpoch.ToRaw(EpochKey{Owner: owner, EpochStart: prev}),
		TransitionProbability: prob,
	}
}

// ContributionRadiationGadget names the residual teleportation edges from
// base nodes back to the seed.
type ContributionRadiationGadget struct{}

// Prefix returns the reserved contribution radiation edge prefix.
func (ContributionRadiationGadget) Prefix() addr.EdgeAddress {
	return addr.EdgeAddress{corePart, contributionRadiationPart}
}

// ToRaw synthesizes the radiation address for a base node.
func (g ContributionRadiationGadget) ToRaw(src addr.NodeAddress) addr.EdgeAddress {
	return g.Prefix().Append(src.Parts()...)
}

// FromRaw parses a contribution radiation address back to its source node.
func (g ContributionRadiationGadget) FromRaw(a addr.EdgeAddress) (addr.NodeAddress, error) {
	if !a.HasPrefix(g.Prefix()) {
		return nil, fmt.Errorf("not a contribution radiation address %s: %w", a, ErrAddressParse)
	}
	return addr.NodeAddress(a[2:]).Parts(), nil
}

// Materialize produces the radiation edge src → seed.
func (g ContributionRadiationGadget) Materialize(src addr.NodeAddress, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(src),
		Reversed:              false,
		Src:                   src,
		Dst:                   Seed.ToRaw(),
		TransitionProbability: prob,
	}
}

// EpochRadiationGadget names the residual teleportation edges from
// user-epoch nodes back to the seed.
type EpochRadiationGadget struct{}

// Prefix returns the reserved epoch radiation edge prefix.
func (EpochRadiationGadget) Prefix() addr.EdgeAddress {
	return addr.EdgeAddress{corePart, epochRadiationPart}
}

// ToRaw synthesizes the radiation address for an epoch key.
func (g EpochRadiationGadget) ToRaw(k EpochKey) addr.EdgeAddress {
	return g.Prefix().Append(formatBoundary(k.EpochStart), k.Owner)
}

// FromRaw parses an epoch radiation address back to its key.
func (g EpochRadiationGadget) FromRaw(a addr.EdgeAddress) (EpochKey, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 4 {
		return EpochKey{}, fmt.Errorf("not an epoch radiation address %s: %w", a, ErrAddressParse)
	}
	start, err := parseBoundary(a[2])
	if err != nil {
		return EpochKey{}, err
	}
	return EpochKey{Owner: a[3], EpochStart: start}, nil
}

// Materialize produces the radiation edge user-epoch(k) → seed.
func (g EpochRadiationGadget) Materialize(k EpochKey, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(k),
		Reversed:              false,
		Src:                   UserEpoch.ToRaw(k),
		Dst:                   Seed.ToRaw(),
		TransitionProbability: prob,
	}
}

// AccumulatorRadiationGadget names the edges draining each accumulator back
// to the seed.
type AccumulatorRadiationGadget struct{}

// Prefix returns the reserved accumulator radiation edge prefix.
func (AccumulatorRadiationGadget) Prefix() addr.EdgeAddress {
	return addr.EdgeAddress{corePart, accumulatorRadiationPart}
}

// ToRaw synthesizes the radiation address for a boundary.
func (g AccumulatorRadiationGadget) ToRaw(epochStart int64) addr.EdgeAddress {
	return g.Prefix().Append(formatBoundary(epochStart))
}

// FromRaw parses an accumulator radiation address back to its boundary.
func (g AccumulatorRadiationGadget) FromRaw(a addr.EdgeAddress) (int64, error) {
	if !a.HasPrefix(g.Prefix()) || len(a) != 3 {
		return 0, fmt.Errorf("not an accumulator radiation address %s: %w", a, ErrAddressParse)
	}
	return parseBoundary(a[2])
}

// Materialize produces the radiation edge accumulator(epochStart) → seed.
func (g AccumulatorRadiationGadget) Materialize(epochStart int64, prob float64) *Edge {
	return &Edge{
		Address:               g.ToRaw(epochStart),
		Reversed:              false,
		Src:                   EpochAccumulator.ToRaw(epochStart),
		Dst:                   Seed.ToRaw(),
		TransitionProbability: prob,
	}
}
