// SPDX-License-Identifier: MIT
// Package markov (white-box) — gadget address synthesis/parse round-trips.
//
// These tests are intentionally in-package: the gadget registry is the
// single source of truth for structural naming, and the boundary rendering
// helpers it relies on are unexported.

package markov

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/credrank/addr"
)

// TestSeedGadget pins the reserved seed address.
func TestSeedGadget(t *testing.T) {
	require.Equal(t, "core/SEED", Seed.ToRaw().String())
	require.True(t, Seed.Matches(addr.MustNodeAddress("core", "SEED")))
	require.False(t, Seed.Matches(addr.MustNodeAddress("core", "SEED", "x")))
	require.Equal(t, 0.0, Seed.Materialize().Mint, "seed never mints")
}

// TestEpochAccumulatorGadget_RoundTrip covers finite and sentinel
// boundaries.
func TestEpochAccumulatorGadget_RoundTrip(t *testing.T) {
	for _, boundary := range []int64{0, 1234, -77, BoundaryNegInf, BoundaryPosInf} {
		raw := EpochAccumulator.ToRaw(boundary)
		require.True(t, raw.HasPrefix(EpochAccumulator.Prefix()))

		back, err := EpochAccumulator.FromRaw(raw)
		require.NoError(t, err)
		require.Equal(t, boundary, back)
	}
	require.Equal(t, "core/EPOCH_ACCUMULATOR/42", EpochAccumulator.ToRaw(42).String())
	require.Equal(t, "core/EPOCH_ACCUMULATOR/-Infinity", EpochAccumulator.ToRaw(BoundaryNegInf).String())
}

// TestUserEpochGadget_RoundTrip covers the (owner, boundary) key.
func TestUserEpochGadget_RoundTrip(t *testing.T) {
	k := EpochKey{Owner: "user-123", EpochStart: 1000}
	raw := UserEpoch.ToRaw(k)
	require.Equal(t, "core/USER_EPOCH/1000/user-123", raw.String())

	back, err := UserEpoch.FromRaw(raw)
	require.NoError(t, err)
	require.Equal(t, k, back)
}

// TestGadget_FromRawRejectsForeignAddresses asserts the ErrAddressParse
// sentinel on prefix and arity mismatches.
func TestGadget_FromRawRejectsForeignAddresses(t *testing.T) {
	_, err := UserEpoch.FromRaw(EpochAccumulator.ToRaw(0))
	require.True(t, errors.Is(err, ErrAddressParse))

	_, err = EpochAccumulator.FromRaw(addr.MustNodeAddress("core", "EPOCH_ACCUMULATOR"))
	require.True(t, errors.Is(err, ErrAddressParse), "missing boundary part")

	_, err = EpochAccumulator.FromRaw(addr.MustNodeAddress("core", "EPOCH_ACCUMULATOR", "not-a-number"))
	require.True(t, errors.Is(err, ErrAddressParse))

	_, err = Payout.FromRaw(addr.MustEdgeAddress("core", "SEED_MINT", "x"))
	require.True(t, errors.Is(err, ErrAddressParse))
}

// TestEdgeGadgets_Endpoints asserts each factory wires src/dst through the
// node gadgets rather than synthesizing addresses ad hoc.
func TestEdgeGadgets_Endpoints(t *testing.T) {
	k := EpochKey{Owner: "u", EpochStart: 7}

	payout := Payout.Materialize(k, 0.25)
	require.True(t, payout.Src.Eq(UserEpoch.ToRaw(k)))
	require.True(t, payout.Dst.Eq(EpochAccumulator.ToRaw(7)))
	require.Equal(t, 0.25, payout.TransitionProbability)
	require.False(t, payout.Reversed)

	fwd := ForwardWebbing.Materialize("u", 7, 9, 0.1)
	require.True(t, fwd.Src.Eq(UserEpoch.ToRaw(EpochKey{Owner: "u", EpochStart: 7})))
	require.True(t, fwd.Dst.Eq(UserEpoch.ToRaw(EpochKey{Owner: "u", EpochStart: 9})))

	bwd := BackwardWebbing.Materialize("u", 7, 9, 0.1)
	require.True(t, bwd.Src.Eq(UserEpoch.ToRaw(EpochKey{Owner: "u", EpochStart: 9})))
	require.True(t, bwd.Dst.Eq(UserEpoch.ToRaw(EpochKey{Owner: "u", EpochStart: 7})))

	base := addr.MustNodeAddress("repo", "post", "1")
	mintEdge := SeedMint.Materialize(base, 0.5)
	require.True(t, mintEdge.Src.Eq(Seed.ToRaw()))
	require.True(t, mintEdge.Dst.Eq(base))

	rad := ContributionRadiation.Materialize(base, 1)
	require.True(t, rad.Src.Eq(base))
	require.True(t, rad.Dst.Eq(Seed.ToRaw()))

	backToBase, err := ContributionRadiation.FromRaw(rad.Address)
	require.NoError(t, err)
	require.True(t, backToBase.Eq(base))

	accRad := AccumulatorRadiation.Materialize(BoundaryPosInf, 1)
	require.True(t, accRad.Src.Eq(EpochAccumulator.ToRaw(BoundaryPosInf)))
	require.True(t, accRad.Dst.Eq(Seed.ToRaw()))
}

// TestMarkovAddress_DistinguishesDirections pins the composite edge
// identity (address, reversed).
func TestMarkovAddress_DistinguishesDirections(t *testing.T) {
	a := addr.MustEdgeAddress("authors", "x")
	fwd := Edge{Address: a, Reversed: false}
	bwd := Edge{Address: a, Reversed: true}

	require.NotEqual(t, fwd.MarkovAddress().Key(), bwd.MarkovAddress().Key())
	require.Equal(t, "F/authors/x", fwd.MarkovAddress().String())
	require.Equal(t, "B/authors/x", bwd.MarkovAddress().String())
}

// TestBoundaryFor pins the "boundary immediately preceding t" rule.
func TestBoundaryFor(t *testing.T) {
	boundaries := []int64{BoundaryNegInf, 0, 100, BoundaryPosInf}
	cases := []struct {
		t    int64
		want int64
	}{
		{-50, BoundaryNegInf},
		{0, 0},
		{99, 0},
		{100, 100},
		{1000, 100},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, boundaryFor(boundaries, tc.t), "t=%d", tc.t)
	}
}
