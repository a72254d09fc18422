// SPDX-License-Identifier: MIT
// Package: credrank/addr
//
// addr.go — NodeAddress and EdgeAddress types plus the shared algebra.
//
// Design:
//   • Both address flavors are []string under the hood; the algebra is
//     implemented once on raw part slices and re-exported per type.
//   • Constructors copy their input; methods never mutate the receiver.
//   • Key() is the single canonical identity; String() is display-only.

package addr

import (
	"fmt"
	"strings"
)

// keySeparator terminates every part in the canonical key form.
// NUL sorts below all other bytes, so byte order over keys equals
// part-wise lexicographic order over addresses.
const keySeparator = "\x00"

// displaySeparator joins parts in the human-readable form.
const displaySeparator = "/"

// NodeAddress identifies a node as an ordered sequence of parts.
// The zero value is the empty address, a prefix of every address.
type NodeAddress []string

// EdgeAddress identifies an edge as an ordered sequence of parts.
// It shares the NodeAddress algebra but is deliberately a distinct type.
type EdgeAddress []string

// NewNodeAddress builds a NodeAddress from parts, copying the input.
// Returns ErrBadPart if any part contains a NUL byte.
func NewNodeAddress(parts ...string) (NodeAddress, error) {
	if err := validateParts(parts); err != nil {
		return nil, err
	}
	return NodeAddress(copyParts(parts)), nil
}

// NewEdgeAddress builds an EdgeAddress from parts, copying the input.
// Returns ErrBadPart if any part contains a NUL byte.
func NewEdgeAddress(parts ...string) (EdgeAddress, error) {
	if err := validateParts(parts); err != nil {
		return nil, err
	}
	return EdgeAddress(copyParts(parts)), nil
}

// MustNodeAddress is NewNodeAddress that panics on invalid parts.
// Reserved for compile-time-constant addresses (gadget prefixes, tests).
func MustNodeAddress(parts ...string) NodeAddress {
	a, err := NewNodeAddress(parts...)
	if err != nil {
		panic(err)
	}
	return a
}

// MustEdgeAddress is NewEdgeAddress that panics on invalid parts.
// Reserved for compile-time-constant addresses (gadget prefixes, tests).
func MustEdgeAddress(parts ...string) EdgeAddress {
	a, err := NewEdgeAddress(parts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Parts returns a fresh copy of the address parts.
func (a NodeAddress) Parts() []string { return copyParts(a) }

// Parts returns a fresh copy of the address parts.
func (a EdgeAddress) Parts() []string { return copyParts(a) }

// Append returns a new address with extra parts appended; the receiver is
// left untouched. Panics on a part containing NUL (programmer error: the
// appended parts are code-originated, not user input).
func (a NodeAddress) Append(parts ...string) NodeAddress {
	return NodeAddress(appendParts(a, parts))
}

// Append returns a new address with extra parts appended; the receiver is
// left untouched. Panics on a part containing NUL.
func (a EdgeAddress) Append(parts ...string) EdgeAddress {
	return EdgeAddress(appendParts(a, parts))
}

// HasPrefix reports whether p is a (possibly empty, possibly equal) prefix
// of a, compared part-wise.
func (a NodeAddress) HasPrefix(p NodeAddress) bool { return hasPrefix(a, p) }

// HasPrefix reports whether p is a (possibly empty, possibly equal) prefix
// of a, compared part-wise.
func (a EdgeAddress) HasPrefix(p EdgeAddress) bool { return hasPrefix(a, p) }

// Compare totally orders addresses part-wise lexicographically.
// Returns -1, 0, or +1.
func (a NodeAddress) Compare(b NodeAddress) int { return compareParts(a, b) }

// Compare totally orders addresses part-wise lexicographically.
// Returns -1, 0, or +1.
func (a EdgeAddress) Compare(b EdgeAddress) int { return compareParts(a, b) }

// Eq reports part-wise equality.
func (a NodeAddress) Eq(b NodeAddress) bool { return compareParts(a, b) == 0 }

// Eq reports part-wise equality.
func (a EdgeAddress) Eq(b EdgeAddress) bool { return compareParts(a, b) == 0 }

// Key returns the canonical injective string form: every part followed by a
// NUL terminator. Suitable as a map key; byte order equals Compare order.
func (a NodeAddress) Key() string { return keyOf(a) }

// Key returns the canonical injective string form: every part followed by a
// NUL terminator. Suitable as a map key; byte order equals Compare order.
func (a EdgeAddress) Key() string { return keyOf(a) }

// String renders the slash-joined display form. Display only: not injective
// when parts themselves contain the separator.
func (a NodeAddress) String() string { return strings.Join(a, displaySeparator) }

// String renders the slash-joined display form. Display only: not injective
// when parts themselves contain the separator.
func (a EdgeAddress) String() string { return strings.Join(a, displaySeparator) }

// ParseNodeKey decodes a canonical key produced by NodeAddress.Key.
// Returns ErrParse when the key does not end in a part terminator.
func ParseNodeKey(key string) (NodeAddress, error) {
	parts, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	return NodeAddress(parts), nil
}

// ParseEdgeKey decodes a canonical key produced by EdgeAddress.Key.
// Returns ErrParse when the key does not end in a part terminator.
func ParseEdgeKey(key string) (EdgeAddress, error) {
	parts, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	return EdgeAddress(parts), nil
}

// --- shared algebra over raw part slices ------------------------------------

// validateParts rejects any part containing the canonical separator.
func validateParts(parts []string) error {
	for i, p := range parts {
		if strings.Contains(p, keySeparator) {
			return fmt.Errorf("part %d (%q): %w", i, p, ErrBadPart)
		}
	}
	return nil
}

// copyParts snapshots a part slice so callers cannot alias internal state.
func copyParts(parts []string) []string {
	out := make([]string, len(parts))
	copy(out, parts)
	return out
}

// appendParts concatenates base and extra into a fresh slice, validating the
// extra parts. Invalid extra parts panic: they are code-originated constants.
func appendParts(base, extra []string) []string {
	if err := validateParts(extra); err != nil {
		panic(err)
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// hasPrefix reports part-wise prefix containment; the empty slice is a
// prefix of everything.
func hasPrefix(a, p []string) bool {
	if len(p) > len(a) {
		return false
	}
	for i := range p {
		if a[i] != p[i] {
			return false
		}
	}
	return true
}

// compareParts orders two part slices lexicographically, shorter-first on ties.
func compareParts(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// keyOf renders parts in canonical NUL-terminated form.
func keyOf(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
		sb.WriteString(keySeparator)
	}
	return sb.String()
}

// splitKey inverts keyOf. Every part must be NUL-terminated; a dangling
// tail yields ErrParse.
func splitKey(key string) ([]string, error) {
	if key == "" {
		return []string{}, nil
	}
	if !strings.HasSuffix(key, keySeparator) {
		return nil, fmt.Errorf("key %q: %w", key, ErrParse)
	}
	trimmed := strings.TrimSuffix(key, keySeparator)
	return strings.Split(trimmed, keySeparator), nil
}
