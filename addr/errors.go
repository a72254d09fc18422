// SPDX-License-Identifier: MIT
// Package: credrank/addr
//
// errors.go — sentinel errors for the address algebra.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (the offending part or address) is attached via %w wrapping
//     at the call site, never baked into the sentinel.

package addr

import "errors"

// ErrBadPart indicates an address part containing the reserved NUL byte.
// NUL is the canonical-form separator; a part containing it would break
// injectivity of Key().
// Usage: if errors.Is(err, ErrBadPart) { /* reject the input address */ }.
var ErrBadPart = errors.New("addr: address part contains NUL byte")

// ErrParse indicates that a canonical key could not be decoded back into
// parts (truncated or missing terminator).
// Usage: if errors.Is(err, ErrParse) { /* malformed key */ }.
var ErrParse = errors.New("addr: malformed canonical key")
