// Package addr implements the hierarchical address algebra shared by every
// layer of the engine: ordered sequences of string parts identifying nodes
// and edges, with prefix tests, concatenation, and a canonical injective
// string form.
//
// Node and edge addresses share the same algebra but are distinct,
// non-interchangeable types: a NodeAddress never unifies with an EdgeAddress,
// even when their parts coincide.
//
// Canonical form and ordering:
//
//   - Key() renders an address as each part followed by a NUL byte. Because
//     NUL is forbidden inside parts and sorts below every other byte, the
//     byte order of keys coincides with part-wise lexicographic order, and
//     prefix-of-key coincides with prefix-of-parts. One representation
//     serves map keys, sorting, and prefix scans.
//   - String() is the human-readable slash-joined form, used in error
//     messages and reports only; it is not injective and never used as an
//     identity.
//
// The empty address is a prefix of every address.
package addr
