// Package weights reduces a graph weight configuration to scalar weights.
//
// Resolution follows prefix inheritance: the weight of an address is the
// product of every entry set on one of its prefixes (the empty prefix
// included). Absent entries contribute the multiplicative identity, so an
// unconfigured address resolves to 1.
//
// Evaluators are pure with respect to their inputs — the same address always
// resolves to the same weight — and memoize resolved weights behind a
// bounded LRU cache, since real contribution graphs query the same address
// families repeatedly. Negative and non-finite weights are construction-time
// errors, never silently propagated.
package weights
