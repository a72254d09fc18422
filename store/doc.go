// Package store persists scored cred graphs in a local badger database,
// keyed by content: the key of a document is the hex SHA-256 of its
// canonical bytes. Because encoding is byte-stable, storing the same graph
// twice is idempotent and a fetched document always hashes back to its key.
package store
