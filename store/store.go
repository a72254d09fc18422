// SPDX-License-Identifier: MIT
// Package: credrank/store
//
// store.go — content-addressed catalog of cred graph documents.

package store

import (
	"crypto/sha256"
	"encoding/hex"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/credrank/cred"
)

// ErrNotFound indicates that no document is stored under the given key.
// Usage: if errors.Is(err, ErrNotFound) { /* not yet scored */ }.
var ErrNotFound = errors.New("store: document not found")

// Store is a handle on an open catalog. It is safe for concurrent use; the
// underlying database serializes writes.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the catalog at the given directory.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening cred store at %s", path)
	}
	return &Store{db: db}, nil
}

// Close releases the catalog. The handle must not be used afterwards.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "closing cred store")
}

// Put stores the cred graph and returns its content key. Re-storing an
// identical graph yields the same key and overwrites the same entry.
func (s *Store) Put(g *cred.Graph) (string, error) {
	doc, err := g.ToJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(doc)
	key := hex.EncodeToString(sum[:])

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), doc)
	})
	if err != nil {
		return "", errors.Wrapf(err, "storing cred graph %s", key)
	}
	return key, nil
}

// Get fetches and decodes the cred graph stored under the key.
func (s *Store) Get(key string) (*cred.Graph, error) {
	var doc []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, gerr := txn.Get([]byte(key))
		if gerr != nil {
			return gerr
		}
		doc, gerr = item.ValueCopy(nil)
		return gerr
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "key %s", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching cred graph %s", key)
	}
	return cred.FromJSON(doc)
}

// Keys lists every stored content key in ascending order.
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing cred store keys")
	}
	return keys, nil
}
