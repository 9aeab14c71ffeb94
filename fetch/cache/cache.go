// Package cache provides an on-disk store for fetched SAC responses,
// backed by Pebble. Keys are the xxHash64 of the canonical query URL, so
// repeating a fetch for the same channel and window never touches the
// network twice.
package cache

import (
	"encoding/binary"
	"errors"

	"github.com/cockroachdb/pebble"
)

// Store is a persistent fetch cache. Safe for concurrent use.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) a cache at the given directory.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get returns the cached response for key, if present.
func (s *Store) Get(key uint64) ([]byte, bool) {
	data, closer, err := s.db.Get(keyBytes(key))
	if err != nil {
		// Treat any lookup failure as a miss; a broken cache entry just
		// costs a refetch.
		return nil, false
	}
	defer closer.Close()

	out := make([]byte, len(data))
	copy(out, data)

	return out, true
}

// Put stores a response under key.
func (s *Store) Put(key uint64, data []byte) error {
	return s.db.Set(keyBytes(key), data, pebble.NoSync)
}

// Delete removes a cached response.
func (s *Store) Delete(key uint64) error {
	err := s.db.Delete(keyBytes(key), pebble.NoSync)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil
	}

	return err
}

// Close flushes and closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

func keyBytes(key uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)

	return b[:]
}
