// Package keystore persists a fingerprint of the Zobrist key space so that a
// build whose keys differ from the ones used to write books, caches or test
// fixtures is caught at startup.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"

	"github.com/iudwgerte/Lighthouse/internal/zobrist"
)

const keyFingerprint = "zobrist/fingerprint"

var (
	// ErrNoFingerprint is returned by Load when nothing has been recorded yet.
	ErrNoFingerprint = errors.New("no fingerprint recorded")

	// ErrKeyDrift indicates the current key space differs from the recorded one.
	ErrKeyDrift = errors.New("zobrist key drift")
)

// Fingerprint identifies a key space.
type Fingerprint struct {
	Seed      uint64    `json:"seed"`
	Digest    uint64    `json:"digest"`
	Entries   int       `json:"entries"`
	CreatedAt time.Time `json:"created_at"`
}

// FingerprintOf computes the fingerprint of keys.
func FingerprintOf(keys *zobrist.Keys) (Fingerprint, error) {
	data, err := keys.MarshalBinary()
	if err != nil {
		return Fingerprint{}, fmt.Errorf("marshal keys: %w", err)
	}
	return Fingerprint{
		Seed:      keys.Seed(),
		Digest:    xxhash.Sum64(data),
		Entries:   len(data) / 8,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Matches reports whether two fingerprints describe the same keys.
func (f Fingerprint) Matches(other Fingerprint) bool {
	return f.Seed == other.Seed && f.Digest == other.Digest && f.Entries == other.Entries
}

// Store wraps BadgerDB for persistent storage.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open key store %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that is not backed by disk.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory key store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records fp, replacing any earlier fingerprint.
func (s *Store) Save(fp Fingerprint) error {
	data, err := json.Marshal(fp)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFingerprint), data)
	})
}

// Load returns the recorded fingerprint, or ErrNoFingerprint.
func (s *Store) Load() (*Fingerprint, error) {
	var fp Fingerprint
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyFingerprint))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoFingerprint
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &fp)
		})
	})
	if err != nil {
		return nil, err
	}
	return &fp, nil
}

// Verify compares keys with the recorded fingerprint. The first call on an
// empty store records the fingerprint and reports created=true.
func (s *Store) Verify(keys *zobrist.Keys) (created bool, err error) {
	current, err := FingerprintOf(keys)
	if err != nil {
		return false, err
	}

	stored, err := s.Load()
	if errors.Is(err, ErrNoFingerprint) {
		return true, s.Save(current)
	}
	if err != nil {
		return false, err
	}

	if !stored.Matches(current) {
		return false, fmt.Errorf("%w: recorded seed %d digest %016x, current seed %d digest %016x",
			ErrKeyDrift, stored.Seed, stored.Digest, current.Seed, current.Digest)
	}
	return false, nil
}
