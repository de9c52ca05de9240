// SPDX-License-Identifier: MIT
// Package: graphsim/snapshot
//
// store.go: named snapshots in a badger key-value store.
//
// Layout:
//   • key   "snap/" + name
//   • value YAML from Snapshot.Marshal
//
// A Store with an empty Dir (or InMemory set) lives in memory only and is lost
// on Close.

package snapshot

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

const keyPrefix = "snap/"

// Options configures Open.
type Options struct {
	// Dir is the badger directory. Empty implies InMemory.
	Dir string
	// InMemory keeps everything in RAM.
	InMemory bool
	// ReadOnly opens an existing directory without write access.
	ReadOnly bool
}

// Store persists snapshots by name.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a snapshot store.
func Open(opts Options) (*Store, error) {
	inMemory := opts.InMemory || opts.Dir == ""
	if inMemory && opts.ReadOnly {
		return nil, errors.New("snapshot: read-only store needs a directory")
	}

	dbOpts := badger.DefaultOptions(opts.Dir).
		WithInMemory(inMemory).
		WithReadOnly(opts.ReadOnly).
		WithDetectConflicts(false).
		WithLogger(nil)
	if inMemory {
		dbOpts = dbOpts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot store %q", opts.Dir)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func key(name string) ([]byte, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return []byte(keyPrefix + name), nil
}

// Put stores snap under name, replacing any previous value.
func (s *Store) Put(name string, snap Snapshot) error {
	k, err := key(name)
	if err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	val, err := snap.Marshal()
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k, val)
	})

	return errors.Wrapf(err, "put snapshot %q", name)
}

// Get loads the snapshot stored under name.
func (s *Store) Get(name string) (Snapshot, error) {
	k, err := key(name)
	if err != nil {
		return Snapshot{}, err
	}

	var val []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return Snapshot{}, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "get snapshot %q", name)
	}

	snap, err := Unmarshal(val)
	if err != nil {
		return Snapshot{}, errors.Wrapf(err, "snapshot %q", name)
	}

	return snap, nil
}

// Delete removes the snapshot stored under name.
func (s *Store) Delete(name string) error {
	k, err := key(name)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	if err == badger.ErrKeyNotFound {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}

	return errors.Wrapf(err, "delete snapshot %q", name)
}

// List returns the stored names in ascending byte order.
func (s *Store) List() ([]string, error) {
	var names []string
	prefix := []byte(keyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         prefix,
		})
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			k := it.Item().Key()
			names = append(names, string(k[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list snapshots")
	}

	return names, nil
}
