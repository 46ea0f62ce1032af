// Package localstore persists small client-local values (cached exchange rates,
// the display currency) in an embedded BadgerDB.
package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/grace_blooms_backend/internal/core/ports"
	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements ports.LocalStore on top of BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	dbPath string
}

var _ ports.LocalStore = (*BadgerStore)(nil)

// Open creates or opens the store at dirPath.
func Open(dirPath string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dirPath).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	return &BadgerStore{db: db, dbPath: dirPath}, nil
}

// OpenInMemory creates a store that lives only as long as the process.
func OpenInMemory() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory local store: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// Get returns the value for key and whether it exists.
func (s *BadgerStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read local key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *BadgerStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write local key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete local key %q: %w", key, err)
	}
	return nil
}

// Close closes the BadgerDB instance.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
