// Package sqlite provides the local durable implementation of storage.Store.
//
// It is the single-process, single-device backend: data lives for the
// lifetime of the installation, and subscription snapshots are delivered
// synchronously, before the triggering write returns.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/wensjes/registry/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	hub *storage.Hub
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", storage.ErrUnavailable, err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, hub: storage.NewHub()}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// broadcastPersons re-queries the owner's person set and fans it out to
// active subscribers. Delivery failures cannot happen (callbacks), and a
// re-query failure is swallowed: the subscriber simply keeps its previous
// snapshot, matching the whole-result-on-change contract.
func (s *SQLiteStore) broadcastPersons(ctx context.Context, ownerID string) {
	persons, err := s.ListPersonsByOwner(ctx, ownerID)
	if err != nil {
		return
	}
	s.hub.BroadcastPersons(ownerID, persons)
}

func (s *SQLiteStore) broadcastItems(ctx context.Context, personID string) {
	items, err := s.ListItems(ctx, personID)
	if err != nil {
		return
	}
	s.hub.BroadcastItems(personID, items)
}

// SubscribePersons delivers the owner's current person set immediately and
// after every mutation touching it, until the returned cancel is called.
func (s *SQLiteStore) SubscribePersons(ctx context.Context, ownerID string, fn storage.PersonsSnapshotFunc) (storage.CancelFunc, error) {
	persons, err := s.ListPersonsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	fn(persons)
	return s.hub.AddPersons(ownerID, fn), nil
}

// SubscribeItems delivers the person's current item set immediately and
// after every mutation touching it, until the returned cancel is called.
func (s *SQLiteStore) SubscribeItems(ctx context.Context, personID string, fn storage.ItemsSnapshotFunc) (storage.CancelFunc, error) {
	items, err := s.ListItems(ctx, personID)
	if err != nil {
		return nil, err
	}
	fn(items)
	return s.hub.AddItems(personID, fn), nil
}
