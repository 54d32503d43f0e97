// Package storage provides abstractions for persistent registry data.
package storage

import (
	"context"
	"errors"
	"math/rand"

	"github.com/wensjes/registry/internal/models"
)

var (
	// ErrNotFound is returned when an id or share code has no record.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPersonHasItems is returned by DeletePerson while wishlist items
	// still reference the person. Callers must delete the items first.
	ErrPersonHasItems = errors.New("person still has wishlist items")

	// ErrUnavailable wraps backing I/O failures.
	ErrUnavailable = errors.New("store unavailable")
)

// PersonsSnapshotFunc receives the full current set of matching persons.
type PersonsSnapshotFunc func(persons []*models.Person)

// ItemsSnapshotFunc receives the full current set of matching items,
// sorted by their order rank.
type ItemsSnapshotFunc func(items []*models.WishlistItem)

// CancelFunc stops a subscription. Delivery has stopped once it returns.
type CancelFunc func()

// Store defines the interface for registry storage operations.
//
// Two real implementations exist: a local durable store (sqlite) and a
// networked real-time store (redis). An in-memory fake backs unit tests.
// All three satisfy the same contract so the access-control, ordering and
// aggregation layers stay backend-agnostic.
//
// Creation assigns a unique id and creation timestamp; CreatePerson also
// assigns a unique share code. Updates are partial merges via patch
// structs and never replace unspecified fields. Subscriptions re-deliver
// the whole matching result set after every relevant mutation, never
// diffs; the first snapshot arrives before Subscribe returns.
type Store interface {
	// Persons
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, id string) (*models.Person, error)
	GetPersonByShareCode(ctx context.Context, code string) (*models.Person, error)
	ListPersonsByOwner(ctx context.Context, ownerID string) ([]*models.Person, error)
	ListPersonsByCollaborator(ctx context.Context, userID string) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, id string, patch *models.PersonPatch) error
	// DeletePerson removes a person with no remaining items.
	// It fails with ErrPersonHasItems instead of cascading.
	DeletePerson(ctx context.Context, id string) error
	SubscribePersons(ctx context.Context, ownerID string, fn PersonsSnapshotFunc) (CancelFunc, error)

	// Items
	CreateItem(ctx context.Context, item *models.WishlistItem) error
	GetItem(ctx context.Context, id string) (*models.WishlistItem, error)
	// ListItems returns the person's items sorted by order rank.
	ListItems(ctx context.Context, personID string) ([]*models.WishlistItem, error)
	UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) error
	// SetItemOrder rewrites a single item's order rank. Reserved for the
	// order package, which is the sole writer of ranks.
	SetItemOrder(ctx context.Context, id string, order int) error
	DeleteItem(ctx context.Context, id string) error
	SubscribeItems(ctx context.Context, personID string, fn ItemsSnapshotFunc) (CancelFunc, error)

	// Users
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername returns (nil, nil) when the username is unknown.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByID returns (nil, nil) when the id is unknown.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}

const (
	shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	shareCodeLength   = 8
)

// GenerateShareCode returns a random 8-character upper-case code used to
// address a person's list anonymously.
func GenerateShareCode() string {
	b := make([]byte, shareCodeLength)
	for i := range b {
		b[i] = shareCodeAlphabet[rand.Intn(len(shareCodeAlphabet))]
	}
	return string(b)
}
