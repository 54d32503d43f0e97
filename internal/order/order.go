// Package order maintains the dense, zero-based ranking of wishlist items
// within one person's list.
//
// A reorder rewrites every rank to the item's index in the requested
// permutation. Full reindexing is O(N) per move but keeps the invariant
// trivial — lists hold tens of items, so fractional ordering keys are not
// worth their drift. Deleting an item leaves a gap that persists until the
// next explicit reorder; callers may only assume contiguity after one.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/wensjes/registry/internal/storage"
)

// ErrInconsistent is returned when a reorder request does not name exactly
// the items currently on the list. No ranks are written in that case.
var ErrInconsistent = errors.New("reorder list does not match current items")

// Manager is the sole writer of item order ranks.
type Manager struct {
	store storage.Store
}

// NewManager creates an order manager over the given store.
func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// NextRank returns the rank for a new item: appended at the end.
func (m *Manager) NextRank(ctx context.Context, personID string) (int, error) {
	items, err := m.store.ListItems(ctx, personID)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Reorder assigns order := index for each item id at its position in ids.
// The list must be a permutation of exactly the person's current item ids;
// unknown ids or wrong cardinality fail with ErrInconsistent before any
// rank is written. Repeating an identical call is idempotent.
//
// Two clients reordering concurrently race last-write-wins: the later
// call's permutation stands and the earlier intent is discarded.
func (m *Manager) Reorder(ctx context.Context, personID string, ids []string) error {
	items, err := m.store.ListItems(ctx, personID)
	if err != nil {
		return err
	}

	if len(ids) != len(items) {
		return fmt.Errorf("%w: got %d ids, list has %d items", ErrInconsistent, len(ids), len(items))
	}
	current := make(map[string]bool, len(items))
	for _, item := range items {
		current[item.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !current[id] {
			return fmt.Errorf("%w: unknown item %s", ErrInconsistent, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate item %s", ErrInconsistent, id)
		}
		seen[id] = true
	}

	for index, id := range ids {
		if err := m.store.SetItemOrder(ctx, id, index); err != nil {
			return err
		}
	}
	return nil
}
