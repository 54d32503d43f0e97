package storage

import (
	"sync"

	"github.com/wensjes/registry/internal/models"
)

// Hub tracks active whole-result subscriptions for stores that deliver
// synchronously after local writes (sqlite, memory). The redis store has
// its own pub/sub driven delivery.
//
// The hub's lock is held while snapshots are delivered, so a CancelFunc
// that has returned guarantees no further callbacks. Snapshot callbacks
// must not subscribe or cancel from within the callback.
type Hub struct {
	mu         sync.Mutex
	nextID     int
	personSubs map[int]*personSub
	itemSubs   map[int]*itemSub
}

type personSub struct {
	ownerID string
	fn      PersonsSnapshotFunc
}

type itemSub struct {
	personID string
	fn       ItemsSnapshotFunc
}

// NewHub creates an empty subscription hub.
func NewHub() *Hub {
	return &Hub{
		personSubs: make(map[int]*personSub),
		itemSubs:   make(map[int]*itemSub),
	}
}

// AddPersons registers a subscriber for the given owner's persons.
func (h *Hub) AddPersons(ownerID string, fn PersonsSnapshotFunc) CancelFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.personSubs[id] = &personSub{ownerID: ownerID, fn: fn}
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.personSubs, id)
	}
}

// AddItems registers a subscriber for the given person's items.
func (h *Hub) AddItems(personID string, fn ItemsSnapshotFunc) CancelFunc {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.itemSubs[id] = &itemSub{personID: personID, fn: fn}
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.itemSubs, id)
	}
}

// BroadcastPersons delivers the current person set for an owner to every
// matching subscriber.
func (h *Hub) BroadcastPersons(ownerID string, snapshot []*models.Person) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.personSubs {
		if sub.ownerID == ownerID {
			sub.fn(snapshot)
		}
	}
}

// BroadcastItems delivers the current item set for a person to every
// matching subscriber.
func (h *Hub) BroadcastItems(personID string, snapshot []*models.WishlistItem) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.itemSubs {
		if sub.personID == personID {
			sub.fn(snapshot)
		}
	}
}
