// Package memory provides an in-memory storage.Store used to unit-test the
// backend-agnostic layers (access control, ordering, aggregation, service)
// against the exact persistence contract the real backends satisfy.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with plain maps. Snapshots are
// delivered synchronously after each write, like the sqlite store.
type MemoryStore struct {
	mu      sync.Mutex
	persons map[string]*models.Person
	items   map[string]*models.WishlistItem
	users   map[string]*models.User // keyed by id
	hub     *storage.Hub
}

// New creates an empty in-memory store.
func New() *MemoryStore {
	return &MemoryStore{
		persons: make(map[string]*models.Person),
		items:   make(map[string]*models.WishlistItem),
		users:   make(map[string]*models.User),
		hub:     storage.NewHub(),
	}
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// CreatePerson stores a copy of the person, assigning id, share code and
// creation timestamp.
func (s *MemoryStore) CreatePerson(ctx context.Context, person *models.Person) error {
	s.mu.Lock()
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.ShareCode == "" {
		person.ShareCode = storage.GenerateShareCode()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}
	s.persons[person.ID] = clonePerson(person)
	owner := person.OwnerID
	s.mu.Unlock()

	s.broadcastPersons(owner)
	return nil
}

// GetPerson retrieves a person by ID.
func (s *MemoryStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	person, ok := s.persons[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return clonePerson(person), nil
}

// GetPersonByShareCode retrieves a person by its public share code.
func (s *MemoryStore) GetPersonByShareCode(ctx context.Context, code string) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, person := range s.persons {
		if person.ShareCode == code {
			return clonePerson(person), nil
		}
	}
	return nil, storage.ErrNotFound
}

// ListPersonsByOwner retrieves all persons owned by the user, newest first.
func (s *MemoryStore) ListPersonsByOwner(ctx context.Context, ownerID string) ([]*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listPersonsLocked(func(p *models.Person) bool { return p.OwnerID == ownerID }), nil
}

// ListPersonsByCollaborator retrieves all persons where the user appears
// in the collaborator set, newest first.
func (s *MemoryStore) ListPersonsByCollaborator(ctx context.Context, userID string) ([]*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listPersonsLocked(func(p *models.Person) bool { return p.IsCollaborator(userID) }), nil
}

func (s *MemoryStore) listPersonsLocked(match func(*models.Person) bool) []*models.Person {
	persons := []*models.Person{}
	for _, person := range s.persons {
		if match(person) {
			persons = append(persons, clonePerson(person))
		}
	}
	sort.Slice(persons, func(i, j int) bool {
		if persons[i].CreatedAt != persons[j].CreatedAt {
			return persons[i].CreatedAt > persons[j].CreatedAt
		}
		return persons[i].ID < persons[j].ID
	})
	return persons
}

// UpdatePerson applies a partial merge.
func (s *MemoryStore) UpdatePerson(ctx context.Context, id string, patch *models.PersonPatch) error {
	s.mu.Lock()
	person, ok := s.persons[id]
	if !ok {
		s.mu.Unlock()
		return storage.ErrNotFound
	}
	patch.Apply(person)
	owner := person.OwnerID
	s.mu.Unlock()

	s.broadcastPersons(owner)
	return nil
}

// DeletePerson removes a person that has no remaining wishlist items.
func (s *MemoryStore) DeletePerson(ctx context.Context, id string) error {
	s.mu.Lock()
	person, ok := s.persons[id]
	if !ok {
		s.mu.Unlock()
		return storage.ErrNotFound
	}
	for _, item := range s.items {
		if item.PersonID == id {
			s.mu.Unlock()
			return storage.ErrPersonHasItems
		}
	}
	owner := person.OwnerID
	delete(s.persons, id)
	s.mu.Unlock()

	s.broadcastPersons(owner)
	return nil
}

// SubscribePersons delivers the owner's current person set immediately and
// after every mutation touching it.
func (s *MemoryStore) SubscribePersons(ctx context.Context, ownerID string, fn storage.PersonsSnapshotFunc) (storage.CancelFunc, error) {
	persons, _ := s.ListPersonsByOwner(ctx, ownerID)
	fn(persons)
	return s.hub.AddPersons(ownerID, fn), nil
}

// CreateItem stores a copy of the item, assigning id and creation timestamp.
func (s *MemoryStore) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	s.mu.Lock()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}
	s.items[item.ID] = cloneItem(item)
	personID := item.PersonID
	s.mu.Unlock()

	s.broadcastItems(personID)
	return nil
}

// GetItem retrieves a wishlist item by ID.
func (s *MemoryStore) GetItem(ctx context.Context, id string) (*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cloneItem(item), nil
}

// ListItems retrieves a person's items sorted by order rank.
func (s *MemoryStore) ListItems(ctx context.Context, personID string) ([]*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listItemsLocked(personID), nil
}

func (s *MemoryStore) listItemsLocked(personID string) []*models.WishlistItem {
	items := []*models.WishlistItem{}
	for _, item := range s.items {
		if item.PersonID == personID {
			items = append(items, cloneItem(item))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt < items[j].CreatedAt
	})
	return items
}

// UpdateItem applies a partial merge.
func (s *MemoryStore) UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) error {
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return storage.ErrNotFound
	}
	patch.Apply(item)
	personID := item.PersonID
	s.mu.Unlock()

	s.broadcastItems(personID)
	return nil
}

// SetItemOrder rewrites a single item's order rank.
func (s *MemoryStore) SetItemOrder(ctx context.Context, id string, order int) error {
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return storage.ErrNotFound
	}
	item.Order = order
	personID := item.PersonID
	s.mu.Unlock()

	s.broadcastItems(personID)
	return nil
}

// DeleteItem removes a wishlist item without renumbering survivors.
func (s *MemoryStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	item, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return storage.ErrNotFound
	}
	personID := item.PersonID
	delete(s.items, id)
	s.mu.Unlock()

	s.broadcastItems(personID)
	return nil
}

// SubscribeItems delivers the person's current item set immediately and
// after every mutation touching it.
func (s *MemoryStore) SubscribeItems(ctx context.Context, personID string, fn storage.ItemsSnapshotFunc) (storage.CancelFunc, error) {
	items, _ := s.ListItems(ctx, personID)
	fn(items)
	return s.hub.AddItems(personID, fn), nil
}

// CreateUser stores a copy of the user, enforcing username uniqueness.
func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

// GetUserByUsername returns (nil, nil) when the username is unknown.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalized := models.NormalizeUsername(username)
	for _, u := range s.users {
		if u.Username == normalized {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetUserByID returns (nil, nil) when the id is unknown.
func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (s *MemoryStore) broadcastPersons(ownerID string) {
	persons, _ := s.ListPersonsByOwner(context.Background(), ownerID)
	s.hub.BroadcastPersons(ownerID, persons)
}

func (s *MemoryStore) broadcastItems(personID string) {
	items, _ := s.ListItems(context.Background(), personID)
	s.hub.BroadcastItems(personID, items)
}

func clonePerson(p *models.Person) *models.Person {
	c := *p
	c.Interests = append([]string(nil), p.Interests...)
	c.Collaborators = append([]string(nil), p.Collaborators...)
	if p.Budget != nil {
		b := *p.Budget
		c.Budget = &b
	}
	return &c
}

func cloneItem(i *models.WishlistItem) *models.WishlistItem {
	c := *i
	if i.Price != nil {
		v := *i.Price
		c.Price = &v
	}
	return &c
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}
