package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreatePerson persists a new person, assigning id, share code and
// creation timestamp, and wires up the owner/collaborator/share-code
// indexes.
func (s *RedisStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.ShareCode == "" {
		person.ShareCode = storage.GenerateShareCode()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, personKey(person.ID), encodePerson(person))
	pipe.Set(ctx, shareCodeKey(person.ShareCode), person.ID, 0)
	pipe.SAdd(ctx, ownerIndexKey(person.OwnerID), person.ID)
	for _, userID := range person.Collaborators {
		pipe.SAdd(ctx, collabIndexKey(userID), person.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to create person: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, personsChannel(person.OwnerID))
	return nil
}

// GetPerson retrieves a person by ID.
func (s *RedisStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	m, err := s.rdb.HGetAll(ctx, personKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get person: %v", storage.ErrUnavailable, err)
	}
	if len(m) == 0 {
		return nil, storage.ErrNotFound
	}
	return decodePerson(id, m)
}

// GetPersonByShareCode retrieves a person by its public share code.
func (s *RedisStore) GetPersonByShareCode(ctx context.Context, code string) (*models.Person, error) {
	id, err := s.rdb.Get(ctx, shareCodeKey(code)).Result()
	if err == redis.Nil {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve share code: %v", storage.ErrUnavailable, err)
	}
	return s.GetPerson(ctx, id)
}

// ListPersonsByOwner retrieves all persons owned by the user, newest first.
func (s *RedisStore) ListPersonsByOwner(ctx context.Context, ownerID string) ([]*models.Person, error) {
	return s.listPersonsByIndex(ctx, ownerIndexKey(ownerID))
}

// ListPersonsByCollaborator retrieves all persons where the user appears
// in the collaborator set, newest first.
func (s *RedisStore) ListPersonsByCollaborator(ctx context.Context, userID string) ([]*models.Person, error) {
	return s.listPersonsByIndex(ctx, collabIndexKey(userID))
}

func (s *RedisStore) listPersonsByIndex(ctx context.Context, indexKey string) ([]*models.Person, error) {
	ids, err := s.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read index: %v", storage.ErrUnavailable, err)
	}

	persons := []*models.Person{}
	for _, id := range ids {
		person, err := s.GetPerson(ctx, id)
		if err == storage.ErrNotFound {
			// Index entry raced a delete from another process; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	sort.Slice(persons, func(i, j int) bool {
		if persons[i].CreatedAt != persons[j].CreatedAt {
			return persons[i].CreatedAt > persons[j].CreatedAt
		}
		return persons[i].ID < persons[j].ID
	})
	return persons, nil
}

// UpdatePerson writes only the patched hash fields, so concurrent field
// updates from different clients merge with last write per field winning.
func (s *RedisStore) UpdatePerson(ctx context.Context, id string, patch *models.PersonPatch) error {
	current, err := s.GetPerson(ctx, id)
	if err != nil {
		return err
	}

	sets, dels := personPatchFields(patch)

	pipe := s.rdb.TxPipeline()
	if len(sets) > 0 {
		pipe.HSet(ctx, personKey(id), sets)
	}
	if len(dels) > 0 {
		pipe.HDel(ctx, personKey(id), dels...)
	}
	if patch.Collaborators != nil {
		for _, userID := range diffStrings(current.Collaborators, *patch.Collaborators) {
			pipe.SRem(ctx, collabIndexKey(userID), id)
		}
		for _, userID := range diffStrings(*patch.Collaborators, current.Collaborators) {
			pipe.SAdd(ctx, collabIndexKey(userID), id)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to update person: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, personsChannel(current.OwnerID))
	return nil
}

// DeletePerson removes a person that has no remaining wishlist items.
func (s *RedisStore) DeletePerson(ctx context.Context, id string) error {
	person, err := s.GetPerson(ctx, id)
	if err != nil {
		return err
	}

	remaining, err := s.rdb.SCard(ctx, itemIndexKey(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: failed to count items: %v", storage.ErrUnavailable, err)
	}
	if remaining > 0 {
		return storage.ErrPersonHasItems
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, personKey(id))
	pipe.Del(ctx, shareCodeKey(person.ShareCode))
	pipe.Del(ctx, itemIndexKey(id))
	pipe.SRem(ctx, ownerIndexKey(person.OwnerID), id)
	for _, userID := range person.Collaborators {
		pipe.SRem(ctx, collabIndexKey(userID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to delete person: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, personsChannel(person.OwnerID))
	return nil
}

// diffStrings returns the elements of a that are not in b.
func diffStrings(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, v := range b {
		in[v] = true
	}
	var out []string
	for _, v := range a {
		if !in[v] {
			out = append(out, v)
		}
	}
	return out
}
