// Package redis provides the networked real-time implementation of
// storage.Store.
//
// Records live in redis hashes, so a partial update writes only the
// patched fields and concurrent writers merge at field granularity (last
// write per field wins — the contract's per-document atomicity). Access
// paths are backed by index sets per owner, collaborator and person, plus
// a share-code key. Every mutation publishes a pub/sub notification;
// subscribers react by re-querying their full matching set, which gives
// the at-least-once, eventually-consistent whole-result-on-change
// delivery across processes.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wensjes/registry/internal/storage"
)

// Ensure RedisStore implements storage.Store
var _ storage.Store = (*RedisStore)(nil)

// RedisStore implements storage.Store using Redis.
type RedisStore struct {
	rdb *redis.Client
}

// New creates and pings a Redis-backed store with optional password auth.
func New(ctx context.Context, addr, password string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
	}
	return &RedisStore{rdb: rdb}, nil
}

// NewWithClient wraps an existing client (used by tests).
func NewWithClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Key layout. All registry keys share the "wensjes:" prefix so one redis
// instance can host other applications.
func personKey(id string) string          { return "wensjes:person:" + id }
func shareCodeKey(code string) string     { return "wensjes:person:code:" + code }
func ownerIndexKey(ownerID string) string { return "wensjes:persons:owner:" + ownerID }
func collabIndexKey(userID string) string { return "wensjes:persons:collab:" + userID }
func itemKey(id string) string            { return "wensjes:item:" + id }
func itemIndexKey(personID string) string { return "wensjes:items:person:" + personID }
func userKey(id string) string            { return "wensjes:user:" + id }
func usernameKey(username string) string  { return "wensjes:user:name:" + username }

func personsChannel(ownerID string) string { return "wensjes:changed:persons:" + ownerID }
func itemsChannel(personID string) string  { return "wensjes:changed:items:" + personID }

// publish fires a change notification. Failures are not surfaced to the
// writer: delivery is at-least-once across healthy connections, not
// transactional with the write.
func (s *RedisStore) publish(ctx context.Context, channel string) {
	s.rdb.Publish(ctx, channel, "changed")
}
