package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreateUser inserts a new user. The username key is claimed with SETNX,
// which makes the uniqueness check safe against racing registrations.
func (s *RedisStore) CreateUser(ctx context.Context, user *models.User) error {
	claimed, err := s.rdb.SetNX(ctx, usernameKey(user.Username), user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: failed to claim username: %v", storage.ErrUnavailable, err)
	}
	if !claimed {
		return storage.ErrAlreadyExists
	}

	if err := s.rdb.HSet(ctx, userKey(user.ID), encodeUser(user)).Err(); err != nil {
		return fmt.Errorf("%w: failed to create user: %v", storage.ErrUnavailable, err)
	}
	return nil
}

// GetUserByUsername returns (nil, nil) when the username is unknown.
func (s *RedisStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	id, err := s.rdb.Get(ctx, usernameKey(models.NormalizeUsername(username))).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve username: %v", storage.ErrUnavailable, err)
	}
	return s.GetUserByID(ctx, id)
}

// GetUserByID returns (nil, nil) when the id is unknown.
func (s *RedisStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m, err := s.rdb.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user: %v", storage.ErrUnavailable, err)
	}
	if len(m) == 0 {
		return nil, nil
	}
	return decodeUser(id, m)
}
