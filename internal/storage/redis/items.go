package redis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreateItem persists a new wishlist item, assigning id and creation
// timestamp. The caller sets the order rank before creating.
func (s *RedisStore) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, itemKey(item.ID), encodeItem(item))
	pipe.SAdd(ctx, itemIndexKey(item.PersonID), item.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to create item: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, itemsChannel(item.PersonID))
	return nil
}

// GetItem retrieves a wishlist item by ID.
func (s *RedisStore) GetItem(ctx context.Context, id string) (*models.WishlistItem, error) {
	m, err := s.rdb.HGetAll(ctx, itemKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get item: %v", storage.ErrUnavailable, err)
	}
	if len(m) == 0 {
		return nil, storage.ErrNotFound
	}
	return decodeItem(id, m)
}

// ListItems retrieves a person's items sorted by order rank.
func (s *RedisStore) ListItems(ctx context.Context, personID string) ([]*models.WishlistItem, error) {
	ids, err := s.rdb.SMembers(ctx, itemIndexKey(personID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read item index: %v", storage.ErrUnavailable, err)
	}

	items := []*models.WishlistItem{}
	for _, id := range ids {
		item, err := s.GetItem(ctx, id)
		if err == storage.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt < items[j].CreatedAt
	})
	return items, nil
}

// UpdateItem writes only the patched hash fields; unspecified fields are
// untouched on the wire.
func (s *RedisStore) UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	sets, dels := itemPatchFields(patch)

	pipe := s.rdb.TxPipeline()
	if len(sets) > 0 {
		pipe.HSet(ctx, itemKey(id), sets)
	}
	if len(dels) > 0 {
		pipe.HDel(ctx, itemKey(id), dels...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to update item: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, itemsChannel(item.PersonID))
	return nil
}

// SetItemOrder rewrites a single item's order rank.
func (s *RedisStore) SetItemOrder(ctx context.Context, id string, order int) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rdb.HSet(ctx, itemKey(id), "item_order", order).Err(); err != nil {
		return fmt.Errorf("%w: failed to set item order: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, itemsChannel(item.PersonID))
	return nil
}

// DeleteItem removes a wishlist item without renumbering survivors.
func (s *RedisStore) DeleteItem(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, itemKey(id))
	pipe.SRem(ctx, itemIndexKey(item.PersonID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: failed to delete item: %v", storage.ErrUnavailable, err)
	}

	s.publish(ctx, itemsChannel(item.PersonID))
	return nil
}
