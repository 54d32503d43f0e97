package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreateItem persists a new wishlist item, assigning id and creation
// timestamp. The caller sets the order rank before creating.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (id, person_id, name, price, url, image_ref, note, purchased, item_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.PersonID, item.Name, item.Price, item.URL, item.ImageRef,
		item.Note, item.Purchased, item.Order, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	s.broadcastItems(ctx, item.PersonID)
	return nil
}

// GetItem retrieves a wishlist item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.WishlistItem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, person_id, name, price, url, image_ref, note, purchased, item_order, created_at
		FROM wishlist_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// ListItems retrieves a person's items sorted by order rank.
func (s *SQLiteStore) ListItems(ctx context.Context, personID string) ([]*models.WishlistItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, person_id, name, price, url, image_ref, note, purchased, item_order, created_at
		FROM wishlist_items WHERE person_id = ? ORDER BY item_order ASC, created_at ASC`, personID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list items: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	items := []*models.WishlistItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}
	return items, nil
}

// UpdateItem applies a partial merge. Unspecified fields keep their
// stored values.
func (s *SQLiteStore) UpdateItem(ctx context.Context, id string, patch *models.ItemPatch) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	patch.Apply(item)

	_, err = s.db.ExecContext(ctx, `
		UPDATE wishlist_items SET name = ?, price = ?, url = ?, image_ref = ?, note = ?, purchased = ?
		WHERE id = ?`,
		item.Name, item.Price, item.URL, item.ImageRef, item.Note, item.Purchased, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.broadcastItems(ctx, item.PersonID)
	return nil
}

// SetItemOrder rewrites a single item's order rank.
func (s *SQLiteStore) SetItemOrder(ctx context.Context, id string, order int) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE wishlist_items SET item_order = ? WHERE id = ?", order, id)
	if err != nil {
		return fmt.Errorf("failed to set item order: %w", err)
	}

	s.broadcastItems(ctx, item.PersonID)
	return nil
}

// DeleteItem removes a wishlist item. Survivor ranks are not renumbered;
// gaps persist until the next explicit reorder.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM wishlist_items WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.broadcastItems(ctx, item.PersonID)
	return nil
}

func scanItem(row rowScanner) (*models.WishlistItem, error) {
	item := &models.WishlistItem{}
	err := row.Scan(
		&item.ID, &item.PersonID, &item.Name, &item.Price, &item.URL,
		&item.ImageRef, &item.Note, &item.Purchased, &item.Order, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}
