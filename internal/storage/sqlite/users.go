package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreateUser inserts a new user. The username's UNIQUE constraint backs
// the duplicate check even when two registrations race.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, display_name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.DisplayName, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by their normalized username.
// Returns (nil, nil) when the username is unknown.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUserWhere(ctx, "username = ?", models.NormalizeUsername(username))
}

// GetUserByID retrieves a user by their ID.
// Returns (nil, nil) when the id is unknown.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUserWhere(ctx, "id = ?", id)
}

func (s *SQLiteStore) getUserWhere(ctx context.Context, where string, arg any) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, display_name, password_hash, created_at
		FROM users WHERE `+where, arg).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.PasswordHash, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
