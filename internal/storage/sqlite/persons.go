package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

// CreatePerson persists a new person, assigning id, share code and
// creation timestamp.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if person.ShareCode == "" {
		person.ShareCode = storage.GenerateShareCode()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	interests, err := json.Marshal(person.Interests)
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", storage.ErrUnavailable, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO persons (id, name, age_group, gender, interests, share_code, created_at, owner_id, photo_ref, budget, pin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		person.ID, person.Name, person.AgeGroup, person.Gender, string(interests),
		person.ShareCode, person.CreatedAt, person.OwnerID, person.PhotoRef,
		person.Budget, person.Pin,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	for _, userID := range person.Collaborators {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO collaborators (person_id, user_id) VALUES (?, ?)",
			person.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert collaborator: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", storage.ErrUnavailable, err)
	}

	s.broadcastPersons(ctx, person.OwnerID)
	return nil
}

// GetPerson retrieves a person by ID, including its collaborator set.
func (s *SQLiteStore) GetPerson(ctx context.Context, id string) (*models.Person, error) {
	return s.getPersonWhere(ctx, "id = ?", id)
}

// GetPersonByShareCode retrieves a person by its public share code.
func (s *SQLiteStore) GetPersonByShareCode(ctx context.Context, code string) (*models.Person, error) {
	return s.getPersonWhere(ctx, "share_code = ?", code)
}

func (s *SQLiteStore) getPersonWhere(ctx context.Context, where string, arg any) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, age_group, gender, interests, share_code, created_at, owner_id, photo_ref, budget, pin
		FROM persons WHERE `+where, arg)

	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	if err := s.loadCollaborators(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// ListPersonsByOwner retrieves all persons owned by the user, newest first.
func (s *SQLiteStore) ListPersonsByOwner(ctx context.Context, ownerID string) ([]*models.Person, error) {
	return s.listPersonsWhere(ctx, `
		SELECT id, name, age_group, gender, interests, share_code, created_at, owner_id, photo_ref, budget, pin
		FROM persons WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
}

// ListPersonsByCollaborator retrieves all persons where the user appears in
// the collaborator set, newest first.
func (s *SQLiteStore) ListPersonsByCollaborator(ctx context.Context, userID string) ([]*models.Person, error) {
	return s.listPersonsWhere(ctx, `
		SELECT p.id, p.name, p.age_group, p.gender, p.interests, p.share_code, p.created_at, p.owner_id, p.photo_ref, p.budget, p.pin
		FROM persons p
		JOIN collaborators c ON c.person_id = p.id
		WHERE c.user_id = ? ORDER BY p.created_at DESC`, userID)
}

func (s *SQLiteStore) listPersonsWhere(ctx context.Context, query string, arg any) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list persons: %v", storage.ErrUnavailable, err)
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	for _, person := range persons {
		if err := s.loadCollaborators(ctx, person); err != nil {
			return nil, err
		}
	}
	return persons, nil
}

// UpdatePerson applies a partial merge. Unspecified fields keep their
// stored values.
func (s *SQLiteStore) UpdatePerson(ctx context.Context, id string, patch *models.PersonPatch) error {
	person, err := s.GetPerson(ctx, id)
	if err != nil {
		return err
	}
	patch.Apply(person)

	interests, err := json.Marshal(person.Interests)
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", storage.ErrUnavailable, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE persons SET name = ?, age_group = ?, gender = ?, interests = ?, photo_ref = ?, budget = ?, pin = ?
		WHERE id = ?`,
		person.Name, person.AgeGroup, person.Gender, string(interests),
		person.PhotoRef, person.Budget, person.Pin, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	if patch.Collaborators != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM collaborators WHERE person_id = ?", id); err != nil {
			return fmt.Errorf("failed to clear collaborators: %w", err)
		}
		for _, userID := range person.Collaborators {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO collaborators (person_id, user_id) VALUES (?, ?)", id, userID); err != nil {
				return fmt.Errorf("failed to insert collaborator: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", storage.ErrUnavailable, err)
	}

	s.broadcastPersons(ctx, person.OwnerID)
	return nil
}

// DeletePerson removes a person that has no remaining wishlist items.
func (s *SQLiteStore) DeletePerson(ctx context.Context, id string) error {
	person, err := s.GetPerson(ctx, id)
	if err != nil {
		return err
	}

	var count int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM wishlist_items WHERE person_id = ?", id).Scan(&count)
	if err != nil {
		return fmt.Errorf("%w: failed to count items: %v", storage.ErrUnavailable, err)
	}
	if count > 0 {
		return storage.ErrPersonHasItems
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM persons WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	s.broadcastPersons(ctx, person.OwnerID)
	return nil
}

func (s *SQLiteStore) loadCollaborators(ctx context.Context, person *models.Person) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM collaborators WHERE person_id = ? ORDER BY user_id", person.ID)
	if err != nil {
		return fmt.Errorf("failed to get collaborators: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("failed to scan collaborator: %w", err)
		}
		person.Collaborators = append(person.Collaborators, userID)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	person := &models.Person{}
	var interests string
	err := row.Scan(
		&person.ID, &person.Name, &person.AgeGroup, &person.Gender, &interests,
		&person.ShareCode, &person.CreatedAt, &person.OwnerID, &person.PhotoRef,
		&person.Budget, &person.Pin,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(interests), &person.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	return person, nil
}
