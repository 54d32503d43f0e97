// Package service orchestrates the registry: every command passes through
// access control against the target person, authorized writes go through
// the persistence port, and the port's subscriptions push the resulting
// state to observers. The package is backend-agnostic; it works the same
// over the sqlite, redis and in-memory stores.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/order"
	"github.com/wensjes/registry/internal/storage"
)

// RegistryService implements the registry operations over a Store.
type RegistryService struct {
	store  storage.Store
	order  *order.Manager
	logger *slog.Logger
}

// NewRegistryService creates a registry service with the given storage
// backend.
func NewRegistryService(store storage.Store, logger *slog.Logger) *RegistryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistryService{
		store:  store,
		order:  order.NewManager(store),
		logger: logger,
	}
}

// CreatePerson creates a wishlist subject owned by the authenticated user.
func (s *RegistryService) CreatePerson(ctx context.Context, ownerID string, person *models.Person) (*models.Person, error) {
	person.Name = strings.TrimSpace(person.Name)
	person.OwnerID = ownerID
	person.Collaborators = nil
	if err := person.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreatePerson(ctx, person); err != nil {
		s.logger.Error("CreatePerson failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.logger.Info("Person created", "person_id", person.ID, "owner_id", ownerID)
	return person, nil
}

// GetPerson retrieves a person for the requester, applying visibility
// rules. Share viewers behind an unmet PIN gate are denied, and never see
// the collaborator set.
func (s *RegistryService) GetPerson(ctx context.Context, ident access.Identity, id string) (*models.Person, error) {
	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	grant := access.Resolve(ident, person)
	if !grant.CanViewProfile() {
		return nil, access.ErrPermissionDenied
	}
	if !grant.CanViewCollaborators() {
		person = withoutCollaborators(person)
	}
	return person, nil
}

// PersonList partitions a user's persons into lists they own and lists
// shared with them as a collaborator.
type PersonList struct {
	Owned        []*models.Person `json:"owned"`
	SharedWithMe []*models.Person `json:"sharedWithMe"`
}

// ListPersons returns the union of persons the user owns and persons where
// they collaborate, partitioned for presentation.
func (s *RegistryService) ListPersons(ctx context.Context, userID string) (*PersonList, error) {
	owned, err := s.store.ListPersonsByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	shared, err := s.store.ListPersonsByCollaborator(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &PersonList{Owned: owned, SharedWithMe: shared}, nil
}

// UpdatePerson applies a profile patch. Owners may change everything;
// collaborators may change profile fields but not pin or budget.
// Collaborator changes go through AddCollaborator/RemoveCollaborator.
func (s *RegistryService) UpdatePerson(ctx context.Context, ident access.Identity, id string, patch *models.PersonPatch) error {
	if patch.Collaborators != nil {
		return access.ErrPermissionDenied
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return err
	}
	grant := access.Resolve(ident, person)
	if !grant.CanEditProfile() {
		return access.ErrPermissionDenied
	}
	if (patch.Pin != nil || patch.Budget != nil || patch.ClearBudget) && grant.Role != access.RoleOwner {
		return access.ErrPermissionDenied
	}

	if err := s.store.UpdatePerson(ctx, id, patch); err != nil {
		s.logger.Error("UpdatePerson failed", "person_id", id, "error", err)
		return err
	}
	return nil
}

// DeletePerson deletes a person and cascades over its items: every item is
// deleted first, and a failure aborts the cascade so the person is never
// left orphaned-then-missing. Owner only.
func (s *RegistryService) DeletePerson(ctx context.Context, ident access.Identity, id string) error {
	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return err
	}
	grant := access.Resolve(ident, person)
	if !grant.CanDeletePerson() {
		return access.ErrPermissionDenied
	}

	items, err := s.store.ListItems(ctx, id)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.store.DeleteItem(ctx, item.ID); err != nil {
			s.logger.Error("Cascade aborted", "person_id", id, "item_id", item.ID, "error", err)
			return err
		}
	}

	if err := s.store.DeletePerson(ctx, id); err != nil {
		s.logger.Error("DeletePerson failed", "person_id", id, "error", err)
		return err
	}

	s.logger.Info("Person deleted", "person_id", id, "items_deleted", len(items))
	return nil
}

// AddCollaborator grants a user edit rights on the person's list, looked
// up by username. Owner only; the owner can never be added.
func (s *RegistryService) AddCollaborator(ctx context.Context, ident access.Identity, personID, username string) error {
	person, err := s.personForCollaboratorChange(ctx, ident, personID)
	if err != nil {
		return err
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return storage.ErrNotFound
	}
	if user.ID == person.OwnerID {
		return &models.ValidationError{Field: "collaborator", Reason: "owner cannot be a collaborator"}
	}
	if person.IsCollaborator(user.ID) {
		return nil
	}

	collaborators := append(append([]string{}, person.Collaborators...), user.ID)
	return s.store.UpdatePerson(ctx, personID, &models.PersonPatch{Collaborators: &collaborators})
}

// RemoveCollaborator revokes a user's edit rights. Owner only.
func (s *RegistryService) RemoveCollaborator(ctx context.Context, ident access.Identity, personID, userID string) error {
	person, err := s.personForCollaboratorChange(ctx, ident, personID)
	if err != nil {
		return err
	}

	collaborators := []string{}
	for _, c := range person.Collaborators {
		if c != userID {
			collaborators = append(collaborators, c)
		}
	}
	if len(collaborators) == len(person.Collaborators) {
		return nil
	}
	return s.store.UpdatePerson(ctx, personID, &models.PersonPatch{Collaborators: &collaborators})
}

func (s *RegistryService) personForCollaboratorChange(ctx context.Context, ident access.Identity, personID string) (*models.Person, error) {
	person, err := s.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !access.Resolve(ident, person).CanManageCollaborators() {
		return nil, access.ErrPermissionDenied
	}
	return person, nil
}

// IsPermissionDenied reports whether err is a permission failure.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, access.ErrPermissionDenied)
}

func withoutCollaborators(p *models.Person) *models.Person {
	c := *p
	c.Collaborators = nil
	return &c
}
