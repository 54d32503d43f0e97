package service

import (
	"context"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/budget"
	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
	"github.com/wensjes/registry/internal/suggest"
)

// SharedList is what a share-code visitor gets to see. While the PIN gate
// is unmet only the person's name and the gate itself are disclosed.
type SharedList struct {
	Person      *models.Person         `json:"person,omitempty"`
	Items       []*models.WishlistItem `json:"items,omitempty"`
	PersonName  string                 `json:"personName"`
	PinRequired bool                   `json:"pinRequired"`
}

// SharedView resolves a share code to the person's list. An unknown code is
// a plain not-found; share codes are the only handle anonymous visitors
// have, so there is nothing to hide behind a permission error.
func (s *RegistryService) SharedView(ctx context.Context, ident access.Identity, code string) (*SharedList, error) {
	person, err := s.store.GetPersonByShareCode(ctx, code)
	if err != nil {
		return nil, err
	}

	grant := access.Resolve(ident, person)
	if !grant.CanViewProfile() {
		if grant.Role == access.RoleNone {
			return nil, access.ErrPermissionDenied
		}
		return &SharedList{PersonName: person.Name, PinRequired: true}, nil
	}

	items, err := s.store.ListItems(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	if !grant.CanViewCollaborators() {
		person = withoutCollaborators(person)
	}
	return &SharedList{
		Person:     person,
		Items:      items,
		PersonName: person.Name,
	}, nil
}

// VerifyPin checks a pasted PIN candidate against the person behind the
// share code. It runs the same gate a digit-by-digit entry would, so the
// matching rules (digits only, full length, exact match) are identical.
func (s *RegistryService) VerifyPin(ctx context.Context, code, candidate string) (bool, error) {
	person, err := s.store.GetPersonByShareCode(ctx, code)
	if err != nil {
		return false, err
	}
	gate := access.NewPinGate(person.Pin)
	gate.Enter(candidate)
	return gate.Unlocked(), nil
}

// Suggestions returns catalog gift ideas matching the person's profile,
// constrained by the remaining budget when one is set.
func (s *RegistryService) Suggestions(ctx context.Context, ident access.Identity, personID string) ([]models.Suggestion, error) {
	person, err := s.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !access.Resolve(ident, person).CanViewProfile() {
		return nil, access.ErrPermissionDenied
	}
	items, err := s.store.ListItems(ctx, personID)
	if err != nil {
		return nil, err
	}

	var remaining *float64
	if r, ok := budget.Remaining(person, items); ok {
		remaining = &r
	}
	return suggest.Suggest(person.AgeGroup, person.Gender, person.Interests, remaining), nil
}

// WatchPersons streams snapshots of the user's owned persons: the current
// set immediately, then the whole set again after every change.
func (s *RegistryService) WatchPersons(ctx context.Context, userID string, fn storage.PersonsSnapshotFunc) (storage.CancelFunc, error) {
	return s.store.SubscribePersons(ctx, userID, fn)
}

// WatchItems streams snapshots of a person's wishlist after an access
// check. The subscription keeps delivering until cancelled; access is not
// re-evaluated per snapshot.
func (s *RegistryService) WatchItems(ctx context.Context, ident access.Identity, personID string, fn storage.ItemsSnapshotFunc) (storage.CancelFunc, error) {
	if _, err := s.viewableItems(ctx, ident, personID); err != nil {
		return nil, err
	}
	return s.store.SubscribeItems(ctx, personID, fn)
}
