package service

import (
	"context"
	"strings"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/budget"
	"github.com/wensjes/registry/internal/models"
)

// ListItems returns the person's wishlist in rank order.
func (s *RegistryService) ListItems(ctx context.Context, ident access.Identity, personID string) ([]*models.WishlistItem, error) {
	if _, err := s.viewableItems(ctx, ident, personID); err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, personID)
}

// AddItem appends a new wish to the end of the person's list.
func (s *RegistryService) AddItem(ctx context.Context, ident access.Identity, personID string, item *models.WishlistItem) (*models.WishlistItem, error) {
	if err := s.requireEditItems(ctx, ident, personID); err != nil {
		return nil, err
	}

	item.PersonID = personID
	item.Name = strings.TrimSpace(item.Name)
	item.Purchased = false
	if err := item.Validate(); err != nil {
		return nil, err
	}

	rank, err := s.order.NextRank(ctx, personID)
	if err != nil {
		return nil, err
	}
	item.Order = rank

	if err := s.store.CreateItem(ctx, item); err != nil {
		s.logger.Error("AddItem failed", "person_id", personID, "error", err)
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial edit to an item. A patch that does nothing
// but flip the purchased flag is allowed for share viewers too; anything
// else needs edit rights.
func (s *RegistryService) UpdateItem(ctx context.Context, ident access.Identity, itemID string, patch *models.ItemPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	person, err := s.store.GetPerson(ctx, item.PersonID)
	if err != nil {
		return err
	}

	grant := access.Resolve(ident, person)
	if purchasedOnly(patch) {
		if !grant.CanTogglePurchased() {
			return access.ErrPermissionDenied
		}
	} else if !grant.CanEditItems() {
		return access.ErrPermissionDenied
	}

	if err := s.store.UpdateItem(ctx, itemID, patch); err != nil {
		s.logger.Error("UpdateItem failed", "item_id", itemID, "error", err)
		return err
	}
	return nil
}

// TogglePurchased flips the item's purchased flag. This is the one
// mutation open to anonymous share viewers, so gift-givers can mark a
// wish as bought.
func (s *RegistryService) TogglePurchased(ctx context.Context, ident access.Identity, itemID string) (*models.WishlistItem, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	person, err := s.store.GetPerson(ctx, item.PersonID)
	if err != nil {
		return nil, err
	}
	if !access.Resolve(ident, person).CanTogglePurchased() {
		return nil, access.ErrPermissionDenied
	}

	purchased := !item.Purchased
	patch := &models.ItemPatch{Purchased: &purchased}
	if err := s.store.UpdateItem(ctx, itemID, patch); err != nil {
		return nil, err
	}
	item.Purchased = purchased
	return item, nil
}

// DeleteItem removes an item. Remaining ranks keep their values; the gap
// closes on the next reorder.
func (s *RegistryService) DeleteItem(ctx context.Context, ident access.Identity, itemID string) error {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.requireEditItems(ctx, ident, item.PersonID); err != nil {
		return err
	}
	return s.store.DeleteItem(ctx, itemID)
}

// Reorder rewrites the list's ranks to match the given permutation of
// item ids. The permutation must cover exactly the current list.
func (s *RegistryService) Reorder(ctx context.Context, ident access.Identity, personID string, ids []string) error {
	if err := s.requireEditItems(ctx, ident, personID); err != nil {
		return err
	}
	return s.order.Reorder(ctx, personID, ids)
}

// BudgetSummary is the derived spend state of one person's list.
type BudgetSummary struct {
	TotalSpent     float64  `json:"totalSpent"`
	PurchasedCount int      `json:"purchasedCount"`
	ItemCount      int      `json:"itemCount"`
	Budget         *float64 `json:"budget,omitempty"`
	Remaining      *float64 `json:"remaining,omitempty"`
}

// Budget computes the spend summary for a person. Remaining is absent when
// no budget is set, and goes negative on overspend.
func (s *RegistryService) Budget(ctx context.Context, ident access.Identity, personID string) (*BudgetSummary, error) {
	person, err := s.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !access.Resolve(ident, person).CanViewItems() {
		return nil, access.ErrPermissionDenied
	}
	items, err := s.store.ListItems(ctx, personID)
	if err != nil {
		return nil, err
	}

	summary := &BudgetSummary{
		TotalSpent:     budget.TotalSpent(items),
		PurchasedCount: budget.PurchasedCount(items),
		ItemCount:      len(items),
		Budget:         person.Budget,
	}
	if remaining, ok := budget.Remaining(person, items); ok {
		summary.Remaining = &remaining
	}
	return summary, nil
}

func (s *RegistryService) requireEditItems(ctx context.Context, ident access.Identity, personID string) error {
	person, err := s.store.GetPerson(ctx, personID)
	if err != nil {
		return err
	}
	if !access.Resolve(ident, person).CanEditItems() {
		return access.ErrPermissionDenied
	}
	return nil
}

func (s *RegistryService) viewableItems(ctx context.Context, ident access.Identity, personID string) (*models.Person, error) {
	person, err := s.store.GetPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	if !access.Resolve(ident, person).CanViewItems() {
		return nil, access.ErrPermissionDenied
	}
	return person, nil
}

func purchasedOnly(p *models.ItemPatch) bool {
	return p.Purchased != nil &&
		p.Name == nil && p.Price == nil && !p.ClearPrice &&
		p.URL == nil && p.ImageRef == nil && p.Note == nil
}
