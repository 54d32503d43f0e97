package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/models"
)

func TestAddItemAppends(t *testing.T) {
	f := newFixture(t)
	person := f.person(t, "owner")

	a := f.item(t, owner(), person.ID, "a")
	b := f.item(t, owner(), person.ID, "b")
	c := f.item(t, owner(), person.ID, "c")

	if a.Order != 0 || b.Order != 1 || c.Order != 2 {
		t.Errorf("Expected appended ranks 0,1,2; got %d,%d,%d", a.Order, b.Order, c.Order)
	}
	if a.Purchased {
		t.Error("New items must start unpurchased")
	}
}

func TestItemPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner", "collab")
	item := f.item(t, owner(), person.ID, "Boek")
	viewer := access.Identity{ShareCode: person.ShareCode}

	t.Run("viewer cannot add", func(t *testing.T) {
		_, err := f.svc.AddItem(ctx, viewer, person.ID, &models.WishlistItem{Name: "x"})
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("collaborator edits", func(t *testing.T) {
		note := "pocketversie"
		if err := f.svc.UpdateItem(ctx, collab(), item.ID, &models.ItemPatch{Note: &note}); err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
	})

	t.Run("viewer cannot edit fields", func(t *testing.T) {
		name := "gekaapt"
		err := f.svc.UpdateItem(ctx, viewer, item.ID, &models.ItemPatch{Name: &name})
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("viewer toggles purchased via patch", func(t *testing.T) {
		purchased := true
		if err := f.svc.UpdateItem(ctx, viewer, item.ID, &models.ItemPatch{Purchased: &purchased}); err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
	})

	t.Run("viewer cannot combine toggle with edits", func(t *testing.T) {
		purchased := false
		name := "gekaapt"
		err := f.svc.UpdateItem(ctx, viewer, item.ID, &models.ItemPatch{Purchased: &purchased, Name: &name})
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("viewer cannot delete", func(t *testing.T) {
		if err := f.svc.DeleteItem(ctx, viewer, item.ID); !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestTogglePurchased(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner")
	item := f.item(t, owner(), person.ID, "Boek")

	t.Run("viewer flips the flag", func(t *testing.T) {
		viewer := access.Identity{ShareCode: person.ShareCode}
		got, err := f.svc.TogglePurchased(ctx, viewer, item.ID)
		if err != nil {
			t.Fatalf("TogglePurchased failed: %v", err)
		}
		if !got.Purchased {
			t.Error("Expected purchased after toggle")
		}

		got, err = f.svc.TogglePurchased(ctx, viewer, item.ID)
		if err != nil {
			t.Fatalf("TogglePurchased failed: %v", err)
		}
		if got.Purchased {
			t.Error("Expected unpurchased after second toggle")
		}
	})

	t.Run("pin gate blocks the toggle", func(t *testing.T) {
		pin := "1234"
		if err := f.svc.UpdatePerson(ctx, owner(), person.ID, &models.PersonPatch{Pin: &pin}); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}

		locked := access.Identity{ShareCode: person.ShareCode}
		if _, err := f.svc.TogglePurchased(ctx, locked, item.ID); !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}

		verified := access.Identity{ShareCode: person.ShareCode, PinVerified: true}
		if _, err := f.svc.TogglePurchased(ctx, verified, item.ID); err != nil {
			t.Errorf("TogglePurchased failed: %v", err)
		}
	})
}

func TestReorderThroughService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner")
	a := f.item(t, owner(), person.ID, "a")
	b := f.item(t, owner(), person.ID, "b")

	t.Run("viewer cannot reorder", func(t *testing.T) {
		viewer := access.Identity{ShareCode: person.ShareCode}
		err := f.svc.Reorder(ctx, viewer, person.ID, []string{b.ID, a.ID})
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("owner reorder sticks", func(t *testing.T) {
		if err := f.svc.Reorder(ctx, owner(), person.ID, []string{b.ID, a.ID}); err != nil {
			t.Fatalf("Reorder failed: %v", err)
		}
		items, err := f.svc.ListItems(ctx, owner(), person.ID)
		if err != nil {
			t.Fatalf("ListItems failed: %v", err)
		}
		if items[0].ID != b.ID || items[1].ID != a.ID {
			t.Errorf("Unexpected order: %v", items)
		}
	})
}

func TestBudgetSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner")

	price := func(v float64) *float64 { return &v }
	bought := f.item(t, owner(), person.ID, "bought")
	f.item(t, owner(), person.ID, "open")
	purchased := true
	if err := f.svc.UpdateItem(ctx, owner(), bought.ID, &models.ItemPatch{Price: price(60), Purchased: &purchased}); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	t.Run("without budget remaining is absent", func(t *testing.T) {
		summary, err := f.svc.Budget(ctx, owner(), person.ID)
		if err != nil {
			t.Fatalf("Budget failed: %v", err)
		}
		if summary.TotalSpent != 60 || summary.PurchasedCount != 1 || summary.ItemCount != 2 {
			t.Errorf("Unexpected summary: %+v", summary)
		}
		if summary.Remaining != nil {
			t.Error("Expected no remaining without budget")
		}
	})

	t.Run("overspend goes negative", func(t *testing.T) {
		if err := f.svc.UpdatePerson(ctx, owner(), person.ID, &models.PersonPatch{Budget: price(50)}); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}
		summary, err := f.svc.Budget(ctx, owner(), person.ID)
		if err != nil {
			t.Fatalf("Budget failed: %v", err)
		}
		if summary.Remaining == nil || *summary.Remaining != -10 {
			t.Errorf("Expected remaining -10, got %v", summary.Remaining)
		}
	})
}
