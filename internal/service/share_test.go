package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wensjes/registry/internal/access"
	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

func TestSharedView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner", "collab")
	f.item(t, owner(), person.ID, "Boek")

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := f.svc.SharedView(ctx, access.Identity{ShareCode: "XXXXXXXX"}, "XXXXXXXX")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("open list is fully visible, collaborators hidden", func(t *testing.T) {
		view, err := f.svc.SharedView(ctx, access.Identity{ShareCode: person.ShareCode}, person.ShareCode)
		if err != nil {
			t.Fatalf("SharedView failed: %v", err)
		}
		if view.PinRequired {
			t.Error("Expected no pin gate")
		}
		if view.Person == nil || len(view.Items) != 1 {
			t.Fatalf("Expected person and items, got %+v", view)
		}
		if len(view.Person.Collaborators) != 0 {
			t.Errorf("Expected collaborators hidden, got %v", view.Person.Collaborators)
		}
	})

	t.Run("pin gate discloses only the name", func(t *testing.T) {
		pin := "1234"
		if err := f.svc.UpdatePerson(ctx, owner(), person.ID, &models.PersonPatch{Pin: &pin}); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}

		view, err := f.svc.SharedView(ctx, access.Identity{ShareCode: person.ShareCode}, person.ShareCode)
		if err != nil {
			t.Fatalf("SharedView failed: %v", err)
		}
		if !view.PinRequired {
			t.Error("Expected pin gate")
		}
		if view.Person != nil || view.Items != nil {
			t.Errorf("Expected no data behind the gate, got %+v", view)
		}
		if view.PersonName == "" {
			t.Error("Expected the name for the gate screen")
		}
	})

	t.Run("verified pin opens the gate", func(t *testing.T) {
		ident := access.Identity{ShareCode: person.ShareCode, PinVerified: true}
		view, err := f.svc.SharedView(ctx, ident, person.ShareCode)
		if err != nil {
			t.Fatalf("SharedView failed: %v", err)
		}
		if view.PinRequired || view.Person == nil {
			t.Errorf("Expected open view, got %+v", view)
		}
	})

	t.Run("owner passes their own gate without a pin", func(t *testing.T) {
		ident := access.Identity{UserID: "owner", ShareCode: person.ShareCode}
		view, err := f.svc.SharedView(ctx, ident, person.ShareCode)
		if err != nil {
			t.Fatalf("SharedView failed: %v", err)
		}
		if view.PinRequired {
			t.Error("Owner should never see the gate")
		}
	})
}

func TestVerifyPin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner")
	pin := "1234"
	if err := f.svc.UpdatePerson(ctx, owner(), person.ID, &models.PersonPatch{Pin: &pin}); err != nil {
		t.Fatalf("UpdatePerson failed: %v", err)
	}

	t.Run("correct pin verifies", func(t *testing.T) {
		ok, err := f.svc.VerifyPin(ctx, person.ShareCode, "1234")
		if err != nil || !ok {
			t.Errorf("Expected verified, got %v, %v", ok, err)
		}
	})

	t.Run("wrong pin does not", func(t *testing.T) {
		ok, err := f.svc.VerifyPin(ctx, person.ShareCode, "0000")
		if err != nil || ok {
			t.Errorf("Expected not verified, got %v, %v", ok, err)
		}
	})

	t.Run("pasted candidate is filtered like typed digits", func(t *testing.T) {
		ok, err := f.svc.VerifyPin(ctx, person.ShareCode, " 1-2-3-4 ")
		if err != nil || !ok {
			t.Errorf("Expected verified, got %v, %v", ok, err)
		}
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := f.svc.VerifyPin(ctx, "XXXXXXXX", "1234")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestSuggestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	person, err := f.svc.CreatePerson(ctx, "owner", &models.Person{
		Name: "Bas", AgeGroup: models.AgeTeen, Gender: models.GenderMale,
		Interests: []string{"gaming"},
	})
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	t.Run("profile filters the catalog", func(t *testing.T) {
		got, err := f.svc.Suggestions(ctx, owner(), person.ID)
		if err != nil {
			t.Fatalf("Suggestions failed: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("Expected suggestions for a teen gamer")
		}
		for _, s := range got {
			matches := false
			for _, g := range s.TargetAgeGroups {
				if g == models.AgeTeen {
					matches = true
				}
			}
			if !matches {
				t.Errorf("Suggestion %s does not target teens", s.ID)
			}
		}
	})

	t.Run("remaining budget tightens results", func(t *testing.T) {
		budget := 10.0
		if err := f.svc.UpdatePerson(ctx, owner(), person.ID, &models.PersonPatch{Budget: &budget}); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}
		got, err := f.svc.Suggestions(ctx, owner(), person.ID)
		if err != nil {
			t.Fatalf("Suggestions failed: %v", err)
		}
		for _, s := range got {
			if s.ID == "spelcomputer" {
				t.Error("Expected expensive entries filtered out")
			}
		}
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := f.svc.Suggestions(ctx, access.Identity{UserID: "stranger"}, person.ID)
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestWatchItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	person := f.person(t, "owner")

	t.Run("access checked before subscribing", func(t *testing.T) {
		_, err := f.svc.WatchItems(ctx, access.Identity{UserID: "stranger"}, person.ID, func([]*models.WishlistItem) {})
		if !errors.Is(err, access.ErrPermissionDenied) {
			t.Errorf("Expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("snapshots follow mutations", func(t *testing.T) {
		var snapshots [][]*models.WishlistItem
		cancel, err := f.svc.WatchItems(ctx, owner(), person.ID, func(items []*models.WishlistItem) {
			snapshots = append(snapshots, items)
		})
		if err != nil {
			t.Fatalf("WatchItems failed: %v", err)
		}
		defer cancel()

		f.item(t, owner(), person.ID, "Boek")
		if len(snapshots) != 2 {
			t.Fatalf("Expected initial + change snapshot, got %d", len(snapshots))
		}
		if len(snapshots[1]) != 1 {
			t.Errorf("Expected the full new state, got %v", snapshots[1])
		}
	})
}
