package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage"
)

func TestMemoryStoreIsStore(t *testing.T) {
	var _ storage.Store = New()
}

func TestMemoryStorePersons(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	t.Run("create assigns id, share code and timestamp", func(t *testing.T) {
		person := &models.Person{Name: "Emma", AgeGroup: models.AgeChild, Gender: models.GenderFemale, OwnerID: "u1"}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		if person.ID == "" || person.ShareCode == "" || person.CreatedAt == 0 {
			t.Errorf("Expected generated fields, got %+v", person)
		}
	})

	t.Run("lookup by share code", func(t *testing.T) {
		person := &models.Person{Name: "Bas", AgeGroup: models.AgeTeen, Gender: models.GenderMale, OwnerID: "u1"}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		got, err := store.GetPersonByShareCode(ctx, person.ShareCode)
		if err != nil {
			t.Fatalf("GetPersonByShareCode failed: %v", err)
		}
		if got.ID != person.ID {
			t.Errorf("Expected %s, got %s", person.ID, got.ID)
		}
	})

	t.Run("unknown lookups return ErrNotFound", func(t *testing.T) {
		if _, err := store.GetPerson(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if _, err := store.GetPersonByShareCode(ctx, "NOPE0000"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("returned persons are copies", func(t *testing.T) {
		person := &models.Person{Name: "Iris", AgeGroup: models.AgeAdult, Gender: models.GenderFemale, OwnerID: "u2", Interests: []string{"music"}}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		got, _ := store.GetPerson(ctx, person.ID)
		got.Name = "mutated"
		got.Interests[0] = "mutated"

		again, _ := store.GetPerson(ctx, person.ID)
		if again.Name != "Iris" || again.Interests[0] != "music" {
			t.Error("Store state leaked through returned pointer")
		}
	})

	t.Run("patch merges only set fields", func(t *testing.T) {
		person := &models.Person{Name: "Tom", AgeGroup: models.AgeChild, Gender: models.GenderMale, OwnerID: "u3"}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		name := "Tommy"
		if err := store.UpdatePerson(ctx, person.ID, &models.PersonPatch{Name: &name}); err != nil {
			t.Fatalf("UpdatePerson failed: %v", err)
		}
		got, _ := store.GetPerson(ctx, person.ID)
		if got.Name != "Tommy" || got.AgeGroup != models.AgeChild || got.ShareCode != person.ShareCode {
			t.Errorf("Patch touched unset fields: %+v", got)
		}
	})

	t.Run("delete refuses while items remain", func(t *testing.T) {
		person := &models.Person{Name: "Kim", AgeGroup: models.AgeTeen, Gender: models.GenderOther, OwnerID: "u4"}
		if err := store.CreatePerson(ctx, person); err != nil {
			t.Fatalf("CreatePerson failed: %v", err)
		}
		item := &models.WishlistItem{Name: "Boek", PersonID: person.ID}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}

		if err := store.DeletePerson(ctx, person.ID); !errors.Is(err, storage.ErrPersonHasItems) {
			t.Fatalf("Expected ErrPersonHasItems, got %v", err)
		}
		if err := store.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if err := store.DeletePerson(ctx, person.ID); err != nil {
			t.Fatalf("DeletePerson failed: %v", err)
		}
	})
}

func TestMemoryStoreListOrdering(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	person := &models.Person{Name: "Emma", AgeGroup: models.AgeChild, Gender: models.GenderFemale, OwnerID: "u1"}
	if err := store.CreatePerson(ctx, person); err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	// Insert out of rank order.
	third := &models.WishlistItem{Name: "c", PersonID: person.ID, Order: 2}
	first := &models.WishlistItem{Name: "a", PersonID: person.ID, Order: 0}
	second := &models.WishlistItem{Name: "b", PersonID: person.ID, Order: 1}
	for _, item := range []*models.WishlistItem{third, first, second} {
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	items, err := store.ListItems(ctx, person.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 3 || items[0].Name != "a" || items[1].Name != "b" || items[2].Name != "c" {
		t.Errorf("Expected rank order, got %v", items)
	}
}

func TestMemoryStoreSubscriptions(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	person := &models.Person{Name: "Emma", AgeGroup: models.AgeChild, Gender: models.GenderFemale, OwnerID: "owner-1"}
	if err := store.CreatePerson(ctx, person); err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}

	t.Run("initial snapshot before subscribe returns", func(t *testing.T) {
		var snapshots [][]*models.Person
		cancel, err := store.SubscribePersons(ctx, "owner-1", func(persons []*models.Person) {
			snapshots = append(snapshots, persons)
		})
		if err != nil {
			t.Fatalf("SubscribePersons failed: %v", err)
		}
		defer cancel()

		if len(snapshots) != 1 || len(snapshots[0]) != 1 {
			t.Fatalf("Expected one initial snapshot with one person, got %v", snapshots)
		}
	})

	t.Run("whole result set on every change", func(t *testing.T) {
		var snapshots [][]*models.WishlistItem
		cancel, err := store.SubscribeItems(ctx, person.ID, func(items []*models.WishlistItem) {
			snapshots = append(snapshots, items)
		})
		if err != nil {
			t.Fatalf("SubscribeItems failed: %v", err)
		}
		defer cancel()

		item := &models.WishlistItem{Name: "Boek", PersonID: person.ID}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		purchased := true
		if err := store.UpdateItem(ctx, item.ID, &models.ItemPatch{Purchased: &purchased}); err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}

		// Initial empty snapshot, then one per mutation.
		if len(snapshots) != 3 {
			t.Fatalf("Expected 3 snapshots, got %d", len(snapshots))
		}
		last := snapshots[2]
		if len(last) != 1 || !last[0].Purchased {
			t.Errorf("Expected full current state in snapshot, got %v", last)
		}

		if err := store.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
	})

	t.Run("no delivery after cancel", func(t *testing.T) {
		var count int
		cancel, err := store.SubscribeItems(ctx, person.ID, func([]*models.WishlistItem) {
			count++
		})
		if err != nil {
			t.Fatalf("SubscribeItems failed: %v", err)
		}
		cancel()

		item := &models.WishlistItem{Name: "Na cancel", PersonID: person.ID}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected only the initial snapshot, got %d deliveries", count)
		}
	})
}

func TestMemoryStoreUsers(t *testing.T) {
	ctx := context.Background()
	store := New()
	defer store.Close()

	user := models.NewUser("anna", "Anna", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := models.NewUser("anna", "Other", "hash")
		if err := store.CreateUser(ctx, dup); !errors.Is(err, storage.ErrAlreadyExists) {
			t.Errorf("Expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown user is nil, nil", func(t *testing.T) {
		u, err := store.GetUserByUsername(ctx, "niemand")
		if err != nil || u != nil {
			t.Errorf("Expected nil, nil; got %v, %v", u, err)
		}
		u, err = store.GetUserByID(ctx, "nope")
		if err != nil || u != nil {
			t.Errorf("Expected nil, nil; got %v, %v", u, err)
		}
	})

	t.Run("lookup normalizes username", func(t *testing.T) {
		u, err := store.GetUserByUsername(ctx, "  ANNA ")
		if err != nil || u == nil {
			t.Fatalf("Expected user, got %v, %v", u, err)
		}
	})
}
