package order

import (
	"context"
	"errors"
	"testing"

	"github.com/wensjes/registry/internal/models"
	"github.com/wensjes/registry/internal/storage/memory"
)

func seedList(t *testing.T, ctx context.Context, store *memory.MemoryStore, names ...string) []string {
	t.Helper()
	person := &models.Person{Name: "Emma", AgeGroup: models.AgeChild, Gender: models.GenderFemale, OwnerID: "u1"}
	if err := store.CreatePerson(ctx, person); err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	ids := make([]string, 0, len(names))
	for i, name := range names {
		item := &models.WishlistItem{Name: name, PersonID: person.ID, Order: i}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		ids = append(ids, item.ID)
	}
	t.Cleanup(func() { store.Close() })
	return append([]string{person.ID}, ids...)
}

func ranks(t *testing.T, ctx context.Context, store *memory.MemoryStore, personID string) map[string]int {
	t.Helper()
	items, err := store.ListItems(ctx, personID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item.ID] = item.Order
	}
	return out
}

func TestNextRank(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seeded := seedList(t, ctx, store, "a", "b", "c")
	personID := seeded[0]

	m := NewManager(store)
	rank, err := m.NextRank(ctx, personID)
	if err != nil {
		t.Fatalf("NextRank failed: %v", err)
	}
	if rank != 3 {
		t.Errorf("Expected next rank 3, got %d", rank)
	}
}

func TestReorder(t *testing.T) {
	ctx := context.Background()

	t.Run("permutation rewrites every rank", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b", "c")
		personID, a, b, c := seeded[0], seeded[1], seeded[2], seeded[3]

		m := NewManager(store)
		if err := m.Reorder(ctx, personID, []string{c, a, b}); err != nil {
			t.Fatalf("Reorder failed: %v", err)
		}

		got := ranks(t, ctx, store, personID)
		if got[c] != 0 || got[a] != 1 || got[b] != 2 {
			t.Errorf("Unexpected ranks after reorder: %v", got)
		}
	})

	t.Run("identical reorder is idempotent", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b")
		personID, a, b := seeded[0], seeded[1], seeded[2]

		m := NewManager(store)
		for i := 0; i < 2; i++ {
			if err := m.Reorder(ctx, personID, []string{b, a}); err != nil {
				t.Fatalf("Reorder %d failed: %v", i, err)
			}
		}
		got := ranks(t, ctx, store, personID)
		if got[b] != 0 || got[a] != 1 {
			t.Errorf("Unexpected ranks: %v", got)
		}
	})

	t.Run("wrong cardinality writes nothing", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b", "c")
		personID, a, b := seeded[0], seeded[1], seeded[2]

		m := NewManager(store)
		err := m.Reorder(ctx, personID, []string{b, a})
		if !errors.Is(err, ErrInconsistent) {
			t.Fatalf("Expected ErrInconsistent, got %v", err)
		}
		got := ranks(t, ctx, store, personID)
		if got[a] != 0 || got[b] != 1 {
			t.Errorf("Ranks changed despite rejected reorder: %v", got)
		}
	})

	t.Run("unknown id writes nothing", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b")
		personID, a := seeded[0], seeded[1]

		m := NewManager(store)
		err := m.Reorder(ctx, personID, []string{a, "no-such-item"})
		if !errors.Is(err, ErrInconsistent) {
			t.Fatalf("Expected ErrInconsistent, got %v", err)
		}
	})

	t.Run("duplicate id writes nothing", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b")
		personID, a := seeded[0], seeded[1]

		m := NewManager(store)
		err := m.Reorder(ctx, personID, []string{a, a})
		if !errors.Is(err, ErrInconsistent) {
			t.Fatalf("Expected ErrInconsistent, got %v", err)
		}
	})

	t.Run("delete leaves a gap until the next reorder", func(t *testing.T) {
		store := memory.New()
		seeded := seedList(t, ctx, store, "a", "b", "c")
		personID, a, b, c := seeded[0], seeded[1], seeded[2], seeded[3]

		if err := store.DeleteItem(ctx, b); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		got := ranks(t, ctx, store, personID)
		if got[a] != 0 || got[c] != 2 {
			t.Errorf("Expected gap to persist, got %v", got)
		}

		m := NewManager(store)
		if err := m.Reorder(ctx, personID, []string{a, c}); err != nil {
			t.Fatalf("Reorder failed: %v", err)
		}
		got = ranks(t, ctx, store, personID)
		if got[a] != 0 || got[c] != 1 {
			t.Errorf("Expected dense ranks after reorder, got %v", got)
		}
	})
}
