package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wensjes/registry/internal/storage/memory"
)

func newSessionFixture(t *testing.T) (*Session, *PasswordAuthenticator, *FileTokenStore) {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { store.Close() })

	tokenPath := filepath.Join(t.TempDir(), "session.token")
	tokens := NewTokenManager("test-secret", time.Hour)
	files := NewFileTokenStore(tokenPath)
	return NewSession(store, tokens, files), NewPasswordAuthenticator(store), files
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("establish and current", func(t *testing.T) {
		session, a, _ := newSessionFixture(t)
		user, err := a.Register(ctx, "anna", "Anna", "geheim")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		token, err := session.Establish(user)
		if err != nil {
			t.Fatalf("Establish failed: %v", err)
		}
		if token == "" {
			t.Error("Expected a token")
		}
		if current := session.Current(); current == nil || current.ID != user.ID {
			t.Error("Expected current user to be set")
		}
	})

	t.Run("restore from persisted token skips password", func(t *testing.T) {
		store := memory.New()
		defer store.Close()
		tokenPath := filepath.Join(t.TempDir(), "session.token")
		tokens := NewTokenManager("test-secret", time.Hour)

		a := NewPasswordAuthenticator(store)
		user, err := a.Register(ctx, "anna", "Anna", "geheim")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		first := NewSession(store, tokens, NewFileTokenStore(tokenPath))
		if _, err := first.Establish(user); err != nil {
			t.Fatalf("Establish failed: %v", err)
		}

		// Fresh session over the same token file, as after a restart.
		second := NewSession(store, tokens, NewFileTokenStore(tokenPath))
		if err := second.Restore(ctx); err != nil {
			t.Fatalf("Restore failed: %v", err)
		}
		if current := second.Current(); current == nil || current.ID != user.ID {
			t.Error("Expected restored session")
		}
	})

	t.Run("invalid token is discarded silently", func(t *testing.T) {
		session, _, files := newSessionFixture(t)
		if err := files.Save("not-a-jwt"); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := session.Restore(ctx); err != nil {
			t.Fatalf("Restore should swallow invalid tokens, got %v", err)
		}
		if session.Current() != nil {
			t.Error("Expected no session")
		}
		if stored, _ := files.Load(); stored != "" {
			t.Error("Expected stale token to be cleared")
		}
	})

	t.Run("token for deleted user is discarded", func(t *testing.T) {
		store := memory.New()
		defer store.Close()
		tokenPath := filepath.Join(t.TempDir(), "session.token")
		tokens := NewTokenManager("test-secret", time.Hour)
		files := NewFileTokenStore(tokenPath)

		ghost, err := tokens.Generate(&testUser)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if err := files.Save(ghost); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		session := NewSession(store, tokens, files)
		if err := session.Restore(ctx); err != nil {
			t.Fatalf("Restore failed: %v", err)
		}
		if session.Current() != nil {
			t.Error("Expected no session for unknown user")
		}
	})

	t.Run("logout clears unconditionally", func(t *testing.T) {
		session, a, files := newSessionFixture(t)
		user, err := a.Register(ctx, "anna", "Anna", "geheim")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := session.Establish(user); err != nil {
			t.Fatalf("Establish failed: %v", err)
		}

		if err := session.Logout(); err != nil {
			t.Fatalf("Logout failed: %v", err)
		}
		if session.Current() != nil {
			t.Error("Expected no session after logout")
		}
		if stored, _ := files.Load(); stored != "" {
			t.Error("Expected token file to be cleared")
		}

		// Logging out twice is fine.
		if err := session.Logout(); err != nil {
			t.Errorf("Second logout failed: %v", err)
		}
	})
}

func TestFileTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	store := NewFileTokenStore(path)

	if v, err := store.Load(); err != nil || v != "" {
		t.Fatalf("Expected empty load on missing file, got %q, %v", v, err)
	}
	if err := store.Save("abc"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 token file, got %v, %v", info.Mode(), err)
	}
	if v, _ := store.Load(); v != "abc" {
		t.Errorf("Expected round-trip, got %q", v)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("Clearing a cleared store failed: %v", err)
	}
}
