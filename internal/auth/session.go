package auth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wensjes/registry/internal/models"
)

// TokenStore persists the session token across process restarts.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file on disk.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a file-backed token store at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(data), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Session is the explicit process-wide association of the currently
// authenticated user. It is established on login or registration, cleared
// on logout, and restored from the persisted token on process start —
// without re-verifying the password.
type Session struct {
	mu      sync.Mutex
	users   UserStorage
	tokens  *TokenManager
	store   TokenStore
	current *models.User
}

// NewSession creates an unauthenticated session.
func NewSession(users UserStorage, tokens *TokenManager, store TokenStore) *Session {
	return &Session{users: users, tokens: tokens, store: store}
}

// Restore loads the persisted token and, if it is still valid and its user
// still exists, re-establishes the session. An invalid or stale token is
// discarded silently; only I/O failures are surfaced.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return s.store.Clear()
	}
	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return s.store.Clear()
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return nil
}

// Establish makes the user the session's current user and persists a fresh
// token for them. The token is returned for transport to clients.
func (s *Session) Establish(user *models.User) (string, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", err
	}
	if err := s.store.Save(token); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return token, nil
}

// Current returns the authenticated user, or nil.
func (s *Session) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Logout clears the session unconditionally.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.store.Clear()
}
