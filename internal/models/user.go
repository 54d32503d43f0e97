package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Users own persons (wishlists) and
// can be granted collaborator rights on lists owned by others.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Username is the unique, case-insensitive login key.
	// Always stored lower-cased and trimmed.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// DisplayName is the name shown to other users.
	DisplayName string `json:"displayName"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}

// NewUser creates a user with a fresh ID and creation timestamp.
// The username is normalized before use as a key.
func NewUser(username, displayName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Username:     NormalizeUsername(username),
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// NormalizeUsername lower-cases and trims a username so lookups are
// case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateUsername checks a normalized username for registration.
func ValidateUsername(username string) error {
	if len(NormalizeUsername(username)) < 3 {
		return &ValidationError{Field: "username", Reason: "must be at least 3 characters"}
	}
	return nil
}

// ValidatePassword checks a password at registration time only;
// login never re-validates length.
func ValidatePassword(password string) error {
	if len(password) < 4 {
		return &ValidationError{Field: "password", Reason: "must be at least 4 characters"}
	}
	return nil
}
