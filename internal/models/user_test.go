package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	user := NewUser("  Anna  ", "Anna", "hash")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "anna", user.Username)
	assert.NotZero(t, user.CreatedAt)
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "anna", NormalizeUsername(" ANNA "))
	assert.Equal(t, "anna", NormalizeUsername("anna"))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("abc"))
	assert.Error(t, ValidateUsername("ab"))
	assert.Error(t, ValidateUsername("  a  "))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("1234"))
	assert.Error(t, ValidatePassword("123"))
}
