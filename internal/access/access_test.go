package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wensjes/registry/internal/models"
)

func testPerson(pin string) *models.Person {
	return &models.Person{
		ID:            "p1",
		Name:          "Emma",
		OwnerID:       "owner",
		Collaborators: []string{"collab"},
		ShareCode:     "ABCD1234",
		Pin:           pin,
	}
}

func TestResolve(t *testing.T) {
	person := testPerson("")

	tests := []struct {
		name  string
		ident Identity
		role  Role
	}{
		{"owner", Identity{UserID: "owner"}, RoleOwner},
		{"collaborator", Identity{UserID: "collab"}, RoleCollaborator},
		{"matching share code", Identity{ShareCode: "ABCD1234"}, RoleViewer},
		{"wrong share code", Identity{ShareCode: "WRONG000"}, RoleNone},
		{"stranger with account", Identity{UserID: "other"}, RoleNone},
		{"nobody", Identity{}, RoleNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.role, Resolve(tt.ident, person).Role)
		})
	}

	t.Run("owner rank beats share code", func(t *testing.T) {
		g := Resolve(Identity{UserID: "owner", ShareCode: "ABCD1234"}, person)
		assert.Equal(t, RoleOwner, g.Role)
	})
}

func TestGrantPermissions(t *testing.T) {
	person := testPerson("1234")

	t.Run("viewer behind unmet pin gate sees nothing", func(t *testing.T) {
		g := Resolve(Identity{ShareCode: "ABCD1234"}, person)
		assert.Equal(t, RoleViewer, g.Role)
		assert.False(t, g.CanViewProfile())
		assert.False(t, g.CanViewItems())
		assert.False(t, g.CanTogglePurchased())
	})

	t.Run("verified viewer reads and toggles but never edits", func(t *testing.T) {
		g := Resolve(Identity{ShareCode: "ABCD1234", PinVerified: true}, person)
		assert.True(t, g.CanViewProfile())
		assert.True(t, g.CanViewItems())
		assert.True(t, g.CanTogglePurchased())
		assert.False(t, g.CanEditItems())
		assert.False(t, g.CanEditProfile())
		assert.False(t, g.CanViewCollaborators())
		assert.False(t, g.CanDeletePerson())
	})

	t.Run("pin never applies to owner or collaborator", func(t *testing.T) {
		for _, id := range []Identity{{UserID: "owner"}, {UserID: "collab"}} {
			g := Resolve(id, person)
			assert.True(t, g.CanViewProfile())
			assert.True(t, g.CanEditItems())
		}
	})

	t.Run("only the owner deletes and manages collaborators", func(t *testing.T) {
		owner := Resolve(Identity{UserID: "owner"}, person)
		collab := Resolve(Identity{UserID: "collab"}, person)
		assert.True(t, owner.CanDeletePerson())
		assert.True(t, owner.CanManageCollaborators())
		assert.False(t, collab.CanDeletePerson())
		assert.False(t, collab.CanManageCollaborators())
	})
}
