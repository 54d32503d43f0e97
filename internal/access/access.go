// Package access resolves what an identity may see and do on a person's
// wishlist: owners get everything, collaborators edit without ownership
// rights, and anonymous share-code viewers read and toggle purchases,
// optionally behind a PIN gate.
package access

import (
	"errors"

	"github.com/wensjes/registry/internal/models"
)

// ErrPermissionDenied is returned when the identity resolved but the
// operation is not permitted for its role.
var ErrPermissionDenied = errors.New("permission denied")

// Identity describes a requester: an authenticated user, or an anonymous
// visitor presenting a share code with an optionally proven PIN.
type Identity struct {
	// UserID is set for authenticated requesters.
	UserID string

	// ShareCode is set for anonymous share-link visitors.
	ShareCode string

	// PinVerified records that the visitor proved knowledge of the
	// person's pin earlier in this viewing session (see PinGate).
	PinVerified bool
}

// Authenticated reports whether the identity carries a user account.
func (id Identity) Authenticated() bool { return id.UserID != "" }

// Role is the resolved access level of an identity on one person.
type Role int

const (
	// RoleNone grants nothing.
	RoleNone Role = iota
	// RoleViewer is an anonymous visitor with the correct share code.
	RoleViewer
	// RoleCollaborator edits profile and items but cannot delete the
	// person or manage the collaborator set.
	RoleCollaborator
	// RoleOwner has full rights.
	RoleOwner
)

// Grant is the computed permission set of one identity on one person.
type Grant struct {
	Role Role

	// pinSatisfied is true when the person has no pin, the requester is
	// owner or collaborator, or the viewer proved the pin.
	pinSatisfied bool
}

// Resolve computes the grant for an identity on a person, applying the
// rules in order: owner, collaborator, share viewer, none.
func Resolve(id Identity, person *models.Person) Grant {
	if id.UserID != "" {
		if person.OwnerID == id.UserID {
			return Grant{Role: RoleOwner, pinSatisfied: true}
		}
		if person.IsCollaborator(id.UserID) {
			return Grant{Role: RoleCollaborator, pinSatisfied: true}
		}
	}
	if id.ShareCode != "" && id.ShareCode == person.ShareCode {
		return Grant{
			Role:         RoleViewer,
			pinSatisfied: person.Pin == "" || id.PinVerified,
		}
	}
	return Grant{Role: RoleNone}
}

// CanViewProfile reports whether profile fields may be read. A viewer
// behind an unmet PIN gate sees nothing.
func (g Grant) CanViewProfile() bool {
	switch g.Role {
	case RoleOwner, RoleCollaborator:
		return true
	case RoleViewer:
		return g.pinSatisfied
	}
	return false
}

// CanViewItems reports whether the wishlist items may be read.
func (g Grant) CanViewItems() bool { return g.CanViewProfile() }

// CanViewCollaborators reports whether the collaborator set is visible.
// Share viewers never see it.
func (g Grant) CanViewCollaborators() bool {
	return g.Role == RoleOwner || g.Role == RoleCollaborator
}

// CanEditProfile reports whether profile fields may be changed.
func (g Grant) CanEditProfile() bool {
	return g.Role == RoleOwner || g.Role == RoleCollaborator
}

// CanEditItems reports whether items may be created, updated, deleted or
// reordered.
func (g Grant) CanEditItems() bool {
	return g.Role == RoleOwner || g.Role == RoleCollaborator
}

// CanTogglePurchased reports whether the purchased flag may be flipped.
// This is the single mutation granted to share viewers.
func (g Grant) CanTogglePurchased() bool {
	switch g.Role {
	case RoleOwner, RoleCollaborator:
		return true
	case RoleViewer:
		return g.pinSatisfied
	}
	return false
}

// CanDeletePerson reports whether the person (and its list) may be deleted.
func (g Grant) CanDeletePerson() bool { return g.Role == RoleOwner }

// CanManageCollaborators reports whether the collaborator set may change.
func (g Grant) CanManageCollaborators() bool { return g.Role == RoleOwner }
