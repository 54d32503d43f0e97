package models

import (
	"regexp"
	"strings"
)

// AgeGroup buckets a person for suggestion filtering.
type AgeGroup string

const (
	AgeChild AgeGroup = "child"
	AgeTeen  AgeGroup = "teen"
	AgeAdult AgeGroup = "adult"
)

// Gender is used only for suggestion filtering.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

// Person is the subject of one wishlist. A Person is not a system user;
// it is owned by one and edited by the owner plus any collaborators.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	// Immutable after creation.
	ID string `json:"id"`

	// Name is the display name of the person.
	Name string `json:"name"`

	// AgeGroup is one of child, teen, adult.
	AgeGroup AgeGroup `json:"ageGroup"`

	// Gender is one of male, female, other.
	Gender Gender `json:"gender"`

	// Interests holds interest tags used by the suggestion engine.
	Interests []string `json:"interests"`

	// ShareCode is the opaque public token that addresses this person's
	// list for anonymous viewers. Globally unique, immutable after creation.
	ShareCode string `json:"shareCode"`

	// CreatedAt is the Unix timestamp when the person was created.
	CreatedAt int64 `json:"createdAt"`

	// OwnerID is the user key of the owning account.
	OwnerID string `json:"ownerId"`

	// Collaborators holds user keys with edit rights on this list.
	// The owner never appears here.
	Collaborators []string `json:"collaborators,omitempty"`

	// PhotoRef is an opaque image reference (data URI or URL).
	// Stored and passed through, never decoded.
	PhotoRef string `json:"photoRef,omitempty"`

	// Budget is the optional gift budget. Nil means no budget set.
	Budget *float64 `json:"budget,omitempty"`

	// Pin optionally protects the shared view; 4-6 digits when set.
	Pin string `json:"pin,omitempty"`
}

// Validate checks field-level invariants for a person about to be stored.
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	switch p.AgeGroup {
	case AgeChild, AgeTeen, AgeAdult:
	default:
		return &ValidationError{Field: "ageGroup", Reason: "must be child, teen or adult"}
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return &ValidationError{Field: "gender", Reason: "must be male, female or other"}
	}
	if p.Pin != "" && !pinPattern.MatchString(p.Pin) {
		return &ValidationError{Field: "pin", Reason: "must be 4-6 digits"}
	}
	if p.Budget != nil && *p.Budget < 0 {
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	return nil
}

// IsCollaborator reports whether the given user key has collaborator rights.
func (p *Person) IsCollaborator(userID string) bool {
	for _, c := range p.Collaborators {
		if c == userID {
			return true
		}
	}
	return false
}

// PersonPatch describes a partial update to a person. Nil fields are left
// untouched. A pointer to the zero value clears the optional field
// (e.g. Pin pointing at "" removes the pin).
type PersonPatch struct {
	Name          *string   `json:"name,omitempty"`
	AgeGroup      *AgeGroup `json:"ageGroup,omitempty"`
	Gender        *Gender   `json:"gender,omitempty"`
	Interests     *[]string `json:"interests,omitempty"`
	PhotoRef      *string   `json:"photoRef,omitempty"`
	Budget        *float64  `json:"budget,omitempty"`
	ClearBudget   bool      `json:"clearBudget,omitempty"`
	Pin           *string   `json:"pin,omitempty"`
	Collaborators *[]string `json:"-"`
}

// Validate checks the fields present in the patch.
func (p *PersonPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.AgeGroup != nil {
		switch *p.AgeGroup {
		case AgeChild, AgeTeen, AgeAdult:
		default:
			return &ValidationError{Field: "ageGroup", Reason: "must be child, teen or adult"}
		}
	}
	if p.Gender != nil {
		switch *p.Gender {
		case GenderMale, GenderFemale, GenderOther:
		default:
			return &ValidationError{Field: "gender", Reason: "must be male, female or other"}
		}
	}
	if p.Pin != nil && *p.Pin != "" && !pinPattern.MatchString(*p.Pin) {
		return &ValidationError{Field: "pin", Reason: "must be 4-6 digits"}
	}
	if p.Budget != nil && *p.Budget < 0 {
		return &ValidationError{Field: "budget", Reason: "must not be negative"}
	}
	return nil
}

// Apply merges the patch into the person. Only non-nil fields are written.
func (p *PersonPatch) Apply(person *Person) {
	if p.Name != nil {
		person.Name = strings.TrimSpace(*p.Name)
	}
	if p.AgeGroup != nil {
		person.AgeGroup = *p.AgeGroup
	}
	if p.Gender != nil {
		person.Gender = *p.Gender
	}
	if p.Interests != nil {
		person.Interests = *p.Interests
	}
	if p.PhotoRef != nil {
		person.PhotoRef = *p.PhotoRef
	}
	if p.Budget != nil {
		b := *p.Budget
		person.Budget = &b
	}
	if p.ClearBudget {
		person.Budget = nil
	}
	if p.Pin != nil {
		person.Pin = *p.Pin
	}
	if p.Collaborators != nil {
		person.Collaborators = *p.Collaborators
	}
}
