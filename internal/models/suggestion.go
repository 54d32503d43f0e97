package models

// Suggestion is a read-only gift-catalog entry. Entries are immutable and
// not user-owned; the suggest package filters them against a person's
// profile and remaining budget.
type Suggestion struct {
	// ID is the stable catalog identifier.
	ID string `json:"id"`

	// Name is the display name of the gift idea.
	Name string `json:"name"`

	// ImageRef is an opaque image reference.
	ImageRef string `json:"imageRef"`

	// PriceRange is the presentation label, e.g. "€10-20". Its lower
	// bound is what the budget filter compares against.
	PriceRange string `json:"priceRange"`

	// TargetAgeGroups lists the age groups this entry applies to.
	TargetAgeGroups []AgeGroup `json:"targetAgeGroups"`

	// TargetGenders lists applicable genders; empty means all.
	TargetGenders []Gender `json:"targetGenders"`

	// TargetInterests lists applicable interest tags; empty means all.
	TargetInterests []string `json:"targetInterests"`
}
