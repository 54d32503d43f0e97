package models

import "strings"

// WishlistItem is a single gift wish on a person's list.
type WishlistItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// PersonID is the person this item belongs to.
	PersonID string `json:"personId"`

	// Name is the description of the wish (e.g. "LEGO Bouwset").
	Name string `json:"name"`

	// Price is the optional expected price. Nil means unknown.
	Price *float64 `json:"price,omitempty"`

	// URL optionally links to a shop page.
	URL string `json:"url,omitempty"`

	// ImageRef is an opaque image reference (data URI or URL).
	ImageRef string `json:"imageRef,omitempty"`

	// Note is free-form extra text (size, color, ...).
	Note string `json:"note,omitempty"`

	// Purchased marks the item as bought. Collaborators and anonymous
	// share viewers may flip this.
	Purchased bool `json:"purchased"`

	// Order is the zero-based rank of this item within its person's list.
	// The order package is the sole writer of this field.
	Order int `json:"order"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"createdAt"`
}

// Validate checks field-level invariants for an item about to be stored.
func (i *WishlistItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if i.PersonID == "" {
		return &ValidationError{Field: "personId", Reason: "must not be empty"}
	}
	if i.Price != nil && *i.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// ItemPatch describes a partial update to a wishlist item. Nil fields are
// left untouched. Order is deliberately absent: only the order package
// rewrites item ranks, through the store's dedicated path.
type ItemPatch struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	ClearPrice bool     `json:"clearPrice,omitempty"`
	URL        *string  `json:"url,omitempty"`
	ImageRef   *string  `json:"imageRef,omitempty"`
	Note       *string  `json:"note,omitempty"`
	Purchased  *bool    `json:"purchased,omitempty"`
}

// Validate checks the fields present in the patch.
func (p *ItemPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Price != nil && *p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// Apply merges the patch into the item. Only non-nil fields are written.
func (p *ItemPatch) Apply(item *WishlistItem) {
	if p.Name != nil {
		item.Name = strings.TrimSpace(*p.Name)
	}
	if p.Price != nil {
		v := *p.Price
		item.Price = &v
	}
	if p.ClearPrice {
		item.Price = nil
	}
	if p.URL != nil {
		item.URL = *p.URL
	}
	if p.ImageRef != nil {
		item.ImageRef = *p.ImageRef
	}
	if p.Note != nil {
		item.Note = *p.Note
	}
	if p.Purchased != nil {
		item.Purchased = *p.Purchased
	}
}
