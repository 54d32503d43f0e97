// Package models defines the core domain models for the wishlist registry.
//
// # Models
//
//   - User: a registered account that can own or collaborate on wishlists
//   - Person: the subject of one wishlist (a child, a friend — not a system user)
//   - WishlistItem: a single gift wish attached to a Person
//   - Suggestion: a read-only gift-catalog entry
//
// # Design Principles
//
//  1. **No storage leakage**: models carry no backend-specific identifiers;
//     ids are opaque strings assigned by the store.
//  2. **Avoid circular references**: relationships use ID strings, not pointers.
//  3. **Validation before storage**: every write path calls the model's
//     Validate method first; invalid values never reach a store.
//  4. **Partial updates**: PersonPatch and ItemPatch use pointer fields so that
//     a nil field means "leave untouched" and a pointer to the zero value
//     clears an optional field.
package models
