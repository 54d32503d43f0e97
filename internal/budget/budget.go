// Package budget derives spend figures from a person's current item set.
// Everything here is pure; nothing is stored.
package budget

import "github.com/wensjes/registry/internal/models"

// TotalSpent sums the prices of purchased items. Items without a price
// contribute nothing.
func TotalSpent(items []*models.WishlistItem) float64 {
	var total float64
	for _, item := range items {
		if item.Purchased && item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

// PurchasedCount counts purchased items.
func PurchasedCount(items []*models.WishlistItem) int {
	var count int
	for _, item := range items {
		if item.Purchased {
			count++
		}
	}
	return count
}

// Remaining returns the person's budget minus total spend. The second
// return is false when no budget is set. Overspending yields a negative
// value; it is never clamped, so presentation can signal "over budget".
func Remaining(person *models.Person, items []*models.WishlistItem) (float64, bool) {
	if person.Budget == nil {
		return 0, false
	}
	return *person.Budget - TotalSpent(items), true
}
