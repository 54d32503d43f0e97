package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wensjes/registry/internal/models"
)

func price(v float64) *float64 { return &v }

func TestTotalSpent(t *testing.T) {
	items := []*models.WishlistItem{
		{Name: "a", Price: price(10), Purchased: true},
		{Name: "b", Price: price(20), Purchased: false},
		{Name: "c", Purchased: true}, // no price, counts as zero
		{Name: "d", Price: price(5.5), Purchased: true},
	}
	assert.Equal(t, 15.5, TotalSpent(items))
	assert.Equal(t, 3, PurchasedCount(items))
}

func TestTotalSpentEmpty(t *testing.T) {
	assert.Zero(t, TotalSpent(nil))
	assert.Zero(t, PurchasedCount(nil))
}

func TestRemaining(t *testing.T) {
	items := []*models.WishlistItem{
		{Name: "a", Price: price(60), Purchased: true},
	}

	t.Run("no budget set", func(t *testing.T) {
		_, ok := Remaining(&models.Person{}, items)
		assert.False(t, ok)
	})

	t.Run("budget minus spend", func(t *testing.T) {
		p := &models.Person{Budget: price(100)}
		remaining, ok := Remaining(p, items)
		assert.True(t, ok)
		assert.Equal(t, 40.0, remaining)
	})

	t.Run("overspend goes negative, not clamped", func(t *testing.T) {
		p := &models.Person{Budget: price(50)}
		remaining, ok := Remaining(p, items)
		assert.True(t, ok)
		assert.Equal(t, -10.0, remaining)
	})
}
