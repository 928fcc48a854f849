package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func newItem(slug string, quantity int, price float64) domain.CartItem {
	p := decimal.NewFromFloat(price)
	return domain.CartItem{
		ProductSlug: slug,
		ProductName: slug,
		Quantity:    quantity,
		UnitPrice:   p,
		FinalPrice:  p,
	}
}

func TestAddItem_AssignsUniqueIDs(t *testing.T) {
	l := NewLedger()

	first := l.AddItem(newItem("cake", 1, 25.00))
	second := l.AddItem(newItem("cake", 1, 25.00))

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddItem_IdenticalConfigurationsNeverMerge(t *testing.T) {
	l := NewLedger()

	l.AddItem(newItem("cake", 1, 25.00))
	l.AddItem(newItem("cake", 1, 25.00))

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 2, l.TotalItemCount())
}

func TestUpdateQuantity_ReplacesInPlace(t *testing.T) {
	l := NewLedger()
	item := l.AddItem(newItem("cake", 1, 25.00))

	l.UpdateQuantity(item.ID, 3)

	stored, ok := l.ItemByID(item.ID)
	require.True(t, ok)
	assert.Equal(t, 3, stored.Quantity)
	assert.Equal(t, 3, l.TotalItemCount())
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	l := NewLedger()
	item := l.AddItem(newItem("cake", 2, 25.00))

	l.UpdateQuantity(item.ID, 0)

	assert.Equal(t, 0, l.Len())
	_, ok := l.ItemByID(item.ID)
	assert.False(t, ok)
}

func TestUpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	l := NewLedger()
	l.AddItem(newItem("cake", 1, 25.00))

	l.UpdateQuantity("missing", 5)

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, l.TotalItemCount())
}

func TestRemoveItem_UnknownIDIsNoOp(t *testing.T) {
	l := NewLedger()
	item := l.AddItem(newItem("cake", 1, 25.00))

	l.RemoveItem("missing")

	assert.Equal(t, 1, l.Len())
	_, ok := l.ItemByID(item.ID)
	assert.True(t, ok)
}

func TestAggregates_RecomputedOnEveryRead(t *testing.T) {
	l := NewLedger()
	first := l.AddItem(newItem("cake", 2, 25.00))
	l.AddItem(newItem("cupcake", 3, 4.50))

	assert.Equal(t, 5, l.TotalItemCount())
	assert.True(t, decimal.NewFromFloat(63.50).Equal(l.MonetaryTotal()), "got %s", l.MonetaryTotal())

	l.UpdateQuantity(first.ID, 1)

	assert.Equal(t, 4, l.TotalItemCount())
	assert.True(t, decimal.NewFromFloat(38.50).Equal(l.MonetaryTotal()), "got %s", l.MonetaryTotal())
}

func TestClear_EmptiesLedger(t *testing.T) {
	l := NewLedger()
	l.AddItem(newItem("cake", 2, 25.00))
	l.AddItem(newItem("cupcake", 1, 4.50))

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.TotalItemCount())
	assert.True(t, l.MonetaryTotal().IsZero())
}

func TestItems_ReturnsCopyInInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.AddItem(newItem("first", 1, 1.00))
	l.AddItem(newItem("second", 1, 2.00))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].ProductSlug)
	assert.Equal(t, "second", items[1].ProductSlug)

	// Мутация копии не затрагивает журнал
	items[0].Quantity = 99
	stored, _ := l.ItemByID(items[0].ID)
	assert.Equal(t, 1, stored.Quantity)
}
