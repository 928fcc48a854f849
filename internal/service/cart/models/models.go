package models

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/cart"
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// CartLine одна позиция корзины в том виде, в каком она возвращается вызывающим
type CartLine struct {
	ID            string
	ProductSlug   string
	ProductName   string
	VariantID     string
	Quantity      int
	UnitPrice     string
	FinalPrice    string
	LineTotal     string
	IsCustom      bool
	Selections    domain.Selections
	FulfillmentAt *time.Time
}

// CartResponse снимок корзины с её вычисляемыми агрегатами
type CartResponse struct {
	Items          []CartLine
	TotalItemCount int
	MonetaryTotal  string
}

// FromLedger строит снимок ответа из журнала корзины
// Агрегаты вычисляются в момент вызова
func FromLedger(l *cart.Ledger) *CartResponse {
	items := l.Items()
	lines := make([]CartLine, len(items))
	for i, item := range items {
		lines[i] = CartLine{
			ID:            item.ID,
			ProductSlug:   item.ProductSlug,
			ProductName:   item.ProductName,
			VariantID:     item.VariantID,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.StringFixed(2),
			FinalPrice:    item.FinalPrice.StringFixed(2),
			LineTotal:     item.LineTotal().StringFixed(2),
			IsCustom:      item.IsCustom,
			Selections:    item.Selections,
			FulfillmentAt: item.FulfillmentAt,
		}
	}

	return &CartResponse{
		Items:          lines,
		TotalItemCount: l.TotalItemCount(),
		MonetaryTotal:  l.MonetaryTotal().StringFixed(2),
	}
}
