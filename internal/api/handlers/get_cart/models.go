package get_cart

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/service/cart/models"
)

// CartItem HTTP модель одной позиции корзины
type CartItem struct {
	ID            string                    `json:"id"`
	ProductSlug   string                    `json:"productSlug"`
	ProductName   string                    `json:"productName"`
	VariantID     string                    `json:"variantId,omitempty"`
	Quantity      int                       `json:"quantity"`
	UnitPrice     string                    `json:"unitPrice"`
	FinalPrice    string                    `json:"finalPrice"`
	LineTotal     string                    `json:"lineTotal"`
	IsCustom      bool                      `json:"isCustom"`
	Selections    map[string]SelectionValue `json:"selections,omitempty"`
	FulfillmentAt *time.Time                `json:"fulfillmentAt,omitempty"`
}

// SelectionValue ответ покупателя на одну группу кастомизации
type SelectionValue struct {
	ChoiceID  string   `json:"choiceId,omitempty"`
	ChoiceIDs []string `json:"choiceIds,omitempty"`
	Text      string   `json:"text,omitempty"`
}

// CartResponse HTTP response model
type CartResponse struct {
	Items          []CartItem `json:"items"`
	TotalItemCount int        `json:"totalItemCount"`
	MonetaryTotal  string     `json:"monetaryTotal"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CartResponse) *CartResponse {
	items := make([]CartItem, len(resp.Items))
	for i, line := range resp.Items {
		item := CartItem{
			ID:            line.ID,
			ProductSlug:   line.ProductSlug,
			ProductName:   line.ProductName,
			VariantID:     line.VariantID,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			FinalPrice:    line.FinalPrice,
			LineTotal:     line.LineTotal,
			IsCustom:      line.IsCustom,
			FulfillmentAt: line.FulfillmentAt,
		}

		if len(line.Selections) > 0 {
			item.Selections = make(map[string]SelectionValue, len(line.Selections))
			for key, value := range line.Selections {
				item.Selections[key] = SelectionValue{
					ChoiceID:  value.ChoiceID,
					ChoiceIDs: value.ChoiceIDs,
					Text:      value.Text,
				}
			}
		}

		items[i] = item
	}

	return &CartResponse{
		Items:          items,
		TotalItemCount: resp.TotalItemCount,
		MonetaryTotal:  resp.MonetaryTotal,
	}
}
