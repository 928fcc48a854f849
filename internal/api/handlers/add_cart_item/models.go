package add_cart_item

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	addCartItem "github.com/m04kA/SMC-StorefrontService/internal/usecase/add_cart_item"
)

// AddCartItemRequest HTTP request model
type AddCartItemRequest struct {
	ProductSlug string                    `json:"productSlug"`
	VariantID   string                    `json:"variantId,omitempty"`
	Quantity    int                       `json:"quantity"`
	Selections  map[string]SelectionValue `json:"selections,omitempty"`
}

// SelectionValue ответ покупателя на одну группу кастомизации
type SelectionValue struct {
	ChoiceID  string   `json:"choiceId,omitempty"`
	ChoiceIDs []string `json:"choiceIds,omitempty"`
	Text      string   `json:"text,omitempty"`
}

// AddCartItemResponse HTTP response model
type AddCartItemResponse struct {
	ItemID         string     `json:"itemId"`
	ProductName    string     `json:"productName"`
	UnitPrice      string     `json:"unitPrice"`
	FinalPrice     string     `json:"finalPrice"`
	FulfillmentAt  *time.Time `json:"fulfillmentAt,omitempty"`
	TotalItemCount int        `json:"totalItemCount"`
	MonetaryTotal  string     `json:"monetaryTotal"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *AddCartItemRequest) ToUseCaseRequest(sessionID string) *addCartItem.Request {
	var selections domain.Selections
	if len(r.Selections) > 0 {
		selections = make(domain.Selections, len(r.Selections))
		for key, value := range r.Selections {
			selections[key] = domain.SelectionValue{
				ChoiceID:  value.ChoiceID,
				ChoiceIDs: value.ChoiceIDs,
				Text:      value.Text,
			}
		}
	}

	return &addCartItem.Request{
		SessionID:   sessionID,
		ProductSlug: r.ProductSlug,
		VariantID:   r.VariantID,
		Quantity:    r.Quantity,
		Selections:  selections,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addCartItem.Response) *AddCartItemResponse {
	return &AddCartItemResponse{
		ItemID:         resp.ItemID,
		ProductName:    resp.ProductName,
		UnitPrice:      resp.UnitPrice.StringFixed(2),
		FinalPrice:     resp.FinalPrice.StringFixed(2),
		FulfillmentAt:  resp.FulfillmentAt,
		TotalItemCount: resp.TotalItemCount,
		MonetaryTotal:  resp.MonetaryTotal.StringFixed(2),
	}
}
