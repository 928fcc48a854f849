package update_cart_item

import (
	"github.com/m04kA/SMC-StorefrontService/internal/service/cart/models"
)

// UpdateCartItemRequest HTTP request model
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartSummary HTTP модель агрегатов корзины после изменения
type CartSummary struct {
	TotalItemCount int    `json:"totalItemCount"`
	MonetaryTotal  string `json:"monetaryTotal"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.CartResponse) *CartSummary {
	return &CartSummary{
		TotalItemCount: resp.TotalItemCount,
		MonetaryTotal:  resp.MonetaryTotal,
	}
}
