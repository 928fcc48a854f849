package update_cart_item

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/cart/models"
)

type CartService interface {
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
