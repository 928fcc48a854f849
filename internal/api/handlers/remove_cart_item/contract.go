package remove_cart_item

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/cart/models"
)

type CartService interface {
	RemoveItem(ctx context.Context, sessionID, itemID string) (*models.CartResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
