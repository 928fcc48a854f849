package add_cart_item

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Request запрос на добавление товара в корзину сессии
type Request struct {
	SessionID   string
	ProductSlug string
	VariantID   string // только для стандартных товаров
	Quantity    int
	Selections  domain.Selections // только для кастомизируемых товаров
}

// Response новая позиция корзины и агрегаты корзины после добавления
type Response struct {
	ItemID         string
	ProductName    string
	UnitPrice      decimal.Decimal
	FinalPrice     decimal.Decimal
	FulfillmentAt  *time.Time
	TotalItemCount int
	MonetaryTotal  decimal.Decimal
}
