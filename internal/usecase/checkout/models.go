package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Request запрос на оформление заказа из корзины сессии
type Request struct {
	SessionID     string
	Delivery      domain.DeliveryData
	PaymentMethod domain.PaymentMethod
}

// OrderLine одна позиция созданного заказа
type OrderLine struct {
	ProductSlug   string
	ProductName   string
	VariantID     string
	Quantity      int
	FinalPrice    decimal.Decimal
	LineTotal     decimal.Decimal
	FulfillmentAt *time.Time
}

// Response созданный заказ с его суммами
type Response struct {
	OrderNumber   string
	Items         []OrderLine
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	GrandTotal    decimal.Decimal
	PaymentMethod domain.PaymentMethod
	PlacedAt      time.Time
}
