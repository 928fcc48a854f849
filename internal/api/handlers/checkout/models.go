package checkout

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	checkoutUseCase "github.com/m04kA/SMC-StorefrontService/internal/usecase/checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	Delivery      DeliveryData `json:"delivery"`
	PaymentMethod string       `json:"paymentMethod"`
}

// DeliveryData данные покупателя и доставки
type DeliveryData struct {
	Method    string `json:"method"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	ZipCode   string `json:"zipCode,omitempty"`
}

// OrderLine HTTP модель одной позиции заказа
type OrderLine struct {
	ProductSlug   string     `json:"productSlug"`
	ProductName   string     `json:"productName"`
	VariantID     string     `json:"variantId,omitempty"`
	Quantity      int        `json:"quantity"`
	FinalPrice    string     `json:"finalPrice"`
	LineTotal     string     `json:"lineTotal"`
	FulfillmentAt *time.Time `json:"fulfillmentAt,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	OrderNumber   string      `json:"orderNumber"`
	Items         []OrderLine `json:"items"`
	Subtotal      string      `json:"subtotal"`
	DeliveryFee   string      `json:"deliveryFee"`
	GrandTotal    string      `json:"grandTotal"`
	PaymentMethod string      `json:"paymentMethod"`
	PlacedAt      time.Time   `json:"placedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CheckoutRequest) ToUseCaseRequest(sessionID string) *checkoutUseCase.Request {
	return &checkoutUseCase.Request{
		SessionID: sessionID,
		Delivery: domain.DeliveryData{
			Method:    domain.DeliveryMethod(r.Delivery.Method),
			FirstName: r.Delivery.FirstName,
			LastName:  r.Delivery.LastName,
			Email:     r.Delivery.Email,
			Phone:     r.Delivery.Phone,
			Address:   r.Delivery.Address,
			City:      r.Delivery.City,
			ZipCode:   r.Delivery.ZipCode,
		},
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUseCase.Response) *CheckoutResponse {
	items := make([]OrderLine, len(resp.Items))
	for i, line := range resp.Items {
		items[i] = OrderLine{
			ProductSlug:   line.ProductSlug,
			ProductName:   line.ProductName,
			VariantID:     line.VariantID,
			Quantity:      line.Quantity,
			FinalPrice:    line.FinalPrice.StringFixed(2),
			LineTotal:     line.LineTotal.StringFixed(2),
			FulfillmentAt: line.FulfillmentAt,
		}
	}

	return &CheckoutResponse{
		OrderNumber:   resp.OrderNumber,
		Items:         items,
		Subtotal:      resp.Subtotal.StringFixed(2),
		DeliveryFee:   resp.DeliveryFee.StringFixed(2),
		GrandTotal:    resp.GrandTotal.StringFixed(2),
		PaymentMethod: string(resp.PaymentMethod),
		PlacedAt:      resp.PlacedAt,
	}
}
