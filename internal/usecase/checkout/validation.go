package checkout

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	switch req.PaymentMethod {
	case domain.PaymentCard, domain.PaymentTransfer:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return validateDelivery(&req.Delivery)
}

// validateDelivery проверяет данные покупателя и доставки
// Адресные поля обязательны только для курьерской доставки
func validateDelivery(d *domain.DeliveryData) error {
	switch d.Method {
	case domain.DeliveryPickup, domain.DeliveryCourier:
	default:
		return fmt.Errorf("%w: unknown delivery method %q", ErrInvalidInput, d.Method)
	}

	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if !strings.Contains(d.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if d.Method == domain.DeliveryCourier {
		if strings.TrimSpace(d.Address) == "" || strings.TrimSpace(d.City) == "" || strings.TrimSpace(d.ZipCode) == "" {
			return fmt.Errorf("%w: address, city and zip code are required for courier delivery", ErrInvalidInput)
		}
	}
	return nil
}
