package add_cart_item

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.ProductSlug == "" {
		return fmt.Errorf("%w: productSlug is required", ErrInvalidInput)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if req.Quantity > domain.MaxQuantityPerLine {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxQuantityPerLine)
	}
	return nil
}

// validateSelections проверяет ответы покупателя против объявленных групп товара
// Неизвестные ключи групп и слишком длинный текст отклоняются до расчета цены
func validateSelections(product *domain.Product, selections domain.Selections) error {
	for key, sel := range selections {
		group, ok := product.GroupByKey(key)
		if !ok {
			return fmt.Errorf("%w: unknown customization group %q", ErrInvalidInput, key)
		}
		if group.Type != domain.GroupTextInput {
			continue
		}

		maxLength := group.MaxLength
		if maxLength <= 0 || maxLength > domain.MaxTextInputLength {
			maxLength = domain.MaxTextInputLength
		}
		if len(strings.TrimSpace(sel.Text)) > maxLength {
			return fmt.Errorf("%w: text for group %q exceeds %d characters", ErrInvalidInput, key, maxLength)
		}
	}
	return nil
}
