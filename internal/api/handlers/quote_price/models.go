package quote_price

import (
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	quotePrice "github.com/m04kA/SMC-StorefrontService/internal/usecase/quote_price"
)

// QuotePriceRequest HTTP request model
type QuotePriceRequest struct {
	ProductSlug string                    `json:"productSlug"`
	VariantID   string                    `json:"variantId,omitempty"`
	Selections  map[string]SelectionValue `json:"selections,omitempty"`
}

// SelectionValue ответ покупателя на одну группу кастомизации
type SelectionValue struct {
	ChoiceID  string   `json:"choiceId,omitempty"`
	ChoiceIDs []string `json:"choiceIds,omitempty"`
	Text      string   `json:"text,omitempty"`
}

// QuotePriceResponse HTTP response model
type QuotePriceResponse struct {
	ProductSlug            string   `json:"productSlug"`
	BasePrice              string   `json:"basePrice"`
	FinalPrice             string   `json:"finalPrice"`
	MissingMandatoryGroups []string `json:"missingMandatoryGroups"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *QuotePriceRequest) ToUseCaseRequest() *quotePrice.Request {
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

	return &quotePrice.Request{
		ProductSlug: r.ProductSlug,
		VariantID:   r.VariantID,
		Selections:  selections,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuotePriceResponse {
	missing := resp.MissingMandatoryGroups
	if missing == nil {
		missing = []string{}
	}

	return &QuotePriceResponse{
		ProductSlug:            resp.ProductSlug,
		BasePrice:              resp.BasePrice.StringFixed(2),
		FinalPrice:             resp.FinalPrice.StringFixed(2),
		MissingMandatoryGroups: missing,
	}
}
