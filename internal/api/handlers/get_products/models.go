package get_products

import (
	catalogModels "github.com/m04kA/SMC-StorefrontService/internal/service/catalog/models"
)

// ProductSummary HTTP модель краткой карточки товара
type ProductSummary struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	ImageURLs        []string `json:"imageUrls"`
	BasePrice        string   `json:"basePrice"`
	IsCustomizable   bool     `json:"isCustomizable"`
	MinLeadTimeHours int      `json:"minLeadTimeHours"`
}

// ProductListResponse HTTP response model
type ProductListResponse struct {
	Products []ProductSummary `json:"products"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(summaries []catalogModels.ProductSummary) *ProductListResponse {
	products := make([]ProductSummary, len(summaries))
	for i, s := range summaries {
		products[i] = ProductSummary{
			ID:               s.ID,
			Name:             s.Name,
			Slug:             s.Slug,
			Description:      s.Description,
			Category:         s.Category,
			ImageURLs:        s.ImageURLs,
			BasePrice:        s.BasePrice,
			IsCustomizable:   s.IsCustomizable,
			MinLeadTimeHours: s.MinLeadTimeHours,
		}
	}
	return &ProductListResponse{Products: products}
}
