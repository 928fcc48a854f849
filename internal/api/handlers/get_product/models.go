package get_product

import (
	catalogModels "github.com/m04kA/SMC-StorefrontService/internal/service/catalog/models"
)

// ProductResponse HTTP модель полной карточки товара
type ProductResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Slug                string          `json:"slug"`
	Description         string          `json:"description"`
	Category            string          `json:"category"`
	ImageURLs           []string        `json:"imageUrls"`
	BasePrice           string          `json:"basePrice"`
	IsCustomizable      bool            `json:"isCustomizable"`
	MinLeadTimeHours    int             `json:"minLeadTimeHours"`
	CustomizationGroups []OptionGroup   `json:"customizationGroups,omitempty"`
	StandardOptions     *StandardOption `json:"standardOptions,omitempty"`
}

// OptionGroup модель группы кастомизации
type OptionGroup struct {
	GroupKey        string   `json:"groupKey"`
	GroupLabel      string   `json:"groupLabel"`
	Type            string   `json:"type"`
	IsMandatory     bool     `json:"isMandatory"`
	MaxLength       int      `json:"maxLength,omitempty"`
	PriceAdjustment string   `json:"priceAdjustment"`
	Choices         []Choice `json:"choices,omitempty"`
}

// Choice модель опции внутри группы
type Choice struct {
	ChoiceID        string `json:"choiceId"`
	Label           string `json:"label"`
	PriceAdjustment string `json:"priceAdjustment"`
}

// StandardOption модель вариантной опции стандартного товара
type StandardOption struct {
	OptionKey   string    `json:"optionKey"`
	OptionLabel string    `json:"optionLabel"`
	Variants    []Variant `json:"variants"`
}

// Variant модель варианта стандартного товара
type Variant struct {
	VariantID string `json:"variantId"`
	Label     string `json:"label"`
	Price     string `json:"price"`
	Stock     int    `json:"stock"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(p *catalogModels.ProductResponse) *ProductResponse {
	resp := &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		Category:         p.Category,
		ImageURLs:        p.ImageURLs,
		BasePrice:        p.BasePrice,
		IsCustomizable:   p.IsCustomizable,
		MinLeadTimeHours: p.MinLeadTimeHours,
	}

	for _, g := range p.CustomizationGroups {
		group := OptionGroup{
			GroupKey:        g.GroupKey,
			GroupLabel:      g.GroupLabel,
			Type:            g.Type,
			IsMandatory:     g.IsMandatory,
			MaxLength:       g.MaxLength,
			PriceAdjustment: g.PriceAdjustment,
		}
		for _, c := range g.Choices {
			group.Choices = append(group.Choices, Choice{
				ChoiceID:        c.ChoiceID,
				Label:           c.Label,
				PriceAdjustment: c.PriceAdjustment,
			})
		}
		resp.CustomizationGroups = append(resp.CustomizationGroups, group)
	}

	if p.StandardOptions != nil {
		opt := &StandardOption{
			OptionKey:   p.StandardOptions.OptionKey,
			OptionLabel: p.StandardOptions.OptionLabel,
		}
		for _, v := range p.StandardOptions.Variants {
			opt.Variants = append(opt.Variants, Variant{
				VariantID: v.VariantID,
				Label:     v.Label,
				Price:     v.Price,
				Stock:     v.Stock,
			})
		}
		resp.StandardOptions = opt
	}
	return resp
}
