package models

import (
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// ProductSummary краткая карточка товара для списка каталога
type ProductSummary struct {
	ID               string
	Name             string
	Slug             string
	Description      string
	Category         string
	ImageURLs        []string
	BasePrice        string
	IsCustomizable   bool
	MinLeadTimeHours int
}

// ProductResponse полная карточка товара
type ProductResponse struct {
	ProductSummary
	CustomizationGroups []OptionGroup
	StandardOptions     *StandardOption
}

// OptionGroup группа кастомизации товара
type OptionGroup struct {
	GroupKey        string
	GroupLabel      string
	Type            string
	IsMandatory     bool
	MaxLength       int
	PriceAdjustment string
	Choices         []Choice
}

// Choice одна опция внутри группы
type Choice struct {
	ChoiceID        string
	Label           string
	PriceAdjustment string
}

// StandardOption вариантная опция стандартного товара
type StandardOption struct {
	OptionKey   string
	OptionLabel string
	Variants    []Variant
}

// Variant один вариант стандартного товара
type Variant struct {
	VariantID string
	Label     string
	Price     string
	Stock     int
}

// FromDomainSummary строит краткую карточку из доменного товара
func FromDomainSummary(p *domain.Product) ProductSummary {
	return ProductSummary{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		Category:         string(p.Category),
		ImageURLs:        p.ImageURLs,
		BasePrice:        p.BasePrice.StringFixed(2),
		IsCustomizable:   p.IsCustomizable,
		MinLeadTimeHours: p.MinLeadTimeHours,
	}
}

// FromDomain строит полную карточку из доменного товара
func FromDomain(p *domain.Product) *ProductResponse {
	resp := &ProductResponse{ProductSummary: FromDomainSummary(p)}

	if p.IsCustomizable {
		resp.CustomizationGroups = make([]OptionGroup, len(p.CustomizationGroups))
		for i, g := range p.CustomizationGroups {
			group := OptionGroup{
				GroupKey:        g.GroupKey,
				GroupLabel:      g.GroupLabel,
				Type:            string(g.Type),
				IsMandatory:     g.IsMandatory,
				MaxLength:       g.MaxLength,
				PriceAdjustment: g.PriceAdjustment.StringFixed(2),
				Choices:         make([]Choice, len(g.Choices)),
			}
			for j, c := range g.Choices {
				group.Choices[j] = Choice{
					ChoiceID:        c.ChoiceID,
					Label:           c.Label,
					PriceAdjustment: c.PriceAdjustment.StringFixed(2),
				}
			}
			resp.CustomizationGroups[i] = group
		}
		return resp
	}

	if p.StandardOptions != nil {
		opt := &StandardOption{
			OptionKey:   p.StandardOptions.OptionKey,
			OptionLabel: p.StandardOptions.OptionLabel,
			Variants:    make([]Variant, len(p.StandardOptions.Variants)),
		}
		for i, v := range p.StandardOptions.Variants {
			opt.Variants[i] = Variant{
				VariantID: v.VariantID,
				Label:     v.Label,
				Price:     v.Price.StringFixed(2),
				Stock:     v.Stock,
			}
		}
		resp.StandardOptions = opt
	}
	return resp
}
