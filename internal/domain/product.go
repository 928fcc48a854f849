package domain

import (
	"github.com/shopspring/decimal"
)

// ProductCategory enumerates the storefront categories.
type ProductCategory string

const (
	CategoryCakes     ProductCategory = "Cakes"
	CategoryDoughnuts ProductCategory = "Doughnuts"
	CategoryMeatPies  ProductCategory = "MeatPies"
	CategoryCatfish   ProductCategory = "Catfish"
)

// GroupType is the kind of customization control a group renders as.
type GroupType string

const (
	GroupSingleSelect GroupType = "single-select"
	GroupMultiSelect  GroupType = "multi-select"
	GroupTextInput    GroupType = "text-input"
)

// Choice is one selectable option inside a customization group.
type Choice struct {
	ChoiceID        string
	Label           string
	PriceAdjustment decimal.Decimal
}

// OptionGroup is a group of customization options for a customizable product
// (size, flavor, inscription). Choices applies to select types; MaxLength and
// PriceAdjustment apply to text-input groups (flat fee when text is supplied).
type OptionGroup struct {
	GroupKey        string
	GroupLabel      string
	Type            GroupType
	IsMandatory     bool
	Choices         []Choice
	MaxLength       int
	PriceAdjustment decimal.Decimal
}

// ChoiceByID finds a choice in the group by its id.
func (g *OptionGroup) ChoiceByID(id string) (*Choice, bool) {
	for i := range g.Choices {
		if g.Choices[i].ChoiceID == id {
			return &g.Choices[i], true
		}
	}
	return nil, false
}

// Variant is one purchasable variant of a standard-inventory product,
// carrying its own final price and tracked stock.
type Variant struct {
	VariantID string
	Label     string
	Price     decimal.Decimal
	Stock     int
}

// StandardOption is the single option axis of a standard product
// (weight, preparation).
type StandardOption struct {
	OptionKey   string
	OptionLabel string
	Variants    []Variant
}

// VariantByID finds a variant by its id.
func (o *StandardOption) VariantByID(id string) (*Variant, bool) {
	for i := range o.Variants {
		if o.Variants[i].VariantID == id {
			return &o.Variants[i], true
		}
	}
	return nil, false
}

// Product is a storefront product. Customizable products carry option groups
// and a per-product minimum lead time; standard products carry variants with
// stock. BasePrice is the starting price for customizable products and unused
// for standard ones (variants price themselves).
type Product struct {
	ID             string
	Name           string
	Slug           string
	Description    string
	Category       ProductCategory
	ImageURLs      []string
	BasePrice      decimal.Decimal
	IsCustomizable bool

	// Customizable products only.
	MinLeadTimeHours    int
	CustomizationGroups []OptionGroup

	// Standard products only.
	StandardOptions *StandardOption
}

// GroupByKey finds a customization group by its key.
func (p *Product) GroupByKey(key string) (*OptionGroup, bool) {
	for i := range p.CustomizationGroups {
		if p.CustomizationGroups[i].GroupKey == key {
			return &p.CustomizationGroups[i], true
		}
	}
	return nil, false
}
