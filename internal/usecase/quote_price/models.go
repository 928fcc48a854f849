package quote_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Request запрос цены конфигурации товара. Selections относится к
// кастомизируемым товарам; VariantID - к стандартным
type Request struct {
	ProductSlug string
	VariantID   string
	Selections  domain.Selections
}

// Response рассчитанная цена и то, чего еще не хватает, прежде чем
// конфигурация может попасть в корзину
type Response struct {
	ProductSlug            string
	BasePrice              decimal.Decimal
	FinalPrice             decimal.Decimal
	MissingMandatoryGroups []string
}
