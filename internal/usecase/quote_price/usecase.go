package quote_price

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/pricing"
)

// UseCase use case для расчета итоговой цены конфигурации товара
// Повторяет живое отображение цены на витрине во время кастомизации
type UseCase struct {
	catalog CatalogReader
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogReader, logger Logger) *UseCase {
	return &UseCase{catalog: catalog, logger: logger}
}

// Execute выполняет расчет цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ProductSlug == "" {
		return nil, fmt.Errorf("%w: productSlug is required", ErrInvalidInput)
	}

	product, err := uc.catalog.GetBySlug(ctx, req.ProductSlug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			uc.logger.Warn("QuotePrice: product %s not found", req.ProductSlug)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("QuotePrice: failed to load product %s: %v", req.ProductSlug, err)
		return nil, fmt.Errorf("%w: load product: %v", ErrInternal, err)
	}

	if !product.IsCustomizable {
		if req.VariantID == "" {
			return nil, ErrVariantRequired
		}
		if product.StandardOptions == nil {
			return nil, ErrVariantNotFound
		}
		variant, ok := product.StandardOptions.VariantByID(req.VariantID)
		if !ok {
			uc.logger.Warn("QuotePrice: variant %s/%s not found", req.ProductSlug, req.VariantID)
			return nil, ErrVariantNotFound
		}

		uc.logger.Info("QuotePrice: %s variant=%s price=%s", req.ProductSlug, req.VariantID, variant.Price)
		return &Response{
			ProductSlug: product.Slug,
			BasePrice:   variant.Price,
			FinalPrice:  variant.Price,
		}, nil
	}

	finalPrice := pricing.FinalPrice(product.BasePrice, product.CustomizationGroups, req.Selections)
	missing := pricing.MissingMandatoryGroups(product.CustomizationGroups, req.Selections)

	uc.logger.Info("QuotePrice: %s base=%s final=%s missing=%d",
		req.ProductSlug, product.BasePrice, finalPrice, len(missing))
	return &Response{
		ProductSlug:            product.Slug,
		BasePrice:              product.BasePrice,
		FinalPrice:             finalPrice,
		MissingMandatoryGroups: missing,
	}, nil
}
