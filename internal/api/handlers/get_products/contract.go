package get_products

import (
	"context"

	catalogModels "github.com/m04kA/SMC-StorefrontService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) ([]catalogModels.ProductSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
