package get_product

import (
	"context"

	catalogModels "github.com/m04kA/SMC-StorefrontService/internal/service/catalog/models"
)

type CatalogService interface {
	GetBySlug(ctx context.Context, slug string) (*catalogModels.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
