package quote_price

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// CatalogReader интерфейс для чтения каталога товаров
type CatalogReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
