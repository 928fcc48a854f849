package catalog

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога товаров
type CatalogRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
