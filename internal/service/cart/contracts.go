package cart

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
)

// SessionStore интерфейс хранилища активных сессий покупателей
type SessionStore interface {
	Get(id string) (*session.Session, error)
}

// CatalogReader интерфейс каталога для проверки остатков при обновлении количества
type CatalogReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
