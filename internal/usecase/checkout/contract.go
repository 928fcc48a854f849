package checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// SessionStore интерфейс хранилища активных сессий покупателей
type SessionStore interface {
	Get(id string) (*session.Session, error)
	Delete(id string)
}

// CapacitySource интерфейс источника данных о загрузке по датам
type CapacitySource interface {
	GetCapacityForDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error)
}

// CapacityReserver интерфейс резервирования мест в слотах журнала загрузки
type CapacityReserver interface {
	ReserveSlot(ctx context.Context, dateISO string, slot types.TimeString) error
}

// CatalogReader интерфейс для чтения каталога товаров
type CatalogReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

// StockDecrementer интерфейс списания остатков вариантов товаров
type StockDecrementer interface {
	DecrementStock(ctx context.Context, productID, variantID string, quantity int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
