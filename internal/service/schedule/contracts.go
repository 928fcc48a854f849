package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
)

// CapacitySource интерфейс источника данных о загрузке по датам
type CapacitySource interface {
	GetCapacityForDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error)
}

// SessionStore интерфейс хранилища активных сессий покупателей
type SessionStore interface {
	Get(id string) (*session.Session, error)
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
