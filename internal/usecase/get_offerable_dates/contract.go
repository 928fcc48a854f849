package get_offerable_dates

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// CapacitySource интерфейс источника данных о загрузке по датам
type CapacitySource interface {
	GetCapacityForDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error)
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
