package capacity

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Source адаптирует репозиторий к представлению журнала для генератора
// слотов: дата без записи читается как nil - не ограничена и не заблокирована
type Source struct {
	repo *Repository
}

// NewSource оборачивает repo
func NewSource(repo *Repository) *Source {
	return &Source{repo: repo}
}

// GetCapacityForDate возвращает запись журнала для даты или nil, если её нет
func (s *Source) GetCapacityForDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error) {
	limit, err := s.repo.GetByDate(ctx, dateISO)
	if errors.Is(err, ErrCapacityNotFound) {
		return nil, nil
	}
	return limit, err
}
