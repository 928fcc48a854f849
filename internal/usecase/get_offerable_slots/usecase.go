package get_offerable_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
)

// UseCase use case для получения упорядоченных предлагаемых слотов на одну дату
type UseCase struct {
	cfg          *domain.ScheduleConfig
	ledger       CapacitySource
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cfg *domain.ScheduleConfig, ledger CapacitySource, logger Logger) *UseCase {
	return &UseCase{
		cfg:          cfg,
		ledger:       ledger,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute определяет действующее окно для дня недели даты, проходит его
// с шагом длительности слота и отфильтровывает исчерпанные слоты
// Заблокированная дата возвращает пустой список слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOfferableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if req.Date.Before(slots.MinOfferableDate(uc.cfg, now)) {
		uc.logger.Warn("GetOfferableSlots: date %s is before the lead-time boundary",
			req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotOfferable
	}

	dateISO := req.Date.Format(domain.DateFormat)
	capacity, err := uc.ledger.GetCapacityForDate(ctx, dateISO)
	if err != nil {
		uc.logger.Error("GetOfferableSlots: failed to load capacity for %s: %v", dateISO, err)
		return nil, fmt.Errorf("%w: load capacity: %v", ErrInternal, err)
	}

	offered, err := slots.OfferableSlots(ctx, uc.cfg, uc.ledger, req.Date)
	if err != nil {
		uc.logger.Error("GetOfferableSlots: failed to compute slots for %s: %v", dateISO, err)
		return nil, fmt.Errorf("%w: offerable slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:          req.Date,
		IsBlackoutDay: capacity != nil && capacity.IsBlackoutDay,
		Slots:         offered,
	}

	uc.logger.Info("GetOfferableSlots: date=%s blackout=%t slots=%d", dateISO, resp.IsBlackoutDay, len(offered))
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
