package get_offerable_dates

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
)

// UseCase use case для получения набора предлагаемых дат исполнения
// для календаря витрины
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

// Execute перечисляет горизонт последовательных дат от границы минимального
// срока изготовления и помечает каждую как доступную или нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOfferableDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	dates, err := slots.OfferableDates(ctx, uc.cfg, uc.ledger, now, req.HorizonDays)
	if err != nil {
		uc.logger.Error("GetOfferableDates: failed to compute dates: %v", err)
		return nil, fmt.Errorf("%w: offerable dates: %v", ErrInternal, err)
	}

	resp := &Response{
		MinDate: slots.MinOfferableDate(uc.cfg, now),
		Dates:   make([]OfferableDate, len(dates)),
	}
	for i, d := range dates {
		resp.Dates[i] = OfferableDate{
			Date:         d.Date,
			DateISO:      d.DateISO,
			Weekday:      d.Weekday,
			IsSelectable: d.IsSelectable,
		}
	}

	uc.logger.Info("GetOfferableDates: returned %d dates from %s", len(resp.Dates),
		resp.MinDate.Format(domain.DateFormat))
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.HorizonDays < 0 {
		return fmt.Errorf("%w: horizonDays must not be negative", ErrInvalidInput)
	}
	if req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must not exceed %d", ErrInvalidInput, domain.MaxHorizonDays)
	}
	return nil
}
