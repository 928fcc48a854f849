package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	scheduleSel "github.com/m04kA/SMC-StorefrontService/internal/schedule"
	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// Service сервис выбора расписания исполнения заказа для сессии:
// сначала дата, затем слот, с перепроверкой против актуального журнала
// загрузки при каждом чтении
type Service struct {
	cfg          *domain.ScheduleConfig
	ledger       CapacitySource
	sessions     SessionStore
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewService создает новый экземпляр сервиса выбора расписания
func NewService(
	cfg *domain.ScheduleConfig,
	ledger CapacitySource,
	sessions SessionStore,
	horizonDays int,
	logger Logger,
) *Service {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &Service{
		cfg:          cfg,
		ledger:       ledger,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// SelectDate выбирает дату из актуального предлагаемого набора
// Ранее выбранное время сбрасывается, включая повторный выбор той же даты
func (s *Service) SelectDate(ctx context.Context, req *models.SelectDateRequest) (*models.SelectionResponse, error) {
	sess, err := s.sessions.Get(req.SessionID)
	if err != nil {
		s.logger.Warn("SelectDate: session %s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.SelectionResponse
	err = sess.Do(func(sess *session.Session) error {
		dates, err := slots.OfferableDates(ctx, s.cfg, s.ledger, s.timeProvider.Now(), s.horizonDays)
		if err != nil {
			s.logger.Error("SelectDate: failed to compute offerable dates: %v", err)
			return fmt.Errorf("%w: offerable dates: %v", ErrInternal, err)
		}

		if err := sess.Selection.SelectDate(dates, req.DateISO); err != nil {
			s.logger.Warn("SelectDate: session=%s date=%s rejected: %v", req.SessionID, req.DateISO, err)
			return ErrDateNotOfferable
		}

		resp = models.FromSelection(sess.Selection)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectDate: session=%s date=%s", req.SessionID, req.DateISO)
	return resp, nil
}

// SelectTime выбирает слот из предлагаемых на выбранную дату,
// завершая выбор расписания
func (s *Service) SelectTime(ctx context.Context, req *models.SelectTimeRequest) (*models.SelectionResponse, error) {
	sess, err := s.sessions.Get(req.SessionID)
	if err != nil {
		s.logger.Warn("SelectTime: session %s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.SelectionResponse
	err = sess.Do(func(sess *session.Session) error {
		date, ok := sess.Selection.SelectedDate()
		if !ok {
			s.logger.Warn("SelectTime: session=%s has no date selected", req.SessionID)
			return ErrNoDateSelected
		}

		slot, err := types.NewTimeStringFromString(req.Time)
		if err != nil {
			s.logger.Warn("SelectTime: session=%s invalid time %q", req.SessionID, req.Time)
			return ErrSlotNotOfferable
		}

		offered, err := slots.OfferableSlots(ctx, s.cfg, s.ledger, date)
		if err != nil {
			s.logger.Error("SelectTime: failed to compute offerable slots: %v", err)
			return fmt.Errorf("%w: offerable slots: %v", ErrInternal, err)
		}

		if err := sess.Selection.SelectTime(offered, slot); err != nil {
			if errors.Is(err, scheduleSel.ErrNoDateSelected) {
				return ErrNoDateSelected
			}
			s.logger.Warn("SelectTime: session=%s time=%s rejected: %v", req.SessionID, req.Time, err)
			return ErrSlotNotOfferable
		}

		resp = models.FromSelection(sess.Selection)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("SelectTime: session=%s time=%s", req.SessionID, req.Time)
	return resp, nil
}

// GetSelection возвращает текущий выбор, предварительно сверяя его со свежим
// снимком загрузки: дата или слот, переставшие предлагаться после выбора,
// понижают состояние выбора вместо выдачи устаревшей метки времени
func (s *Service) GetSelection(ctx context.Context, sessionID string) (*models.SelectionResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		s.logger.Warn("GetSelection: session %s not found", sessionID)
		return nil, ErrSessionNotFound
	}

	var resp *models.SelectionResponse
	err = sess.Do(func(sess *session.Session) error {
		if err := s.revalidate(ctx, sess, sessionID); err != nil {
			return err
		}
		resp = models.FromSelection(sess.Selection)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// revalidate выполняется под блокировкой сессии
func (s *Service) revalidate(ctx context.Context, sess *session.Session, sessionID string) error {
	if sess.Selection.State() == scheduleSel.StateEmpty {
		return nil
	}

	dates, err := slots.OfferableDates(ctx, s.cfg, s.ledger, s.timeProvider.Now(), s.horizonDays)
	if err != nil {
		s.logger.Error("revalidate: failed to compute offerable dates: %v", err)
		return fmt.Errorf("%w: offerable dates: %v", ErrInternal, err)
	}

	var offered []types.TimeString
	if date, ok := sess.Selection.SelectedDate(); ok {
		offered, err = slots.OfferableSlots(ctx, s.cfg, s.ledger, date)
		if err != nil {
			s.logger.Error("revalidate: failed to compute offerable slots: %v", err)
			return fmt.Errorf("%w: offerable slots: %v", ErrInternal, err)
		}
	}

	before := sess.Selection.State()
	after := sess.Selection.Revalidate(dates, offered)
	if before != after {
		s.logger.Warn("revalidate: session=%s selection demoted %s -> %s", sessionID, before, after)
	}
	return nil
}
