package get_offerable_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

type stubLedger struct {
	entries map[string]*domain.CapacityLimit
}

func (s *stubLedger) GetCapacityForDate(_ context.Context, dateISO string) (*domain.CapacityLimit, error) {
	return s.entries[dateISO], nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(ledger *stubLedger) *UseCase {
	cfg := &domain.ScheduleConfig{
		DefaultWindow: domain.TimeWindow{
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("17:00"),
		},
		SlotDurationMinutes: 60,
		MinLeadTimeHours:    48,
		DayExceptions: map[time.Weekday]domain.DayException{
			time.Sunday: {Weekday: time.Sunday, IsClosed: true},
		},
	}
	uc := NewUseCase(cfg, ledger, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ReturnsHorizonFromLeadTimeBoundary(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	resp, err := uc.Execute(context.Background(), &Request{HorizonDays: 7})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), resp.MinDate)
	require.Len(t, resp.Dates, 7)
	assert.Equal(t, "2025-11-15", resp.Dates[0].DateISO)
	assert.True(t, resp.Dates[0].IsSelectable)

	// Воскресенье 16.11 выходной
	assert.Equal(t, "2025-11-16", resp.Dates[1].DateISO)
	assert.False(t, resp.Dates[1].IsSelectable)
}

func TestExecute_ZeroHorizonFallsBackToDefault(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Len(t, resp.Dates, domain.DefaultHorizonDays)
}

func TestExecute_BlackoutDateNotSelectable(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-17": {Date: "2025-11-17", IsBlackoutDay: true},
	}})

	resp, err := uc.Execute(context.Background(), &Request{HorizonDays: 7})
	require.NoError(t, err)

	assert.Equal(t, "2025-11-17", resp.Dates[2].DateISO)
	assert.False(t, resp.Dates[2].IsSelectable)
}

func TestExecute_NegativeHorizonFails(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	_, err := uc.Execute(context.Background(), &Request{HorizonDays: -1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_HorizonAboveMaximumFails(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	_, err := uc.Execute(context.Background(), &Request{HorizonDays: domain.MaxHorizonDays + 1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
