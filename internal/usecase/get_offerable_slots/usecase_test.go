package get_offerable_slots

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
		DayExceptions:       map[time.Weekday]domain.DayException{},
	}
	uc := NewUseCase(cfg, ledger, nopLogger{})
	uc.timeProvider = &fixedClock{now: time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_ReturnsOrderedSlots(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsBlackoutDay)
	assert.Equal(t, []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	}, resp.Slots)
}

func TestExecute_ExhaustedSlotExcluded(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-15": {
			Date: "2025-11-15",
			TimeSlotCapacity: []domain.TimeSlotCapacity{
				{TimeSlot: "12:00", Limit: 2, BookedCount: 2},
			},
		},
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("12:00"))
	assert.Len(t, resp.Slots, 7)
}

func TestExecute_BlackoutDateHasNoSlots(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-15": {Date: "2025-11-15", IsBlackoutDay: true},
	}})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.IsBlackoutDay)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateBeforeLeadTimeBoundaryFails(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDateNotOfferable)
}

func TestExecute_ZeroDateFails(t *testing.T) {
	uc := newTestUseCase(&stubLedger{entries: map[string]*domain.CapacityLimit{}})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
