package slots

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

func testConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		DefaultWindow: domain.TimeWindow{
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("17:00"),
		},
		SlotDurationMinutes: 60,
		MinLeadTimeHours:    48,
		DayExceptions:       map[time.Weekday]domain.DayException{},
	}
}

func TestMinOfferableDate_NormalizesToStartOfDay(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 11, 13, 10, 30, 0, 0, time.UTC)

	minDate := MinOfferableDate(cfg, now)

	// 13.11 10:30 + 48h = 15.11 10:30 -> начало дня 15.11
	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), minDate)
}

func TestOfferableDates_HorizonStartsAtLeadTimeBoundary(t *testing.T) {
	cfg := testConfig()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	now := time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

	dates, err := OfferableDates(context.Background(), cfg, ledger, now, 7)
	require.NoError(t, err)

	require.Len(t, dates, 7)
	assert.Equal(t, "2025-11-15", dates[0].DateISO)
	assert.Equal(t, "2025-11-21", dates[6].DateISO)
	for _, d := range dates {
		assert.True(t, d.IsSelectable)
	}
}

func TestOfferableDates_ClosedWeekdayIsNotSelectable(t *testing.T) {
	cfg := testConfig()
	cfg.DayExceptions[time.Sunday] = domain.DayException{Weekday: time.Sunday, IsClosed: true}
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	now := time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

	dates, err := OfferableDates(context.Background(), cfg, ledger, now, 7)
	require.NoError(t, err)

	for _, d := range dates {
		if d.Weekday == time.Sunday {
			assert.False(t, d.IsSelectable, "sunday %s must not be selectable", d.DateISO)
		} else {
			assert.True(t, d.IsSelectable)
		}
	}
}

func TestOfferableDates_BlackoutDayIsNotSelectable(t *testing.T) {
	cfg := testConfig()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-16": {Date: "2025-11-16", IsBlackoutDay: true},
	}}
	now := time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)

	dates, err := OfferableDates(context.Background(), cfg, ledger, now, 7)
	require.NoError(t, err)

	for _, d := range dates {
		if d.DateISO == "2025-11-16" {
			assert.False(t, d.IsSelectable)
		} else {
			assert.True(t, d.IsSelectable)
		}
	}
}

func TestOfferableSlots_FullWindowWithoutCapacityEntries(t *testing.T) {
	cfg := testConfig()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	result, err := OfferableSlots(context.Background(), cfg, ledger, date)
	require.NoError(t, err)

	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
	}
	assert.Equal(t, expected, result)
}

func TestOfferableSlots_ExhaustedSlotIsExcluded(t *testing.T) {
	cfg := testConfig()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-15": {
			Date: "2025-11-15",
			TimeSlotCapacity: []domain.TimeSlotCapacity{
				{TimeSlot: "12:00", Limit: 1, BookedCount: 1},
				{TimeSlot: "14:00", Limit: 3, BookedCount: 2},
			},
		},
	}}
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	result, err := OfferableSlots(context.Background(), cfg, ledger, date)
	require.NoError(t, err)

	assert.NotContains(t, result, types.TimeString("12:00"))
	assert.Contains(t, result, types.TimeString("14:00"))
	assert.Len(t, result, 7)
}

func TestOfferableSlots_BlackoutDayYieldsEmptyList(t *testing.T) {
	cfg := testConfig()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{
		"2025-11-15": {Date: "2025-11-15", IsBlackoutDay: true},
	}}
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	result, err := OfferableSlots(context.Background(), cfg, ledger, date)
	require.NoError(t, err)

	assert.Empty(t, result)
}

func TestOfferableSlots_UnevenWindowTruncatesTrailingSlot(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultWindow = domain.TimeWindow{
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:30"),
	}
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	result, err := OfferableSlots(context.Background(), cfg, ledger, date)
	require.NoError(t, err)

	// 10:00 стартует внутри окна, даже если слот целиком не помещается
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, result)
}

func TestOfferableSlots_CustomWindowForWeekday(t *testing.T) {
	cfg := testConfig()
	cfg.DayExceptions[time.Saturday] = domain.DayException{
		Weekday: time.Saturday,
		Window: &domain.TimeWindow{
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("14:00"),
		},
	}
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	saturday := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	result, err := OfferableSlots(context.Background(), cfg, ledger, saturday)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00", "13:00"}, result)
}

func TestContainsDate_RequiresSelectable(t *testing.T) {
	dates := []OfferableDate{
		{DateISO: "2025-11-15", IsSelectable: true},
		{DateISO: "2025-11-16", IsSelectable: false},
	}

	assert.True(t, ContainsDate(dates, "2025-11-15"))
	assert.False(t, ContainsDate(dates, "2025-11-16"))
	assert.False(t, ContainsDate(dates, "2025-11-17"))
}
