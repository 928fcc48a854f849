package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

func validSchedule() ScheduleConfig {
	return ScheduleConfig{
		StartTime:           "09:00",
		EndTime:             "17:00",
		SlotDurationMinutes: 60,
		MinLeadTimeHours:    48,
		HorizonDays:         7,
	}
}

func TestToDomain_MapsFields(t *testing.T) {
	s := validSchedule()
	s.DayExceptions = []DayException{
		{DayOfWeek: "Sunday", IsClosed: true},
		{DayOfWeek: "Saturday", CustomStartTime: "10:00", CustomEndTime: "14:00"},
	}

	cfg, warnings, err := s.ToDomain()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, types.TimeString("09:00"), cfg.DefaultWindow.StartTime)
	assert.Equal(t, 60, cfg.SlotDurationMinutes)
	assert.Equal(t, 48, cfg.MinLeadTimeHours)

	assert.True(t, cfg.IsClosedOn(time.Sunday))
	window := cfg.WindowFor(time.Saturday)
	assert.Equal(t, types.TimeString("10:00"), window.StartTime)
	assert.Equal(t, types.TimeString("14:00"), window.EndTime)
}

func TestToDomain_DuplicateExceptionLastWins(t *testing.T) {
	s := validSchedule()
	s.DayExceptions = []DayException{
		{DayOfWeek: "Sunday", IsClosed: true},
		{DayOfWeek: "Sunday", CustomStartTime: "11:00", CustomEndTime: "15:00"},
	}

	cfg, warnings, err := s.ToDomain()
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "duplicate exception")

	assert.False(t, cfg.IsClosedOn(time.Sunday))
	window := cfg.WindowFor(time.Sunday)
	assert.Equal(t, types.TimeString("11:00"), window.StartTime)
}

func TestToDomain_UnevenWindowWarns(t *testing.T) {
	s := validSchedule()
	s.EndTime = "17:30"

	_, warnings, err := s.ToDomain()
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not an exact multiple")
}

func TestToDomain_InvalidWindowFails(t *testing.T) {
	s := validSchedule()
	s.StartTime = "18:00"
	s.EndTime = "09:00"

	_, _, err := s.ToDomain()

	assert.Error(t, err)
}

func TestToDomain_UnknownWeekdayFails(t *testing.T) {
	s := validSchedule()
	s.DayExceptions = []DayException{{DayOfWeek: "Someday", IsClosed: true}}

	_, _, err := s.ToDomain()

	assert.Error(t, err)
}

func TestDeliveryFeeAmount(t *testing.T) {
	fee, err := CheckoutConfig{DeliveryFee: "5.00"}.DeliveryFeeAmount()
	require.NoError(t, err)
	assert.Equal(t, "5.00", fee.StringFixed(2))

	fee, err = CheckoutConfig{}.DeliveryFeeAmount()
	require.NoError(t, err)
	assert.True(t, fee.IsZero())

	_, err = CheckoutConfig{DeliveryFee: "abc"}.DeliveryFeeAmount()
	assert.Error(t, err)
}
