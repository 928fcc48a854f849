package domain

import "errors"

// Константы форматов времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию и границы валидации расписания
const (
	DefaultHorizonDays = 7
	MaxHorizonDays     = 60

	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MaxLeadTimeHours       = 24 * 30
)

// Границы валидации корзины
const (
	MaxQuantityPerLine = 100
	MaxTextInputLength = 500
)

// ErrInvalidScheduleConfig возвращается, когда конфигурация расписания
// нарушает жесткое ограничение (пустое окно, длительность слота вне границ)
var ErrInvalidScheduleConfig = errors.New("domain: invalid schedule config")
