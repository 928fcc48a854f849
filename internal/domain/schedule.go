package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// TimeWindow дневное окно приема заказов на самовывоз/доставку
type TimeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// DayException переопределение окна для одного дня недели:
// либо день полностью выходной, либо действует особое окно
type DayException struct {
	Weekday  time.Weekday
	IsClosed bool
	Window   *TimeWindow
}

// ScheduleConfig операционные правила магазина, из которых генерируются
// предлагаемые даты и временные слоты
// Загружается один раз при старте и дальше не изменяется
type ScheduleConfig struct {
	DefaultWindow       TimeWindow
	SlotDurationMinutes int
	MinLeadTimeHours    int

	// DayExceptions индексирован по дню недели; дубликаты в исходной
	// конфигурации разрешаются по принципу "последний выигрывает"
	// до построения этой map
	DayExceptions map[time.Weekday]DayException
}

// ExceptionFor возвращает исключение, настроенное для дня недели, если оно есть
func (c *ScheduleConfig) ExceptionFor(day time.Weekday) (DayException, bool) {
	exc, ok := c.DayExceptions[day]
	return exc, ok
}

// IsClosedOn проверяет, что день недели помечен выходным
func (c *ScheduleConfig) IsClosedOn(day time.Weekday) bool {
	exc, ok := c.DayExceptions[day]
	return ok && exc.IsClosed
}

// WindowFor возвращает действующее окно приема для дня недели: особое окно
// исключения, когда оно настроено и день рабочий, иначе окно по умолчанию
func (c *ScheduleConfig) WindowFor(day time.Weekday) TimeWindow {
	if exc, ok := c.DayExceptions[day]; ok && !exc.IsClosed && exc.Window != nil {
		return *exc.Window
	}
	return c.DefaultWindow
}

// Validate проверяет жесткие ограничения конфигурации
// Кратность окна длительности слота жестким ограничением не является:
// некратное окно теряет последний неполный слот при генерации
func (c *ScheduleConfig) Validate() error {
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration %d minutes outside [%d, %d]",
			ErrInvalidScheduleConfig, c.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	if c.MinLeadTimeHours < 0 {
		return fmt.Errorf("%w: negative min lead time", ErrInvalidScheduleConfig)
	}
	if err := validateWindow(c.DefaultWindow); err != nil {
		return fmt.Errorf("%w: default window: %v", ErrInvalidScheduleConfig, err)
	}
	for day, exc := range c.DayExceptions {
		if exc.IsClosed || exc.Window == nil {
			continue
		}
		if err := validateWindow(*exc.Window); err != nil {
			return fmt.Errorf("%w: %s window: %v", ErrInvalidScheduleConfig, day, err)
		}
	}
	return nil
}

func validateWindow(w TimeWindow) error {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return err
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start %s is not before end %s", w.StartTime, w.EndTime)
	}
	return nil
}

// IsEvenlyDivisible проверяет, что длина окна кратна длительности слота
// Используется только для логирования несогласованной конфигурации
func (c *ScheduleConfig) IsEvenlyDivisible(w TimeWindow) bool {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return false
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return false
	}
	return (end-start)%c.SlotDurationMinutes == 0
}
