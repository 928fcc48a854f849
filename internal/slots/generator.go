// Package slots вычисляет, какие календарные даты и временные слоты можно
// предлагать покупателю с учётом конфигурации расписания магазина и журнала
// загрузки. Все функции чистые при фиксированных часах и снимке журнала:
// одинаковые входные данные дают одинаковый упорядоченный результат.
package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// CapacitySource интерфейс источника записей журнала загрузки по датам
// nil означает, что дата не ограничена и не заблокирована
type CapacitySource interface {
	GetCapacityForDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error)
}

// OfferableDate одна дата-кандидат исполнения заказа в пределах горизонта
type OfferableDate struct {
	Date         time.Time // полночь местного времени
	DateISO      string
	Weekday      time.Weekday
	IsSelectable bool
}

// StartOfDay нормализует t к полуночи того же календарного дня
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MinOfferableDate возвращает самую раннюю дату, допустимую минимальным
// сроком изготовления, нормализованную к началу дня
func MinOfferableDate(cfg *domain.ScheduleConfig, now time.Time) time.Time {
	return StartOfDay(now.Add(time.Duration(cfg.MinLeadTimeHours) * time.Hour))
}

// OfferableDates перечисляет horizonDays последовательных дат, начиная с
// границы минимального срока изготовления (включительно)
// Дата доступна для выбора, когда её день недели не помечен выходным
// и журнал загрузки не блокирует её
func OfferableDates(
	ctx context.Context,
	cfg *domain.ScheduleConfig,
	ledger CapacitySource,
	now time.Time,
	horizonDays int,
) ([]OfferableDate, error) {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}

	minDate := MinOfferableDate(cfg, now)

	dates := make([]OfferableDate, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		date := minDate.AddDate(0, 0, i)
		dateISO := date.Format(domain.DateFormat)

		// В выходной день недели журнал загрузки не запрашиваем
		selectable := !cfg.IsClosedOn(date.Weekday())
		if selectable {
			capacity, err := ledger.GetCapacityForDate(ctx, dateISO)
			if err != nil {
				return nil, fmt.Errorf("lookup capacity for %s: %w", dateISO, err)
			}
			if capacity != nil && capacity.IsBlackoutDay {
				selectable = false
			}
		}

		dates = append(dates, OfferableDate{
			Date:         date,
			DateISO:      dateISO,
			Weekday:      date.Weekday(),
			IsSelectable: selectable,
		})
	}

	return dates, nil
}

// OfferableSlots возвращает упорядоченный список времён начала слотов,
// предлагаемых на указанную дату
// Для заблокированной даты список пуст независимо от рабочего окна и загрузки
// Слоты-кандидаты идут от начала действующего окна с шагом длительности слота;
// слот должен начинаться строго раньше конца окна, поэтому окно, не кратное
// длительности, теряет последний неполный слот
// Кандидат исключается только когда журнал содержит запись с точно совпадающим
// временем начала и запись исчерпана
func OfferableSlots(
	ctx context.Context,
	cfg *domain.ScheduleConfig,
	ledger CapacitySource,
	date time.Time,
) ([]types.TimeString, error) {
	capacity, err := ledger.GetCapacityForDate(ctx, date.Format(domain.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("lookup capacity for %s: %w", date.Format(domain.DateFormat), err)
	}
	if capacity != nil && capacity.IsBlackoutDay {
		return []types.TimeString{}, nil
	}

	window := cfg.WindowFor(date.Weekday())

	startMinutes, err := window.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("window start: %w", err)
	}
	endMinutes, err := window.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("window end: %w", err)
	}

	result := make([]types.TimeString, 0, (endMinutes-startMinutes)/cfg.SlotDurationMinutes)
	for current := startMinutes; current < endMinutes; current += cfg.SlotDurationMinutes {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}

		if capacity != nil {
			if entry, ok := capacity.SlotFor(slot); ok && entry.IsExhausted() {
				continue
			}
		}

		result = append(result, slot)
	}

	return result, nil
}

// ContainsDate проверяет, что dateISO присутствует в dates и доступна для выбора
func ContainsDate(dates []OfferableDate, dateISO string) bool {
	for _, d := range dates {
		if d.DateISO == dateISO && d.IsSelectable {
			return true
		}
	}
	return false
}

// ContainsSlot проверяет, что slot присутствует в предлагаемом списке
func ContainsSlot(offered []types.TimeString, slot types.TimeString) bool {
	for _, s := range offered {
		if s == slot {
			return true
		}
	}
	return false
}
