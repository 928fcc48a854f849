// Package schedule содержит машину состояний выбора времени исполнения заказа:
// Empty -> DateChosen -> Complete. Выбор даты и времени проверяется против
// актуальных предлагаемых наборов, а завершенный выбор можно перепроверить
// против свежего снимка загрузки, прежде чем доверять ему.
package schedule

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/slots"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// State позиция выбора в жизненном цикле
type State string

const (
	StateEmpty      State = "empty"
	StateDateChosen State = "date_chosen"
	StateComplete   State = "complete"
)

var (
	// ErrDateNotOfferable возвращается, когда выбранная дата отсутствует в
	// предлагаемом наборе или недоступна для выбора. Прежнее состояние сохраняется
	ErrDateNotOfferable = errors.New("schedule: date is not offerable")

	// ErrSlotNotOfferable возвращается, когда выбранное время отсутствует среди
	// слотов, предлагаемых на выбранную дату. Прежнее состояние сохраняется
	ErrSlotNotOfferable = errors.New("schedule: time slot is not offerable")

	// ErrNoDateSelected возвращается при попытке выбрать время раньше даты
	ErrNoDateSelected = errors.New("schedule: no date selected")
)

// Selection последовательно собирает выбор даты, затем слота, в единую
// метку времени исполнения заказа
// Не потокобезопасен - доступ сериализуется хранилищем сессий
type Selection struct {
	state        State
	selectedDate time.Time
	dateISO      string
	selectedTime types.TimeString
}

// NewSelection создает пустой выбор
func NewSelection() *Selection {
	return &Selection{state: StateEmpty}
}

// State возвращает текущее состояние жизненного цикла
func (s *Selection) State() State {
	return s.state
}

// SelectedDateISO возвращает выбранную дату, если она есть
func (s *Selection) SelectedDateISO() (string, bool) {
	if s.state == StateEmpty {
		return "", false
	}
	return s.dateISO, true
}

// SelectedDate возвращает выбранную дату (полночь местного времени), если она есть
func (s *Selection) SelectedDate() (time.Time, bool) {
	if s.state == StateEmpty {
		return time.Time{}, false
	}
	return s.selectedDate, true
}

// SelectedTime возвращает выбранное начало слота, когда выбор завершен
func (s *Selection) SelectedTime() (types.TimeString, bool) {
	if s.state != StateComplete {
		return "", false
	}
	return s.selectedTime, true
}

// SelectDate выбирает dateISO из актуального набора предлагаемых дат
// Дата должна присутствовать и быть доступной для выбора, иначе выбор не меняется
// Выбор даты всегда сбрасывает ранее выбранное время, включая повторный
// выбор той же даты
func (s *Selection) SelectDate(offered []slots.OfferableDate, dateISO string) error {
	for _, d := range offered {
		if d.DateISO != dateISO {
			continue
		}
		if !d.IsSelectable {
			return ErrDateNotOfferable
		}
		s.selectedDate = d.Date
		s.dateISO = d.DateISO
		s.selectedTime = ""
		s.state = StateDateChosen
		return nil
	}
	return ErrDateNotOfferable
}

// SelectTime выбирает начало слота из слотов, предлагаемых на выбранную дату
// Допустимо только после выбора даты
func (s *Selection) SelectTime(offered []types.TimeString, t types.TimeString) error {
	if s.state == StateEmpty {
		return ErrNoDateSelected
	}
	if !slots.ContainsSlot(offered, t) {
		return ErrSlotNotOfferable
	}
	s.selectedTime = t
	s.state = StateComplete
	return nil
}

// ClearTime сбрасывает выбранное время, возвращая выбор в DateChosen
func (s *Selection) ClearTime() {
	if s.state == StateComplete {
		s.selectedTime = ""
		s.state = StateDateChosen
	}
}

// Reset возвращает выбор в состояние Empty
func (s *Selection) Reset() {
	*s = Selection{state: StateEmpty}
}

// ComposedTimestamp объединяет выбранные дату и слот в единую метку местного
// времени. Определена только в состоянии Complete: год, месяц и день берутся
// из даты, часы и минуты - из слота, без преобразования часовых поясов
func (s *Selection) ComposedTimestamp() (time.Time, bool) {
	if s.state != StateComplete {
		return time.Time{}, false
	}
	minutes, err := s.selectedTime.Minutes()
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		s.selectedDate.Year(), s.selectedDate.Month(), s.selectedDate.Day(),
		minutes/60, minutes%60, 0, 0, s.selectedDate.Location(),
	), true
}

// Revalidate сверяет выбор со свежими предлагаемыми наборами
// Если выбранная дата больше недоступна - выбор возвращается в Empty;
// если пропал только выбранный слот (занят конкурентно) - в DateChosen
// Устаревшая, более не действительная метка времени никогда не сохраняется
func (s *Selection) Revalidate(datesNow []slots.OfferableDate, slotsNow []types.TimeString) State {
	if s.state == StateEmpty {
		return s.state
	}
	if !slots.ContainsDate(datesNow, s.dateISO) {
		s.Reset()
		return s.state
	}
	if s.state == StateComplete && !slots.ContainsSlot(slotsNow, s.selectedTime) {
		s.ClearTime()
	}
	return s.state
}
