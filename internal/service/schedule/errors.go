package schedule

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия покупателя не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrDateNotOfferable возвращается, когда выбранная дата сейчас
	// не предлагается; прежний выбор сохраняется
	ErrDateNotOfferable = errors.New("date is not offerable")

	// ErrSlotNotOfferable возвращается, когда выбранный слот сейчас
	// не предлагается; прежний выбор сохраняется
	ErrSlotNotOfferable = errors.New("time slot is not offerable")

	// ErrNoDateSelected возвращается при попытке выбрать время раньше даты
	ErrNoDateSelected = errors.New("no date selected")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
