package get_offerable_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateNotOfferable возвращается, когда запрошенная дата раньше
	// границы минимального срока изготовления
	ErrDateNotOfferable = errors.New("date is before the lead-time boundary")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
