package capacity

import "errors"

var (
	// ErrCapacityNotFound возвращается, когда для даты нет записи в журнале загрузки
	ErrCapacityNotFound = errors.New("capacity.repository: capacity not found")

	// ErrSlotExhausted возвращается, когда при резервировании у слота
	// не осталось свободных мест
	ErrSlotExhausted = errors.New("capacity.repository: slot capacity exhausted")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("capacity.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("capacity.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("capacity.repository: failed to scan row")
)
