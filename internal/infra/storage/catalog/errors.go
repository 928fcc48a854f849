package catalog

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден по slug
	ErrProductNotFound = errors.New("catalog.repository: product not found")

	// ErrVariantNotFound возвращается, когда у стандартного товара нет такого варианта
	ErrVariantNotFound = errors.New("catalog.repository: variant not found")

	// ErrInsufficientStock возвращается, когда списание ушло бы в отрицательный остаток
	ErrInsufficientStock = errors.New("catalog.repository: insufficient stock")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
