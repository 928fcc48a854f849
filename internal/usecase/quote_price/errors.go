package quote_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrProductNotFound возвращается, когда товар не найден по slug
	ErrProductNotFound = errors.New("product not found")

	// ErrVariantRequired возвращается при запросе цены стандартного товара
	// без указания варианта
	ErrVariantRequired = errors.New("variant is required for standard products")

	// ErrVariantNotFound возвращается, когда вариант товара не найден
	ErrVariantNotFound = errors.New("variant not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
