package add_cart_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound возвращается, когда сессия покупателя не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrProductNotFound возвращается, когда товар не найден по slug
	ErrProductNotFound = errors.New("product not found")

	// ErrVariantNotFound возвращается, когда вариант товара не найден
	ErrVariantNotFound = errors.New("variant not found")

	// ErrOutOfStock возвращается, когда запрошенное количество превышает остаток на складе
	// Корзина при этом не изменяется
	ErrOutOfStock = errors.New("requested quantity exceeds available stock")

	// ErrCustomizationIncomplete возвращается, когда не заполнена обязательная группа кастомизации
	ErrCustomizationIncomplete = errors.New("mandatory customization selections are missing")

	// ErrScheduleRequired возвращается при попытке добавить кастомизируемый товар
	// без выбранной даты и времени исполнения
	ErrScheduleRequired = errors.New("fulfillment date and time must be selected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
