package cart

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия покупателя не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrQuantityTooLarge возвращается, когда количество превышает лимит на позицию
	ErrQuantityTooLarge = errors.New("quantity exceeds per-line maximum")

	// ErrInsufficientStock возвращается, когда обновление количества превысило
	// бы остаток варианта на складе; корзина не изменяется
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cart service: internal error")
)
