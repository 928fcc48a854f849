package checkout

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionNotFound возвращается, когда сессия покупателя не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyCart возвращается при попытке оформить заказ с пустой корзиной
	ErrEmptyCart = errors.New("cart is empty")

	// ErrScheduleNotOfferable возвращается, когда метка времени исполнения
	// какой-либо позиции перестала предлагаться к моменту оформления
	ErrScheduleNotOfferable = errors.New("fulfillment slot is no longer offerable")

	// ErrSlotExhausted возвращается, когда при резервировании у слота
	// не осталось свободных мест; заказ не создается
	ErrSlotExhausted = errors.New("fulfillment slot capacity exhausted")

	// ErrInsufficientStock возвращается, когда остатка на складе не хватает
	// для какой-либо позиции; заказ не создается
	ErrInsufficientStock = errors.New("insufficient stock for cart item")

	// ErrProductNotFound возвращается, когда товар позиции корзины исчез
	// из каталога
	ErrProductNotFound = errors.New("cart item product not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
