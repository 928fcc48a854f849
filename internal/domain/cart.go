package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SelectionValue ответ покупателя на одну группу кастомизации
// Значимо ровно одно поле, соответствующее типу группы
type SelectionValue struct {
	ChoiceID  string   // single-select
	ChoiceIDs []string // multi-select
	Text      string   // text-input
}

// IsEmpty проверяет, что значение не содержит пригодного ответа
// Текстовый ответ учитывается только если он непустой после обрезки пробелов
func (v SelectionValue) IsEmpty() bool {
	return v.ChoiceID == "" && len(v.ChoiceIDs) == 0 && strings.TrimSpace(v.Text) == ""
}

// Selections отображает ключ группы в ответ покупателя для этой группы
type Selections map[string]SelectionValue

// CartItem одна позиция корзины
// Позиции никогда не сливаются: двойное добавление одинаковой конфигурации
// дает две отдельные позиции. Принадлежит журналу корзины; изменяется только
// через обновление количества
type CartItem struct {
	ID            string
	ProductSlug   string
	ProductName   string
	VariantID     string // только для стандартных товаров
	Quantity      int
	UnitPrice     decimal.Decimal
	FinalPrice    decimal.Decimal // цена за единицу после корректировок кастомизации
	IsCustom      bool
	Selections    Selections
	FulfillmentAt *time.Time // составленная метка времени самовывоза/доставки
}

// LineTotal возвращает FinalPrice, умноженную на количество
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.FinalPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DeliveryMethod способ получения заказа покупателем
type DeliveryMethod string

const (
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryCourier DeliveryMethod = "delivery"
)

// PaymentMethod заявленный покупателем способ оплаты
// Сервис записывает его в заказ; само списание вне этого сервиса
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// DeliveryData данные покупателя и доставки, собираемые на первом шаге
// оформления заказа
type DeliveryData struct {
	Method    DeliveryMethod
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	ZipCode   string
}
