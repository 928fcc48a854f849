// Package cart реализует in-memory журнал позиций заказа одной сессии
// покупателя. Агрегаты пересчитываются при каждом чтении и не кэшируются.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Ledger владеет упорядоченной коллекцией позиций корзины
// Не потокобезопасен - доступ сериализуется хранилищем сессий
type Ledger struct {
	items []domain.CartItem
}

// NewLedger создает пустой журнал
func NewLedger() *Ledger {
	return &Ledger{items: make([]domain.CartItem, 0)}
}

// AddItem присваивает позиции новый идентификатор и добавляет её в конец
// Одинаковые конфигурации никогда не сливаются: каждое добавление - отдельная
// позиция. Возвращает сохранённую позицию
func (l *Ledger) AddItem(item domain.CartItem) domain.CartItem {
	item.ID = uuid.NewString()
	l.items = append(l.items, item)
	return item
}

// UpdateQuantity заменяет количество позиции на месте
// Количество ноль или меньше удаляет позицию. Неизвестный id - no-op
func (l *Ledger) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(id)
		return
	}
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem удаляет совпавшую позицию. Неизвестный id - no-op
func (l *Ledger) RemoveItem(id string) {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Clear опустошает журнал
func (l *Ledger) Clear() {
	l.items = l.items[:0]
}

// Items возвращает копию позиций в порядке добавления
func (l *Ledger) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// ItemByID возвращает позицию с указанным id, если она есть
func (l *Ledger) ItemByID(id string) (domain.CartItem, bool) {
	for i := range l.items {
		if l.items[i].ID == id {
			return l.items[i], true
		}
	}
	return domain.CartItem{}, false
}

// Len возвращает число отдельных позиций
func (l *Ledger) Len() int {
	return len(l.items)
}

// TotalItemCount возвращает сумму количеств по позициям, пересчитывается
// при каждом вызове
func (l *Ledger) TotalItemCount() int {
	total := 0
	for i := range l.items {
		total += l.items[i].Quantity
	}
	return total
}

// MonetaryTotal возвращает сумму итоговой цены, умноженной на количество,
// по всем позициям, пересчитывается при каждом вызове
func (l *Ledger) MonetaryTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range l.items {
		total = total.Add(l.items[i].LineTotal())
	}
	return total
}
