// Package pricing вычисляет итоговую цену кастомизируемого товара из базовой
// цены и выбора покупателя. Корректировки только аддитивные; семантики скидок
// здесь нет.
package pricing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// FinalPrice считает базовую цену плюс корректировку каждого применимого
// выбора, проходя группы в объявленном порядке:
//   - text-input: фиксированная наценка группы применяется, когда текст
//     непустой после обрезки пробелов
//   - single-select: применяется корректировка совпавшей опции; id выбора,
//     не совпавший ни с одной опцией, даёт ноль без ошибки
//   - multi-select: объявлен в модели данных, но пока не тарифицируется,
//     даёт ноль
//
// Результат ограничен снизу нулём
func FinalPrice(basePrice decimal.Decimal, groups []domain.OptionGroup, selections domain.Selections) decimal.Decimal {
	price := basePrice

	for _, group := range groups {
		sel, ok := selections[group.GroupKey]
		if !ok {
			continue
		}

		switch group.Type {
		case domain.GroupTextInput:
			if strings.TrimSpace(sel.Text) != "" {
				price = price.Add(group.PriceAdjustment)
			}
		case domain.GroupSingleSelect:
			if sel.ChoiceID == "" {
				continue
			}
			if choice, found := group.ChoiceByID(sel.ChoiceID); found {
				price = price.Add(choice.PriceAdjustment)
			}
		case domain.GroupMultiSelect:
			// Корректировки multi-select пока не суммируются
		}
	}

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// MissingMandatoryGroups возвращает ключи обязательных групп без пригодного
// выбора, в объявленном порядке
func MissingMandatoryGroups(groups []domain.OptionGroup, selections domain.Selections) []string {
	var missing []string
	for _, group := range groups {
		if !group.IsMandatory {
			continue
		}
		sel, ok := selections[group.GroupKey]
		if !ok || sel.IsEmpty() {
			missing = append(missing, group.GroupKey)
		}
	}
	return missing
}

// IsComplete проверяет, что кастомизация готова к добавлению в корзину:
// все обязательные группы заполнены и метка времени исполнения составлена
func IsComplete(groups []domain.OptionGroup, selections domain.Selections, fulfillmentAt *time.Time) bool {
	return len(MissingMandatoryGroups(groups, selections)) == 0 && fulfillmentAt != nil
}
