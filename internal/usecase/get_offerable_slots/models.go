package get_offerable_slots

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// Request запрос предлагаемых слотов на одну дату
type Request struct {
	Date time.Time
}

// Response упорядоченный по возрастанию список времен начала предлагаемых
// слотов. Заблокированная дата дает пустой список с установленным
// IsBlackoutDay, чтобы вызывающая сторона могла сразу это показать
type Response struct {
	Date          time.Time
	IsBlackoutDay bool
	Slots         []types.TimeString
}
