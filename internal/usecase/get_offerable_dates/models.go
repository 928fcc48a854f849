package get_offerable_dates

import "time"

// Request запрос предлагаемых дат исполнения заказа
type Request struct {
	// HorizonDays сколько последовательных дат перечислить;
	// ноль - горизонт по умолчанию
	HorizonDays int
}

// Response список дат-кандидатов, начиная с границы минимального срока
type Response struct {
	MinDate time.Time
	Dates   []OfferableDate
}

// OfferableDate одна дата-кандидат с вердиктом о доступности для выбора
type OfferableDate struct {
	Date         time.Time
	DateISO      string
	Weekday      time.Weekday
	IsSelectable bool
}
