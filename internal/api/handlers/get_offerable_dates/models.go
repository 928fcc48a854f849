package get_offerable_dates

import (
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	getOfferableDates "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_dates"
)

// OfferableDatesResponse HTTP response model
type OfferableDatesResponse struct {
	MinDate string          `json:"minDate"`
	Dates   []OfferableDate `json:"dates"`
}

// OfferableDate модель одной даты-кандидата
type OfferableDate struct {
	Date         string `json:"date"`
	Weekday      string `json:"weekday"`
	IsSelectable bool   `json:"isSelectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOfferableDates.Response) *OfferableDatesResponse {
	dates := make([]OfferableDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = OfferableDate{
			Date:         d.DateISO,
			Weekday:      strings.ToLower(d.Weekday.String()),
			IsSelectable: d.IsSelectable,
		}
	}

	return &OfferableDatesResponse{
		MinDate: resp.MinDate.Format(domain.DateFormat),
		Dates:   dates,
	}
}
