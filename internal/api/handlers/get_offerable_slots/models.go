package get_offerable_slots

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	getOfferableSlots "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_slots"
)

// OfferableSlotsResponse HTTP response model
type OfferableSlotsResponse struct {
	Date          string   `json:"date"`
	IsBlackoutDay bool     `json:"isBlackoutDay"`
	Slots         []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOfferableSlots.Response) *OfferableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	return &OfferableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		IsBlackoutDay: resp.IsBlackoutDay,
		Slots:         slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getOfferableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getOfferableSlots.Request{Date: date}, nil
}
