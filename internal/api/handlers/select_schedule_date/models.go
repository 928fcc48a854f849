package select_schedule_date

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"`
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	State         string     `json:"state"`
	SelectedDate  string     `json:"selectedDate,omitempty"`
	SelectedTime  string     `json:"selectedTime,omitempty"`
	FulfillmentAt *time.Time `json:"fulfillmentAt,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SelectionResponse) *SelectionResponse {
	return &SelectionResponse{
		State:         resp.State,
		SelectedDate:  resp.SelectedDate,
		SelectedTime:  resp.SelectedTime,
		FulfillmentAt: resp.FulfillmentAt,
	}
}
