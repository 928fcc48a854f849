package select_schedule_time

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"`
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
